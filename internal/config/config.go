package config

import (
	"os"
	"strconv"
	"strings"
)

// DefaultStatusLabels maps the review-status labels shown in the admin UI to
// state codes. An admin search that exactly equals one of these labels becomes
// an exact state filter instead of a substring search.
var DefaultStatusLabels = map[string]int{
	"待审核": 0,
	"已通过": 1,
	"已驳回": 2,
}

type Config struct {
	MongoURI       string
	RedisURI       string
	Port           string
	Environment    string // ENV: production, development, etc.
	AllowedOrigins []string

	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	BeautifyURL string // upstream text-rewrite API; empty disables the proxy
	BeautifyKey string

	// StatusLabels is injected configuration rather than a constant so the
	// admin search disambiguation stays localization-independent.
	StatusLabels map[string]int

	DefaultAdminUsername   string
	DefaultAdminPassword   string
	DefaultAuditorUsername string
	DefaultAuditorPassword string
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseList(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{getEnv("FRONTEND_URL", "http://localhost:3000")}
	}

	return &Config{
		MongoURI:       getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/pgy-travel")),
		RedisURI:       getEnv("REDIS_URI", "redis://localhost:6379/0"),
		Port:           getEnv("PORT", "3001"),
		Environment:    env,
		AllowedOrigins: allowedOrigins,

		CloudinaryName:      getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),

		BeautifyURL: getEnv("BEAUTIFY_API_URL", ""),
		BeautifyKey: getEnv("BEAUTIFY_API_KEY", ""),

		StatusLabels: parseStatusLabels(getEnv("STATUS_LABELS", "")),

		DefaultAdminUsername:   getEnv("DEFAULT_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword:   getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
		DefaultAuditorUsername: getEnv("DEFAULT_AUDITOR_USERNAME", "auditor"),
		DefaultAuditorPassword: getEnv("DEFAULT_AUDITOR_PASSWORD", "auditor123"),
	}
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

// parseStatusLabels reads "label=code,label=code" pairs; invalid pairs are
// skipped. An empty or fully invalid value falls back to DefaultStatusLabels.
func parseStatusLabels(s string) map[string]int {
	labels := map[string]int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		label := strings.TrimSpace(kv[0])
		code, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if label == "" || err != nil {
			continue
		}
		labels[label] = code
	}
	if len(labels) == 0 {
		for label, code := range DefaultStatusLabels {
			labels[label] = code
		}
	}
	return labels
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
