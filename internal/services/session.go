package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gnb-666/pgy-travel-back/internal/apperr"
	"github.com/gnb-666/pgy-travel-back/internal/database"
)

const (
	// AdminSessionDuration is how long a staff session stays valid.
	AdminSessionDuration = 7 * 24 * time.Hour
	// AdminSessionKeyPrefix is the Redis key prefix for admin sessions.
	AdminSessionKeyPrefix = "admin_session:"
	// AdminToSessionKeyPrefix maps an admin id to its current session token.
	AdminToSessionKeyPrefix = "admin_to_session:"
)

// AdminSession is what a validated token resolves to. The role is stored with
// the session so authorization never needs a second database lookup.
type AdminSession struct {
	AdminID string
	Role    int
}

// CreateAdminSession issues a new session token for an admin, replacing any
// existing session so the expiry timer resets.
func CreateAdminSession(ctx context.Context, adminID string, role int) (string, error) {
	_ = invalidateAdminSessions(ctx, adminID)

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	sessionKey := AdminSessionKeyPrefix + token
	adminToSessionKey := AdminToSessionKeyPrefix + adminID
	payload := adminID + "|" + strconv.Itoa(role)

	if err := database.RedisClient.Set(ctx, sessionKey, payload, AdminSessionDuration).Err(); err != nil {
		return "", err
	}
	if err := database.RedisClient.Set(ctx, adminToSessionKey, token, AdminSessionDuration).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// ValidateAdminSession resolves a bearer token to the signed-in admin.
// Missing or expired tokens come back as ErrUnauthorized.
func ValidateAdminSession(ctx context.Context, token string) (*AdminSession, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing session token", apperr.ErrUnauthorized)
	}

	payload, err := database.RedisClient.Get(ctx, AdminSessionKeyPrefix+token).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired session", apperr.ErrUnauthorized)
	}

	parts := strings.SplitN(payload, "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: malformed session", apperr.ErrUnauthorized)
	}
	role, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: malformed session", apperr.ErrUnauthorized)
	}
	return &AdminSession{AdminID: parts[0], Role: role}, nil
}

// InvalidateAdminSession removes a session (logout).
func InvalidateAdminSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionKey := AdminSessionKeyPrefix + token

	payload, err := database.RedisClient.Get(ctx, sessionKey).Result()
	if err == nil {
		if parts := strings.SplitN(payload, "|", 2); len(parts) == 2 {
			_ = database.RedisClient.Del(ctx, AdminToSessionKeyPrefix+parts[0]).Err()
		}
	}
	return database.RedisClient.Del(ctx, sessionKey).Err()
}

func invalidateAdminSessions(ctx context.Context, adminID string) error {
	adminToSessionKey := AdminToSessionKeyPrefix + adminID

	token, err := database.RedisClient.Get(ctx, adminToSessionKey).Result()
	if err == nil && token != "" {
		_ = database.RedisClient.Del(ctx, AdminSessionKeyPrefix+token).Err()
	}
	return database.RedisClient.Del(ctx, adminToSessionKey).Err()
}
