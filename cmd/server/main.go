package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/gnb-666/pgy-travel-back/internal/config"
	"github.com/gnb-666/pgy-travel-back/internal/database"
	"github.com/gnb-666/pgy-travel-back/internal/handlers"
	"github.com/gnb-666/pgy-travel-back/internal/middleware"
	"github.com/gnb-666/pgy-travel-back/internal/routes"
	"github.com/gnb-666/pgy-travel-back/internal/services"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Connect to Redis
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Initialize Cloudinary-backed media service
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		if err := handlers.InitMediaService(cfg); err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("Media uploads will not be available")
		} else {
			log.Println("✅ Media service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. Media uploads will not be available")
	}

	// Ensure MongoDB indexes for listings and unique usernames
	if err := services.EnsureIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure MongoDB indexes: %v", err)
	} else {
		log.Println("✅ MongoDB indexes ensured")
	}

	// Seed default staff accounts (administrator + auditor) if missing
	if err := services.EnsureDefaultAdmins(context.Background(), cfg); err != nil {
		log.Printf("⚠️  WARNING: failed to seed staff accounts: %v", err)
	} else {
		log.Println("✅ Staff accounts ensured")
	}

	handlers.Init(cfg)

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit)

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r)

	log.Printf("🚀 Travel-journal backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
