// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Internal packages
	"github.com/circleup-app/circleup-backend/internal/auth"
	"github.com/circleup-app/circleup-backend/internal/common/database"
	"github.com/circleup-app/circleup-backend/internal/common/middleware"
	"github.com/circleup-app/circleup-backend/internal/common/uploads"
	"github.com/circleup-app/circleup-backend/internal/config"
	"github.com/circleup-app/circleup-backend/internal/posts"
	"github.com/circleup-app/circleup-backend/internal/relationships"
	"github.com/circleup-app/circleup-backend/internal/stories"
	"github.com/circleup-app/circleup-backend/internal/users"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime)

	log.Println("========================================")
	log.Println("🚀 Starting CircleUp Social API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load and validate configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	if cfg.IsDevelopment() {
		// File:line in log output is only worth the noise locally
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}
	log.Println("✅ Configuration loaded and valid")

	// 3. Connect to PostgreSQL
	log.Println("\n🗄️  Step 3: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL successfully")

	// 4. Connect to Redis (optional, used for token revocation)
	log.Println("\n📮 Step 4: Connecting to Redis...")
	redisClient, err := database.NewRedisClientFromURL(cfg.RedisURL)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), continuing without Redis", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("✅ Connected to Redis successfully")
	}

	// 5. Run database migrations
	log.Println("\n🔨 Step 5: Running database migrations...")
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("❌ Failed to run migrations:", err)
	}
	log.Println("✅ Database migrations completed")

	// 6. Initialize Auth module
	log.Println("\n🔐 Step 6: Initializing authentication...")
	authRepo := auth.NewPostgresRepository(db)
	authService := auth.NewService(authRepo, redisClient, &auth.Config{
		JWTSecret:          cfg.JWTSecret,
		AccessTokenExpiry:  cfg.AccessTokenExpiry,
		RefreshTokenExpiry: cfg.RefreshTokenExpiry,
		BCryptCost:         cfg.BCryptCost,
	})
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)
	log.Println("✅ Authentication initialized")

	// 7. Initialize upload service
	log.Println("\n📦 Step 7: Initializing upload service...")
	uploadService := uploads.NewService(uploads.Config{
		UseS3:          cfg.UseS3,
		S3Bucket:       cfg.S3Bucket,
		AWSRegion:      cfg.AWSRegion,
		LocalUploadDir: cfg.LocalUploadDir,
		BaseURL:        cfg.BaseURL,
	})
	uploadHandler := uploads.NewHandler(uploadService)
	if cfg.UseS3 {
		log.Println("   ✅ Using S3 for uploads")
	} else {
		log.Println("   ✅ Using local storage for uploads")
	}

	// 8. Initialize Users module
	log.Println("\n👤 Step 8: Initializing Users module...")
	usersRepo := users.NewPostgresRepository(db)
	usersService := users.NewService(usersRepo, uploadService)
	usersHandler := users.NewHandler(usersService)
	log.Println("✅ Users module initialized")

	// 9. Initialize Posts module
	log.Println("\n📝 Step 9: Initializing Posts module...")
	postsRepo := posts.NewPostgresRepository(db)
	postsService := posts.NewService(postsRepo)
	postsHandler := posts.NewHandler(postsService)
	log.Println("✅ Posts module initialized")

	// 10. Initialize Relationships module
	log.Println("\n🤝 Step 10: Initializing Relationships module...")
	relRepo := relationships.NewPostgresRepository(db)
	relService := relationships.NewService(relRepo)
	relHandler := relationships.NewHandler(relService)
	log.Println("✅ Relationships module initialized")

	// 11. Initialize Stories module
	log.Println("\n📸 Step 11: Initializing Stories module...")
	storiesRepo := stories.NewPostgresRepository(db)
	storiesService := stories.NewService(storiesRepo, cfg.StoryRetention)
	storiesHandler := stories.NewHandler(storiesService)

	// Start cleanup job for expired stories
	cleanupService := stories.NewCleanupService(storiesService, 1*time.Hour)
	go cleanupService.Start(context.Background())
	log.Println("✅ Stories module initialized")

	// 12. Setup routes
	log.Println("\n🛣️  Step 12: Setting up routes...")
	router := mux.NewRouter()

	// Static files for uploads
	if !cfg.UseS3 {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/",
				http.FileServer(http.Dir(cfg.LocalUploadDir))))
		log.Println("   ✅ Static file server configured")
	}

	// Health check and metrics
	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth.RegisterRoutes(router, authHandler, authMiddleware)
	users.RegisterRoutes(router, usersHandler, authMiddleware)
	posts.RegisterRoutes(router, postsHandler, authMiddleware)
	relationships.RegisterRoutes(router, relHandler, authMiddleware)
	stories.RegisterRoutes(router, storiesHandler, authMiddleware)
	uploads.RegisterRoutes(router, uploadHandler, authMiddleware.Authenticate)
	log.Println("   ✅ All routes registered")

	// Add middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.CORS)
	router.Use(middleware.Metrics)

	// 13. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC(),
	})
}
