package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studentfit/fitness-planner/internal/api"
	"studentfit/fitness-planner/internal/config"
	"studentfit/fitness-planner/internal/plangen"
	"studentfit/fitness-planner/internal/repository/mongo"
	"studentfit/fitness-planner/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting StudentFit planner server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.Gemini.APIKey == "" {
		log.Fatal("FATAL: gemini.api_key (GEMINI_API_KEY) is not set")
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Initialize Repositories ---
	recordRepo := mongo.NewMongoUserRecordRepository(appDB)

	// --- Initialize Plan Generator ---
	generator := plangen.NewGeminiGenerator(plangen.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	})

	// --- Initialize Services ---
	sessionService := service.NewSessionService(generator, recordRepo, cfg.Session.Resume)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.CORS.AllowOrigins, sessionService, recordRepo)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
		// The write timeout must outlive the blocking generation call.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Gemini.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
