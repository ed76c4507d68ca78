// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"kemisemail/internal/config"
	"kemisemail/internal/routes"
	"kemisemail/internal/services"
)

// @title KemisEmail Template Generator API
// @version 1.0
// @description Drafts email campaign content and images, optimizes images, and submits campaigns to Sendy.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Image storage: S3 when credentials are present, local directory otherwise
	var store services.ImageStore
	s3cfg, err := config.NewS3Config()
	if err != nil {
		log.Fatalf("Failed to initialize S3 config: %v", err)
	}
	if s3cfg.Configured {
		store = services.NewS3ImageStore(s3cfg)
		log.Printf("Using S3 image storage (bucket %s)", s3cfg.Bucket)
	} else {
		store = services.NewLocalImageStore(cfg.ImageDir, cfg.PublicBaseURL)
		log.Printf("Using local image storage (%s)", cfg.ImageDir)
	}

	openai := services.NewOpenAIClient(cfg)
	sendy := services.NewSendyClient(cfg)
	builder := services.NewTemplateBuilder()
	optimizer := services.NewImageOptimizer()
	service := services.NewTemplateService(openai, openai, optimizer, store, builder, sendy, cfg.TemplateDir)

	var smtp services.EmailSender
	if cfg.SMTP.Configured() {
		smtp = services.NewSMTPSender(cfg.SMTP)
		log.Printf("SMTP test emails enabled (%s)", cfg.SMTP.Host)
	}

	// Create router and setup routes
	router := routes.SetupRoutes(cfg, service, sendy, smtp)

	// Create server
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give server 5 seconds to finish current requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
