package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimitrije/mirror-api/internal/clerk"
	"github.com/dimitrije/mirror-api/internal/config"
	"github.com/dimitrije/mirror-api/internal/database"
	"github.com/dimitrije/mirror-api/internal/events"
	"github.com/dimitrije/mirror-api/internal/handlers"
	authmw "github.com/dimitrije/mirror-api/internal/middleware"
	"github.com/dimitrije/mirror-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	syncService := services.NewSyncService(db)
	mirrorService := services.NewMirrorService(db)

	registry, err := events.NewRegistry(syncService)
	if err != nil {
		log.Fatalf("Failed to build event registry: %v", err)
	}

	verifier, err := clerk.NewWebhookVerifier(cfg.ClerkWebhookSecret)
	if err != nil {
		log.Fatalf("Failed to build webhook verifier: %v", err)
	}

	jwtService, err := services.NewJWTService(cfg.ClerkJWTPublicKey)
	if err != nil {
		log.Fatalf("Failed to build session verifier: %v", err)
	}

	var provider services.ProviderDirectory
	if cfg.ClerkSecretKey != "" {
		provider = clerk.NewClient(ctx, cfg.ClerkSecretKey, cfg.ClerkAPIURL)
	}

	webhookHandler := handlers.NewWebhookHandler(registry, syncService, verifier)
	mirrorHandler := handlers.NewMirrorHandler(mirrorService)
	adminHandler := handlers.NewAdminHandler(syncService, provider)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))

	// Webhook ingress reads the raw body itself for signature verification.
	app.Post("/api/webhooks/clerk", webhookHandler.HandleClerkEvent)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Get("/users/:id", mirrorHandler.GetUser)
	protected.Get("/workspaces/:id", mirrorHandler.GetWorkspace)
	protected.Get("/workspaces/:id/members", mirrorHandler.GetMembers)

	protected.Post("/admin/backfill", adminHandler.Backfill)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s, handling %d event types", addr, len(registry.Types()))
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
