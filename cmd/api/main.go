package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/01moynul/taptosell-storefront/internal/ai"
	"github.com/01moynul/taptosell-storefront/internal/auth"
	"github.com/01moynul/taptosell-storefront/internal/cache"
	"github.com/01moynul/taptosell-storefront/internal/commerce"
	"github.com/01moynul/taptosell-storefront/internal/config"
	"github.com/01moynul/taptosell-storefront/internal/database"
	"github.com/01moynul/taptosell-storefront/internal/handlers"
	"github.com/01moynul/taptosell-storefront/internal/routes"
	"github.com/01moynul/taptosell-storefront/internal/theme"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	// 0. --- Load Configuration (.env + environment) ---
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. --- Theme ---
	activeTheme, err := theme.NewRegistry().Resolve(cfg.Theme)
	if err != nil {
		log.Fatalf("CRITICAL ERROR: %v", err)
	}

	// 2. --- Cache & Rate Limit Counter (Redis, in-memory fallback) ---
	var (
		store   cache.Store   = cache.NewMemoryStore()
		counter cache.Counter = cache.NewMemoryCounter()
	)
	if cfg.RedisURL != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("WARNING: %v. Falling back to in-memory cache.", err)
		} else {
			defer rdb.Close()
			store = cache.NewRedisStore(rdb)
			counter = cache.NewRedisCounter(rdb)
		}
	}

	app := &handlers.Handlers{
		Config: cfg,
		Commerce: commerce.NewClient(commerce.Config{
			BaseURL: cfg.CommerceAPIURL,
			APIKey:  cfg.CommerceAPIKey,
			Timeout: cfg.APITimeout,
		}),
		Cache:  cache.New(store, cfg.CacheTTL),
		Theme:  activeTheme,
		Signer: auth.NewSigner(cfg.SessionSecret),
	}

	// 3. --- Database (contact form, newsletter) ---
	db, err := database.OpenDB(ctx, cfg.DBDSN)
	switch {
	case err == nil:
		defer db.Close()
		if err := database.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("Failed to prepare database schema: %v", err)
		}
		app.Contacts = database.NewContactStore(db)
		app.Newsletter = database.NewNewsletterStore(db)
	case errors.Is(err, database.ErrNoDSN):
		log.Println("WARNING: DB_DSN_PRIMARY not set. Contact form and newsletter are disabled.")
	default:
		log.Fatalf("Failed to connect to primary database: %v", err)
	}

	// 4. --- AI Assistant (optional) ---
	if cfg.GeminiAPIKey != "" {
		assistant, err := ai.NewAssistantService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.StoreName)
		if err != nil {
			log.Fatalf("Failed to initialize AI Service: %v", err)
		}
		defer assistant.Close()
		app.Assistant = assistant
	}

	// 5. --- Background Worker: settings refresh ---
	go func() {
		ticker := time.NewTicker(cfg.SettingsRefresh)
		defer ticker.Stop()

		log.Printf("Background worker started: refreshing store settings every %s", cfg.SettingsRefresh)
		for range ticker.C {
			refreshCtx, cancel := context.WithTimeout(ctx, cfg.APITimeout)
			app.RefreshSettings(refreshCtx)
			cancel()
		}
	}()

	// --- Router Setup ---
	router := routes.SetupRouter(app, counter)

	// --- Start Server ---
	log.Printf("Starting storefront API (theme %s) on port %s...", activeTheme.Name, cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
