package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"lab-admin/core/config"
	"lab-admin/core/loader"
	"lab-admin/core/logger"
	"lab-admin/core/middleware/auth"
	"lab-admin/core/middleware/rayid"

	"lab-admin/feature/dashboard"
	"lab-admin/feature/events"
	"lab-admin/feature/members"
	"lab-admin/feature/publications"
	"lab-admin/feature/publications/dblp"
	"lab-admin/feature/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the admin API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx := context.Background()

		store, err := openStore(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open document store", zap.Error(err))
		}

		uploads, err := openUploads(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open upload backend", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(dashboard.NewFeature(store, logg))
		mgr.Register(publications.NewFeature(store, dblp.NewClient(cfg.Scraper), logg))
		mgr.Register(members.NewFeature(store, logg))
		mgr.Register(events.NewFeature(store, logg))
		mgr.Register(upload.NewFeature(uploads, logg))

		// RayID first so every log line carries it.
		app.Use(rayid.New())
		app.Use(logger.Middleware(logg))

		// Assets and the static site are read by the public pages without a key.
		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip:   isPublicPath,
		}))
		if !cfg.Server.AuthEnabled() {
			logg.Warn("server.api_key is empty, the API is unauthenticated")
		}

		if cfg.Server.StaticDir != "" {
			app.Static("/static", cfg.Server.StaticDir)
		}

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func isPublicPath(c *fiber.Ctx) bool {
	if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
		return false
	}
	p := c.Path()
	return strings.HasPrefix(p, "/asset/") || strings.HasPrefix(p, "/static/")
}

func init() {
	RootCmd.AddCommand(startCmd)
}
