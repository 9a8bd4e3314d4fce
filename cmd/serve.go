package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"genie-graph/core/config"
	"genie-graph/core/database"
	"genie-graph/core/loader"
	"genie-graph/core/logger"
	"genie-graph/core/middleware/auth"
	"genie-graph/core/middleware/rayid"
	"genie-graph/core/source"
	"genie-graph/core/storage"

	"genie-graph/feature/explorer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "genie-graph/docs/swagger"
)

// @title Genie Graph API
// @version 1.0
// @description API for converting and exploring the game data graph.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the graph explorer API",
	Long:  `Starts the HTTP server, builds the graph from the configured dump source and serves it.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidEdition() {
			logg.Fatal("Unknown game edition", zap.String("edition", cfg.Server.Edition))
		}
		if err := cfg.Source.Validate(); err != nil {
			logg.Fatal("Invalid source configuration", zap.Error(err))
		}
		logg = logg.With(zap.String("edition", cfg.Server.Edition))

		// 3. Connect to Database (Optional unless it is the dump source)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			if cfg.Source.Kind == source.KindDatabase {
				logg.Fatal("Database source requires a database connection", zap.Error(err))
			}
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to dump database")
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 3. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// Build the dump source selected by config
		src, err := source.New(cfg.Source, store, cfg.Storage.Bucket, db)
		if err != nil {
			logg.Fatal("Failed to build dump source", zap.Error(err))
		}

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		feat := explorer.NewFeature(src, store, cfg.Storage.Bucket, cfg.Convert, logg)
		mgr.Register(feat)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Warm the graph so the first request does not pay for the build.
		// A failed warm-up is not fatal; POST /convert retries it.
		if _, err := feat.Service().Rebuild(context.Background()); err != nil {
			logg.Warn("Initial conversion failed", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
