package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"record-importer/core/loader"
	"record-importer/core/logger"
	"record-importer/core/middleware/auth"
	"record-importer/core/middleware/rayid"
	"record-importer/feature/integrity"
	"record-importer/feature/posts"
	"record-importer/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "record-importer/docs/swagger"
)

// @title Record Importer API
// @version 1.0
// @description API for importing, listing and deleting users and posts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := newRuntime()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer rt.Close()
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		if rt.archiver != nil {
			if err := rt.archiver.EnsureBucket(cmd.Context()); err != nil {
				logg.Warn("Snapshot bucket unavailable, imports will not be archived", zap.Error(err))
			}
		}

		userSvc, err := rt.users("")
		if err != nil {
			logg.Fatal("Failed to create user service", zap.Error(err))
		}
		postSvc, err := rt.posts("")
		if err != nil {
			logg.Fatal("Failed to create post service", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		timeout := rt.cfg.Server.RequestTimeout()
		mgr := loader.NewManager(logg)
		mgr.Register(users.NewFeature(userSvc, logg, timeout))
		mgr.Register(posts.NewFeature(postSvc, logg, timeout))
		mgr.Register(integrity.NewFeature(rt.store, rt.archiver, logg))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
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

func init() {
	RootCmd.AddCommand(serveCmd)
}
