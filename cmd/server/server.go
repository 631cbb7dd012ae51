package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/axellelanca/linkbundles/cmd"
	"github.com/axellelanca/linkbundles/internal/api"
	"github.com/axellelanca/linkbundles/internal/auth"
	"github.com/axellelanca/linkbundles/internal/cache"
	"github.com/axellelanca/linkbundles/internal/database"
	"github.com/axellelanca/linkbundles/internal/monitor"
	"github.com/axellelanca/linkbundles/internal/repository"
	"github.com/axellelanca/linkbundles/internal/services"
)

// RunServerCmd starts the HTTP API and the optional link monitor.
var RunServerCmd = &cobra.Command{
	Use:   "run-server",
	Short: "Starts the link bundle API server.",
	Long: `This command opens and migrates the database, wires the optional
Redis cache and link monitor, then serves the HTTP API until SIGINT/SIGTERM.`,
	Run: func(c *cobra.Command, args []string) {
		cfg := cmd.Cfg
		log := logrus.WithField("component", "server")

		db, err := database.Open(cfg.Database.Driver, cfg.DSN(), nil)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var repo repository.BundleRepository = repository.NewBundleRepository(db)
		if cfg.Cache.Enabled {
			client, err := cache.Connect(ctx, cache.ConnectOptions{
				Addr:     cfg.Cache.Addr,
				Password: cfg.Cache.Password,
				DB:       cfg.Cache.DB,
			})
			if err != nil {
				log.Fatalf("failed to connect to cache: %v", err)
			}
			defer client.Close()
			repo = repository.NewCachedBundleRepository(repo, cache.NewRedisBundleCache(client, cfg.Cache.TTL))
			log.Infof("bundle cache enabled (ttl %v)", cfg.Cache.TTL)
		}

		bundleService := services.NewBundleService(repo, auth.ContextResolver{})
		tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

		if cfg.Monitor.Enabled {
			interval := time.Duration(cfg.Monitor.IntervalMinutes) * time.Minute
			linkMonitor := monitor.NewLinkMonitor(repo, interval, cfg.Monitor.WorkerCount)
			go linkMonitor.Start(ctx)
		}

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		router := api.NewRouter(bundleService, tokens)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			log.Infof("listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("failed to start server: %v", err)
			}
		}()

		<-ctx.Done()
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("graceful shutdown failed: %v", err)
			os.Exit(1)
		}
		log.Info("server stopped")
	},
}

func init() {
	cmd.RootCmd.AddCommand(RunServerCmd)
}
