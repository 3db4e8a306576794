package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Choovyy/portfolio/internal/config"
	"github.com/Choovyy/portfolio/internal/content"
	"github.com/Choovyy/portfolio/internal/server"
	"github.com/Choovyy/portfolio/internal/session"
	"github.com/Choovyy/portfolio/internal/visits"
)

var (
	servePort     int
	serveVisitsDB string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveVisitsDB, "visits-db", config.DefaultVisitsDB, "SQLite file for visit analytics, empty to disable (overrides VISITS_DB)")
	rootCmd.AddCommand(serveCmd)
}

func loadServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("visits-db") {
		cfg.VisitsDB = serveVisitsDB
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	catalog, err := content.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := server.Options{
		Config:   cfg,
		Catalog:  catalog,
		Sessions: session.NewManager(cfg.SessionTTL),
	}

	var store *visits.Store
	if cfg.VisitsDB != "" {
		store, err = visits.Open(ctx, cfg.VisitsDB)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Visits = store
	} else {
		log.Println("[INFO] Visit tracking disabled")
	}

	srv, err := server.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[INFO] Listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("[INFO] Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if store != nil {
		g.Go(func() error {
			if _, err := store.Cleanup(gctx, cfg.VisitRetention); err != nil {
				log.Printf("[WARN] %v", err)
			}
			return nil
		})
	}

	return g.Wait()
}
