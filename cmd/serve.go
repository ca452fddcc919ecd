package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/feldhop/the-album-club-app/internal/repositories"
	"github.com/feldhop/the-album-club-app/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve starts the HTTP API server on the configured address.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	drops := repositories.NewDropRepository(db)
	users := repositories.NewUserRepository(db)

	srv := server.NewServer(drops, users, r.catalog, r.logger)

	addr := r.config.Server.Addr()
	if port := cmd.Int("port"); port != 0 {
		addr = fmt.Sprintf("%s:%d", r.config.Server.Host, port)
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.NewRouter(),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("starting server", "addr", addr, "catalog", r.catalog.Name())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the drop tracker HTTP API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Override the configured server port",
			},
		},
		Action: r.Serve,
	}
}
