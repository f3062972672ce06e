// Serve command: opens the store and runs the HTTP server until
// interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xenomorphXX121/NoteVault/internal/api"
	"github.com/xenomorphXX121/NoteVault/internal/sqlite"
	"github.com/xenomorphXX121/NoteVault/pkg/types"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal.
const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the NoteVault HTTP server",
	Long: `Serve opens the note store and runs the REST API until the process
receives SIGINT or SIGTERM, then shuts down gracefully and closes the store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		store := sqlite.NewStore(log)
		if err := store.Open(types.Config{DataDir: dataDir}); err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		addr := resolveAddr()
		server := &http.Server{
			Addr:    addr,
			Handler: api.NewServer(store, log).Router(),
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", addr).Msg("server listening")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("serve: %w", err)
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		return store.Close()
	},
}
