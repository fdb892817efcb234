package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ux-settings/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		inputPath       string
		addr            string
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve resolved settings over HTTP with a theme WebSocket feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			in, err := loadInput(ctx, inputPath)
			if err != nil {
				return err
			}

			srv, err := server.New(
				server.WithResolver(a.resolver),
				server.WithInput(in),
				server.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("server starting", "address", addr)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			_ = srv.Close()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("shutdown error", "error", err)
				return err
			}
			a.logger.Info("server shutdown complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "f", "", "input document published at the root, local or s3://bucket/key")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	return cmd
}
