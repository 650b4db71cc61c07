package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vitalvas/openschema/openapi"
	"github.com/vitalvas/openschema/schema"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(flags *globalFlags) *cobra.Command {
	var (
		addr string
		base string
		ui   string
	)

	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve the OpenAPI document and docs UI of a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docsUI, err := openapi.ParseDocsUI(ui)
			if err != nil {
				return err
			}

			catalog, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}
			spec, err := newSpec(catalog, flags.converter())
			if err != nil {
				return err
			}
			// Schemas are static; fail at startup rather than on the first request.
			if _, err := spec.Build(); err != nil {
				return errors.Wrap(err, "build document")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := withRecovery(recoveryConfig{LogFunc: logPanics(log.Logger)}, newDocsMux(spec, base, docsUI))
			return serve(ctx, addr, withAccessLog(log.Logger, handler))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&base, "base", "/docs", "base path of the docs endpoints")
	cmd.Flags().StringVar(&ui, "ui", "swagger", "docs UI (swagger, rapidoc, redoc or scalar)")

	return cmd
}

func newDocsMux(spec *openapi.Spec, base string, ui openapi.DocsUI) *http.ServeMux {
	mux := http.NewServeMux()
	spec.Handle(mux, base, &openapi.HandleConfig{UI: ui})
	return mux
}

// serve runs an HTTP server until ctx is done, then shuts it down.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("serving docs")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	log.Info().Msg("server stopped")
	return nil
}
