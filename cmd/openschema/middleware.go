package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush forwards to the wrapped writer when it supports flushing.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the wrapped writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// recoveryConfig configures withRecovery.
type recoveryConfig struct {
	// LogFunc is invoked with the request and the recovered value when a
	// handler panics. When nil, no logging is performed.
	LogFunc func(r *http.Request, err any)
}

// logPanics returns a LogFunc writing recovered panics to logger.
func logPanics(logger zerolog.Logger) func(*http.Request, any) {
	return func(r *http.Request, err any) {
		logger.Error().Interface("panic", err).Str("path", r.URL.Path).Msg("handler panic")
	}
}

// withRecovery answers 500 when a downstream handler panics.
func withRecovery(cfg recoveryConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if cfg.LogFunc != nil {
					cfg.LogFunc(r, err)
				}
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// withAccessLog writes one debug line per request to logger.
func withAccessLog(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
