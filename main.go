package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"yt-captions/captions"
	"yt-captions/config"
	"yt-captions/handlers"
	"yt-captions/logger"
	"yt-captions/middleware"
	"yt-captions/youtube"
)

func main() {
	cfg := config.Load()

	if err := config.Validate(cfg); err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	if err := logger.Init(cfg.LogDir); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize logger")
	}

	ytClient := youtube.NewClient(youtube.Config{
		Proxy: cfg.Proxy,
	})

	captionService := captions.NewService(ytClient, captions.Config{
		DefaultChunkSize: cfg.ChunkSize,
		DefaultMaxChunks: cfg.MaxChunks,
	})

	captionHandler := handlers.NewCaptionHandler(captionService)

	log := logrus.StandardLogger()

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      newHandler(cfg, captionHandler, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.WithField("port", cfg.ServerPort).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down the server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server shutdown failed")
	}
}

// newHandler wires the routes. Rate limiting and auth guard the caption
// endpoint only; the router itself sits behind recovery, request IDs,
// logging and CORS so every response carries them, bare 404s included.
func newHandler(cfg *config.Config, captionHandler *handlers.CaptionHandler, log *logrus.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/captions", middleware.Chain(
		http.HandlerFunc(captionHandler.HandleGetCaptions),
		middleware.Timeout(cfg.RequestTimeout),
		rateLimitMiddleware(cfg),
		middleware.BearerAuth(cfg.APIKey),
	))
	mux.HandleFunc("/health", handlers.HandleHealthCheck)

	return middleware.Chain(mux,
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.CORS(),
	)
}

func rateLimitMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return middleware.RateLimit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.BurstSize)
}
