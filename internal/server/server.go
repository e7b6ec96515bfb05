// Package server provides the HTTP control and progress surface.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/faceset/faceset/internal/config"
	"github.com/faceset/faceset/internal/event"
	"github.com/faceset/faceset/internal/sample"
)

var log = event.Log

// Start runs the web server until the context is canceled.
func Start(ctx context.Context, conf *config.Config, co *sample.Coordinator) error {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	registerRoutes(router, co)

	server := &http.Server{
		Addr:    conf.HttpAddr(),
		Handler: router,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("server: %s (shutdown)", err)
		}
	}()

	log.Infof("server: listening on %s", conf.HttpAddr())

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	return nil
}
