// Command erc-service runs the ERC engine behind an HTTP gateway, the way
// the other ATHENA services (ota-service, device-service, ...) wrap their
// core logic: config, logger, gin router, graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/athena/erc-engine/internal/ercgateway"
	"github.com/athena/erc-engine/pkg/ercconfig"
	"github.com/athena/erc-engine/pkg/erclogger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := ercconfig.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := erclogger.New(cfg.LogLevel, cfg.ServiceName)

	gw := ercgateway.New(cfg, log)

	router := gin.New()
	router.Use(gin.Recovery())
	ercgateway.RegisterRoutes(router, gw)

	server := &http.Server{
		Addr:    ":" + trimLeadingColon(cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("erc-service starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start erc-service")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down erc-service")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("erc-service forced to shutdown")
	}

	log.Info("erc-service exited")
}

func trimLeadingColon(port string) string {
	if len(port) > 0 && port[0] == ':' {
		return port[1:]
	}
	return port
}
