// Package ercgateway wraps the erc engine in an HTTP surface, the way the
// ATHENA API gateway (services/platform-lib/pkg/gateway) fronts the other
// platform services. The engine itself never imports gin or net/http.
package ercgateway

import (
	"net/http"
	"time"

	"github.com/athena/erc-engine/pkg/erc"
	"github.com/athena/erc-engine/pkg/ercconfig"
	"github.com/athena/erc-engine/pkg/ercerrors"
	"github.com/athena/erc-engine/pkg/erchealth"
	"github.com/athena/erc-engine/pkg/erclogger"
	"github.com/athena/erc-engine/pkg/ercmetrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Gateway bundles the dependencies every route handler needs.
type Gateway struct {
	cfg     *ercconfig.Config
	log     *erclogger.Logger
	metrics *ercmetrics.Metrics
	health  *erchealth.Checker
}

// New creates a Gateway.
func New(cfg *ercconfig.Config, log *erclogger.Logger) *Gateway {
	return &Gateway{
		cfg:     cfg,
		log:     log,
		metrics: ercmetrics.New(),
		health:  erchealth.New("1.0.0"),
	}
}

// RegisterRoutes wires the ERC HTTP surface onto an existing gin engine.
func RegisterRoutes(router *gin.Engine, gw *Gateway) {
	router.Use(securityHeaders())

	router.GET("/health", gin.WrapH(gw.health.HandlerFunc()))
	router.GET("/ready", gin.WrapH(gw.health.HandlerFunc()))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gw.metrics.Registry(), promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/erc/check", gw.checkHandler)
	}
}

// checkHandler decodes a Snapshot, runs the engine, and returns the
// report as JSON. Violations are domain data, not HTTP errors: a failing
// report is still a 200 with passed:false. Only a snapshot the engine
// cannot even index becomes a 400.
func (gw *Gateway) checkHandler(c *gin.Context) {
	snap, err := erc.Decode(c.Request.Body)
	if err != nil {
		apiErr := ercerrors.InvalidSnapshot(err)
		gw.log.WithError(err).Warn("rejected malformed ERC snapshot")
		c.JSON(apiErr.HTTPStatus(), apiErr)
		return
	}

	options := *snap.Options
	start := time.Now()
	report, err := erc.Run(snap.Modules, snap.Connections, options)
	duration := time.Since(start)
	if err != nil {
		apiErr := ercerrors.InvalidSnapshot(err)
		gw.log.WithError(err).Warn("ERC run could not index snapshot")
		c.JSON(apiErr.HTTPStatus(), apiErr)
		return
	}

	gw.metrics.Observe(report, duration)
	c.JSON(http.StatusOK, report)
}
