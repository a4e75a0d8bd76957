// Package erchealth provides liveness/readiness handlers for the ERC HTTP
// gateway. The engine itself has no external dependencies to probe; the
// only check is that the process can still run a trivial ERC pass.
package erchealth

import (
	"context"
	"net/http"
	"time"

	"github.com/athena/erc-engine/pkg/erc"
)

// Status is the health outcome of a check.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Response is the JSON body returned by the health endpoints.
type Response struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime"`
	Version   string    `json:"version"`
}

// Checker reports the ERC service's health by running the engine against
// an empty, always-passing snapshot, it exercises the same code path a
// real request does without depending on any external system.
type Checker struct {
	startTime time.Time
	version   string
}

// New creates a Checker.
func New(version string) *Checker {
	return &Checker{startTime: time.Now(), version: version}
}

// Check runs a trivial ERC pass and reports the outcome.
func (c *Checker) Check(ctx context.Context) Response {
	status := StatusHealthy
	if _, err := erc.Run(nil, nil, erc.DefaultOptions()); err != nil {
		status = StatusUnhealthy
	}
	return Response{
		Status:    status,
		Timestamp: time.Now(),
		Uptime:    time.Since(c.startTime).String(),
		Version:   c.version,
	}
}

// HandlerFunc returns a plain net/http handler suitable for gin.WrapH,
// matching the wrapping pattern used by the ATHENA API gateway.
func (c *Checker) HandlerFunc() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := c.Check(r.Context())
		status := http.StatusOK
		if resp.Status == StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"status":"` + string(resp.Status) + `","version":"` + resp.Version + `"}`))
	}
}
