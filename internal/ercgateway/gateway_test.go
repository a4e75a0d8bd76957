package ercgateway

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/athena/erc-engine/pkg/ercconfig"
	"github.com/athena/erc-engine/pkg/erclogger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &ercconfig.Config{ServiceName: "erc-engine", LogLevel: "error"}
	log := erclogger.New(cfg.LogLevel, cfg.ServiceName)
	gw := New(cfg, log)

	router := gin.New()
	RegisterRoutes(router, gw)
	return router
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckEndpointReturnsReport(t *testing.T) {
	router := newTestRouter()

	body := `{
		"modules": [{"id":"m1","name":"board","pins":[
			{"id":"p1","type":"signal-input","enabled":true}
		]}],
		"connections": []
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/erc/check", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"passed":true`)
	assert.Contains(t, rec.Body.String(), "ERC060")
}

func TestCheckEndpointRejectsMalformedSnapshot(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/erc/check", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
