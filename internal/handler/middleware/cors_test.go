package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cinema-scheduler/internal/handler/middleware"
	"cinema-scheduler/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCORSMiddleware_ExposesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name    string
		exposed []string
	}{
		{name: "missing from config", exposed: []string{"Content-Length"}},
		{name: "already configured", exposed: []string{"Content-Length", "X-Request-ID"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.CORSConfig{
				AllowOrigins:  []string{"http://localhost:3000"},
				AllowMethods:  []string{http.MethodGet},
				ExposeHeaders: tc.exposed,
				MaxAge:        time.Hour,
			}
			engine := gin.New()
			engine.Use(middleware.NewCORSMiddleware(cfg))
			engine.GET("/board", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/board", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
			assert.Equal(t, 1, strings.Count(exposed, "x-request-id"), exposed)
			assert.Equal(t, tc.exposed, cfg.ExposeHeaders, "config slice is left untouched")
		})
	}
}
