package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func limitedRouter(t *testing.T, perMin int, proxies string) *gin.Engine {
	t.Helper()
	r := gin.New()
	require.NoError(t, TrustProxies(r, proxies))
	r.Use(RateLimitMiddleware(perMin))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.ClientIP()) })
	return r
}

func ping(r http.Handler, remote string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remote
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestForwardedHeadersIgnoredFromUntrustedPeer(t *testing.T) {
	r := limitedRouter(t, 2, "")

	codes := make([]int, 0, 3)
	for i, xff := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		w := ping(r, "9.9.9.9:1000", map[string]string{"X-Forwarded-For": xff, "X-Real-IP": xff})
		if i == 0 {
			assert.Equal(t, "9.9.9.9", w.Body.String())
		}
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestForwardedHeadersHonouredFromTrustedProxy(t *testing.T) {
	r := limitedRouter(t, 1, "127.0.0.1, 10.1.0.0/16")

	w := ping(r, "10.1.2.3:1000", map[string]string{"X-Forwarded-For": "203.0.113.7"})
	assert.Equal(t, "203.0.113.7", w.Body.String())

	// each forwarded client gets its own bucket behind the proxy
	w = ping(r, "10.1.2.3:1000", map[string]string{"X-Forwarded-For": "203.0.113.8"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = ping(r, "10.1.2.3:1000", map[string]string{"X-Forwarded-For": "203.0.113.8"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestTrustProxiesRejectsGarbage(t *testing.T) {
	assert.Error(t, TrustProxies(gin.New(), "not-an-ip"))
}

func TestRateLimitMiddleware(t *testing.T) {
	r := limitedRouter(t, 2, "")

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, ping(r, "9.9.9.9:1000", nil).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, ping(r, "8.8.8.8:1000", nil).Code)
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}
