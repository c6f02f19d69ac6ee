package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/clinicore/health-api/internal/handler"
	"github.com/clinicore/health-api/pkg/auth"
)

const DefaultAPIKeyHeader = "X-API-Key"

// APIKeyMiddleware guards routes with a shared-secret API key. The key header
// name and the verification strategy are injected, not hardcoded. Clients
// that keep presenting bad keys are locked out for a cooldown window.
type APIKeyMiddleware struct {
	verifier    auth.Verifier
	header      string
	failures    *gocache.Cache
	maxFailures int64
}

func NewAPIKeyMiddleware(verifier auth.Verifier, header string) *APIKeyMiddleware {
	if header == "" {
		header = DefaultAPIKeyHeader
	}
	return &APIKeyMiddleware{
		verifier:    verifier,
		header:      header,
		failures:    gocache.New(15*time.Minute, 5*time.Minute),
		maxFailures: 10,
	}
}

func (m *APIKeyMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		if count, ok := m.failures.Get(ip); ok && count.(int64) >= m.maxFailures {
			c.JSON(http.StatusTooManyRequests, handler.NewErrorResponse("too many failed authentication attempts"))
			c.Abort()
			return
		}

		key := c.GetHeader(m.header)
		if key == "" || !m.verifier.Verify(key) {
			m.recordFailure(ip)
			log.Warn().
				Str("client_ip", ip).
				Str("path", c.Request.URL.Path).
				Msg("invalid API key attempt")
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("Invalid or missing API Key"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *APIKeyMiddleware) recordFailure(ip string) {
	if _, err := m.failures.IncrementInt64(ip, 1); err != nil {
		m.failures.Set(ip, int64(1), gocache.DefaultExpiration)
	}
}
