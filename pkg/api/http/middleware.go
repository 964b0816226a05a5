package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	// longer inbound IDs are replaced rather than echoed
	maxRequestIDLength = 128
)

// requestID propagates the caller's X-Request-ID or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}

// corsMiddleware allows browser clients from the configured origins.
// A "*" entry allows every origin. Requests from other origins are served
// unchanged, without Access-Control headers, and the browser enforces the policy.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Requested-With", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if cfg.AllowAllOrigins {
		return cors.New(cfg)
	}
	cfg.AllowOrigins = origins

	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	handler := cors.New(cfg)

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" && !allowed[origin] {
			c.Next()
			return
		}
		handler(c)
	}
}
