package strada

import (
	"net/http"
	"strings"
)

// CorsConfig configures the CORS middleware.
type CorsConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// CORS returns middleware that sets CORS headers for allowed origins and
// answers preflight OPTIONS requests with 204. Preflights only reach the
// middleware when an OPTIONS route covers the path — routes are
// method-scoped, so without one the request is rejected with 405 before any
// middleware runs. A catch-all does the job:
//
//	e.UseMiddleware(strada.CORS(cfg))
//	e.Options("/*path", func(c *strada.Context) {})
func CORS(cfg CorsConfig) MiddlewareFunc {
	return func(c *Context) {
		origin := c.request.Header.Get("Origin")
		if origin == "" {
			return
		}

		for _, allowed := range cfg.AllowedOrigins {
			if allowed == origin || allowed == "*" {
				c.SetHeader("Access-Control-Allow-Origin", allowed)
				c.SetHeader("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
				c.SetHeader("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
				break
			}
		}

		if c.request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
		}
	}
}
