package strada

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	methodColor = color.New(color.FgMagenta, color.Bold)
	routeColor  = color.New(color.FgBlue, color.Bold)
	paramColor  = color.New(color.FgYellow, color.Bold)
	valueColor  = color.New(color.FgGreen, color.Bold)
)

// Logger returns access-log middleware. In debug mode it prints a colorized
// line per request; in release mode it logs through the engine's slog logger.
func Logger() MiddlewareFunc {
	return func(c *Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		if c.engine.debug {
			logColorized(c, elapsed)
			return
		}

		c.engine.logger.Info("request",
			slog.String("method", c.request.Method),
			slog.Int("status", c.StatusCode()),
			slog.String("path", c.request.URL.Path),
			slog.Duration("elapsed", elapsed),
		)
	}
}

func logColorized(c *Context, elapsed time.Duration) {
	timestamp := time.Now().Format("2006/01/02 15:04:05")

	var paramsString string
	if len(c.params) > 0 {
		paramParts := make([]string, 0, len(c.params))
		for key, value := range c.params {
			paramParts = append(paramParts, fmt.Sprintf("%s: %s",
				paramColor.Sprint(key), valueColor.Sprint(value)))
		}
		paramsString = " | Params: " + strings.Join(paramParts, ", ")
	}

	fmt.Printf("%s | %s | Status: %s | Route: %s | %s%s\n",
		timestamp,
		methodColor.Sprint(c.request.Method),
		statusColor(c.StatusCode()).Sprint(c.StatusCode()),
		routeColor.Sprint(c.request.URL.Path),
		elapsed,
		paramsString,
	)
}

func statusColor(status int) *color.Color {
	switch {
	case status >= 200 && status < 300:
		return color.New(color.FgGreen, color.Bold)
	case status >= 400 && status < 500:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
