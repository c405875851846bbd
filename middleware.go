package strada

import (
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request ID assigned by
// RequestID.
const RequestIDHeader = "X-Request-Id"

// requestIDKey is the context item key used by RequestID.
const requestIDKey = "strada.request_id"

// Recovery returns middleware that converts a handler panic into a 500
// response instead of tearing down the connection.
func Recovery() MiddlewareFunc {
	return func(c *Context) {
		defer func() {
			if rec := recover(); rec != nil {
				c.engine.logger.Error("handler panic",
					"panic", rec,
					"path", c.request.URL.Path,
					"stack", string(debug.Stack()),
				)
				c.Abort()
				if !c.writer.written {
					http.Error(c.writer, "Internal server error", http.StatusInternalServerError)
				}
			}
		}()
		c.Next()
	}
}

// RequestID returns middleware that tags every request with a UUID, exposed
// both as a response header and as a context item. An ID already present on
// the incoming request is kept.
func RequestID() MiddlewareFunc {
	return func(c *Context) {
		id := c.request.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.SetItem(requestIDKey, id)
		c.SetHeader(RequestIDHeader, id)
	}
}

// GetRequestID returns the request ID assigned by RequestID, or "".
func GetRequestID(c *Context) string {
	id, _ := c.GetItem(requestIDKey).(string)
	return id
}
