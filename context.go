package strada

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Context represents request context
type Context struct {
	engine     *Engine
	writer     *statusWriter
	request    *http.Request
	route      *Route
	Headers    http.Header
	aborted    bool
	params     Params
	index      int
	middleware []MiddlewareFunc
	items      map[string]any
}

func (g *Engine) newContext(w *statusWriter, r *http.Request, route *Route, params Params, chain []MiddlewareFunc) *Context {
	return &Context{
		engine:     g,
		writer:     w,
		request:    r,
		route:      route,
		params:     params,
		Headers:    r.Header,
		middleware: chain,
	}
}

// Request returns the underlying http.Request.
func (c *Context) Request() *http.Request {
	return c.request
}

// Writer returns the response writer.
func (c *Context) Writer() http.ResponseWriter {
	return c.writer
}

// Route returns the matched route, or nil inside a NotFound handler.
func (c *Context) Route() *Route {
	return c.route
}

// SetItem stores an item on the context under the given key.
func (c *Context) SetItem(key string, item any) {
	if c.items == nil {
		c.items = make(map[string]any)
	}
	c.items[key] = item
}

// GetItem returns the item stored under the given key.
func (c *Context) GetItem(key string) any {
	return c.items[key]
}

// Abort stops the middleware chain; no later middleware or handler runs.
func (c *Context) Abort() {
	c.aborted = true
}

// Next proceeds to the next middleware
func (c *Context) Next() {
	for c.index < len(c.middleware) && !c.aborted {
		middleware := c.middleware[c.index]
		c.index++
		middleware(c)
	}
}

// Redirect redirects to the specific url with chosen status code
func (c *Context) Redirect(url string, statusCode int) {
	http.Redirect(c.writer, c.request, url, statusCode)
}

// Query gets a query value
func (c *Context) Query(key string) string {
	return c.request.URL.Query().Get(key)
}

// Param gets a path parameter
func (c *Context) Param(key string) string {
	return c.params[key]
}

// Params returns all captured path parameters.
func (c *Context) Params() Params {
	return c.params
}

// PostForm gets a post form value with presented key
func (c *Context) PostForm(key string) string {
	if err := c.request.ParseForm(); err != nil {
		return ""
	}
	return c.request.PostFormValue(key)
}

// BindJSON decodes the request body into v.
func (c *Context) BindJSON(v any) error {
	decoder := json.NewDecoder(c.request.Body)
	defer c.request.Body.Close()
	return decoder.Decode(v)
}

// Status writes the response header with the given status code.
func (c *Context) Status(statusCode int) {
	c.writer.WriteHeader(statusCode)
}

// StatusCode returns the status code written so far, defaulting to 200.
func (c *Context) StatusCode() int {
	return c.writer.status
}

// SetHeader sets a response header.
func (c *Context) SetHeader(key, value string) {
	c.writer.Header().Set(key, value)
}

// JSON sends a JSON response
func (c *Context) JSON(statusCode int, v any) {
	c.writer.Header().Set("Content-Type", "application/json")
	c.writer.WriteHeader(statusCode)
	json.NewEncoder(c.writer).Encode(v)
}

// String sends a plain text response.
func (c *Context) String(statusCode int, format string, args ...any) {
	c.writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.writer.WriteHeader(statusCode)
	fmt.Fprintf(c.writer, format, args...)
}

// HTML renders the named template with the engine's renderer. Rendering
// errors surface as a 500 after logging; by then headers are already sent,
// so the body may be partial.
func (c *Context) HTML(statusCode int, name string, data any) {
	if c.engine.renderer == nil {
		c.String(http.StatusInternalServerError, "no templates loaded")
		return
	}
	c.writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.writer.WriteHeader(statusCode)
	if err := c.engine.renderer.Render(c.writer, name, data); err != nil {
		c.engine.logger.Error("template render failed", "template", name, "error", err)
	}
}
