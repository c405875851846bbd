package strada

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Engine represents the main engine of the web server. The route table is
// populated during setup and is read-only once the engine starts serving, so
// concurrent requests share it without locking.
type Engine struct {
	routes     []*Route
	middleware []MiddlewareFunc
	debug      bool
	logger     *slog.Logger
	renderer   *Renderer
	notFound   HandlerFunc
}

// New creates a new Engine.
func New() *Engine {
	return &Engine{
		logger: slog.Default(),
	}
}

// SetDebug switches the engine into debug mode: colored request logs and
// template hot reload.
func (g *Engine) SetDebug(debug bool) {
	g.debug = debug
}

// Debug reports whether the engine runs in debug mode.
func (g *Engine) Debug() bool {
	return g.debug
}

// SetLogger replaces the engine's logger.
func (g *Engine) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// NotFound replaces the handler invoked when no route matches. The default
// writes a plain 404.
func (g *Engine) NotFound(handler HandlerFunc) {
	g.notFound = handler
}

// Routes returns the route table in registration order.
func (g *Engine) Routes() []*Route {
	return g.routes
}

// ServeHTTP dispatches the request: the first route matching the path and
// method wins, its middleware chain runs, and the handler writes the
// response. No handler is ever invoked for an unmatched path.
func (g *Engine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

	route, params, err := g.Lookup(r.Method, r.URL.Path)
	if err != nil {
		if errors.Is(err, ErrMethodNotAllowed) {
			http.Error(sw, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Unmatched paths still run the engine middleware, so 404s are
		// logged and counted and a panicking NotFound handler is recovered.
		notFound := g.notFound
		if notFound == nil {
			notFound = func(c *Context) { http.NotFound(c.writer, c.request) }
		}
		chain := make([]MiddlewareFunc, 0, len(g.middleware)+1)
		chain = append(chain, g.middleware...)
		chain = append(chain, handlerToMiddleware(notFound))

		c := g.newContext(sw, r, nil, nil, chain)
		c.Next()
		return
	}

	chain := make([]MiddlewareFunc, 0, len(route.middleware)+1)
	chain = append(chain, route.middleware...)
	chain = append(chain, handlerToMiddleware(route.handler))

	c := g.newContext(sw, r, route, params, chain)
	c.Next()
}

// Get adds a GET route to the engine
func (g *Engine) Get(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return g.addRoute(http.MethodGet, path, handler, middleware, nil)
}

// Post adds a POST route to the engine
func (g *Engine) Post(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return g.addRoute(http.MethodPost, path, handler, middleware, nil)
}

// Put adds a PUT route to the engine
func (g *Engine) Put(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return g.addRoute(http.MethodPut, path, handler, middleware, nil)
}

// Patch adds a PATCH route to the engine
func (g *Engine) Patch(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return g.addRoute(http.MethodPatch, path, handler, middleware, nil)
}

// Delete adds a DELETE route to the engine
func (g *Engine) Delete(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return g.addRoute(http.MethodDelete, path, handler, middleware, nil)
}

// Options adds an OPTIONS route to the engine
func (g *Engine) Options(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return g.addRoute(http.MethodOptions, path, handler, middleware, nil)
}

// Head adds a HEAD route to the engine
func (g *Engine) Head(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return g.addRoute(http.MethodHead, path, handler, middleware, nil)
}

// Handle adds a route for an arbitrary HTTP method.
func (g *Engine) Handle(method, path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return g.addRoute(method, path, handler, middleware, nil)
}

// Group creates a new RouteGroup
func (g *Engine) Group(basePath string) *RouteGroup {
	return &RouteGroup{
		engine:   g,
		basePath: basePath,
	}
}

// UseMiddleware adds middleware that runs for every route registered after
// this call.
func (g *Engine) UseMiddleware(middleware MiddlewareFunc) {
	g.middleware = append(g.middleware, middleware)
}

// Run starts the web server after printing the route table.
func (g *Engine) Run(addr string) error {
	g.logRoutes()
	g.logger.Info("listening", slog.String("addr", addr))
	return http.ListenAndServe(addr, g)
}

// RunWithContext starts the web server and shuts it down gracefully when the
// context is canceled.
func (g *Engine) RunWithContext(ctx context.Context, addr string) error {
	g.logRoutes()

	srv := &http.Server{
		Addr:    addr,
		Handler: g,
	}

	errC := make(chan error, 1)
	go func() {
		errC <- srv.ListenAndServe()
	}()
	g.logger.Info("listening", slog.String("addr", addr))

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	g.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (g *Engine) logRoutes() {
	for _, route := range g.routes {
		if route.method == http.MethodOptions {
			continue
		}
		g.logger.Info("route",
			slog.String("method", route.method),
			slog.String("pattern", route.pattern),
			slog.String("name", route.name),
		)
	}
}

// addRoute compiles the pattern and appends the route to the table. Group
// base paths and middleware are merged walking up the group hierarchy, then
// the engine's own middleware is prepended.
func (g *Engine) addRoute(method string, path string, handler HandlerFunc, middleware []MiddlewareFunc, group *RouteGroup) *Route {
	fullPath := path
	var groupMiddleware []MiddlewareFunc

	if group != nil {
		for p := group; p != nil; p = p.parent {
			fullPath = p.basePath + fullPath
		}
		for p := group; p != nil; p = p.parent {
			groupMiddleware = append(append([]MiddlewareFunc{}, p.middleware...), groupMiddleware...)
		}
	}

	merged := make([]MiddlewareFunc, 0, len(g.middleware)+len(groupMiddleware)+len(middleware))
	merged = append(merged, g.middleware...)
	merged = append(merged, groupMiddleware...)
	merged = append(merged, middleware...)

	pattern, segments := compilePattern(fullPath)

	route := &Route{
		method:     method,
		pattern:    pattern,
		segments:   segments,
		handler:    handler,
		middleware: merged,
	}
	g.routes = append(g.routes, route)
	return route
}

// WrapHandler adapts a plain http.Handler for use as a route handler.
func WrapHandler(h http.Handler) HandlerFunc {
	return func(c *Context) {
		h.ServeHTTP(c.writer, c.request)
	}
}

func handlerToMiddleware(h HandlerFunc) MiddlewareFunc {
	return func(c *Context) {
		h(c)
	}
}

// statusWriter records the status code written by the handler so that
// logging and metrics middleware can observe it after Next returns.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}
