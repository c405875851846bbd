package strada

import "net/http"

// RouteGroup registers routes under a shared base path with shared
// middleware. Groups can nest; base paths and middleware of all parents are
// merged at registration time.
type RouteGroup struct {
	engine     *Engine
	parent     *RouteGroup
	basePath   string
	middleware []MiddlewareFunc
}

// Group creates a nested RouteGroup.
func (rg *RouteGroup) Group(basePath string) *RouteGroup {
	return &RouteGroup{
		engine:   rg.engine,
		parent:   rg,
		basePath: basePath,
	}
}

// UseMiddleware adds middleware that runs for every route registered on this
// group (and its children) after this call.
func (rg *RouteGroup) UseMiddleware(middleware MiddlewareFunc) {
	rg.middleware = append(rg.middleware, middleware)
}

// Get adds a GET route to the group
func (rg *RouteGroup) Get(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return rg.engine.addRoute(http.MethodGet, path, handler, middleware, rg)
}

// Post adds a POST route to the group
func (rg *RouteGroup) Post(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return rg.engine.addRoute(http.MethodPost, path, handler, middleware, rg)
}

// Put adds a PUT route to the group
func (rg *RouteGroup) Put(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return rg.engine.addRoute(http.MethodPut, path, handler, middleware, rg)
}

// Patch adds a PATCH route to the group
func (rg *RouteGroup) Patch(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return rg.engine.addRoute(http.MethodPatch, path, handler, middleware, rg)
}

// Delete adds a DELETE route to the group
func (rg *RouteGroup) Delete(path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return rg.engine.addRoute(http.MethodDelete, path, handler, middleware, rg)
}

// Handle adds a route for an arbitrary HTTP method to the group.
func (rg *RouteGroup) Handle(method, path string, handler HandlerFunc, middleware ...MiddlewareFunc) *Route {
	return rg.engine.addRoute(method, path, handler, middleware, rg)
}
