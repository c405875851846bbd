package strada

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by Lookup when no registered pattern matches
	// the request path.
	ErrNotFound = errors.New("strada: no route matches path")

	// ErrMethodNotAllowed is returned by Lookup when a pattern matches the
	// request path but no route of the request's method does.
	ErrMethodNotAllowed = errors.New("strada: method not allowed")

	// ErrNoRoute is returned by Reverse when no route carries the given name.
	ErrNoRoute = errors.New("strada: no route with name")
)

// Lookup resolves a method and path against the route table. Routes are
// scanned in registration order and the first match wins, so overlapping
// patterns are resolved by declaration order rather than specificity.
func (g *Engine) Lookup(method, path string) (*Route, Params, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	parts := strings.Split(path, "/")

	pathMatched := false
	for _, route := range g.routes {
		params, ok := route.match(parts)
		if !ok {
			continue
		}
		if route.method != method {
			pathMatched = true
			continue
		}
		return route, params, nil
	}

	if pathMatched {
		return nil, nil, ErrMethodNotAllowed
	}
	return nil, nil, ErrNotFound
}
