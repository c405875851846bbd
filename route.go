package strada

import "strings"

// HandlerFunc is the unit of logic that produces a response for a matched
// request.
type HandlerFunc func(*Context)

// MiddlewareFunc runs before the handler and may abort the chain.
type MiddlewareFunc func(*Context)

// Params holds the path parameters captured while matching a request.
type Params map[string]string

// segment is one compiled element of a route pattern.
type segment struct {
	literal string
	param   string // name of a ":param" segment
	rest    bool   // trailing "*rest" segment, param holds the name
}

// Route represents a HTTP route. Routes are immutable after registration,
// except for Named, which is part of the registration call chain.
type Route struct {
	method     string
	pattern    string
	name       string
	segments   []segment
	handler    HandlerFunc
	middleware []MiddlewareFunc
}

// Method returns the HTTP method the route responds to.
func (r *Route) Method() string { return r.method }

// Pattern returns the pattern the route was registered with, normalized to a
// leading slash.
func (r *Route) Pattern() string { return r.pattern }

// Name returns the route name, or "" if the route is unnamed.
func (r *Route) Name() string { return r.name }

// Named gives the route a name for reverse URL building. The engine does not
// require names to be unique; as with matching, the earliest registration
// wins.
func (r *Route) Named(name string) *Route {
	r.name = name
	return r
}

// compilePattern splits a pattern into matchable segments. ":name" captures a
// single path segment, a trailing "*name" captures the remainder of the path.
// Everything else is matched literally.
func compilePattern(pattern string) (string, []segment) {
	if !strings.HasPrefix(pattern, "/") {
		pattern = "/" + pattern
	}

	parts := strings.Split(pattern, "/")
	segments := make([]segment, 0, len(parts))

	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, ":"):
			segments = append(segments, segment{param: part[1:]})
		case strings.HasPrefix(part, "*") && i == len(parts)-1:
			segments = append(segments, segment{param: part[1:], rest: true})
		default:
			segments = append(segments, segment{literal: part})
		}
	}

	return pattern, segments
}

// match reports whether the split request path matches the route's pattern,
// and captures any path parameters. The path must already be split on "/"
// with a leading empty element.
func (r *Route) match(parts []string) (Params, bool) {
	params := Params{}

	for i, seg := range r.segments {
		if seg.rest {
			params[seg.param] = strings.Join(parts[i:], "/")
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		if seg.param != "" {
			params[seg.param] = parts[i]
			continue
		}
		if seg.literal != parts[i] {
			return nil, false
		}
	}

	if len(parts) != len(r.segments) {
		return nil, false
	}

	return params, true
}
