package strada

import (
	"fmt"
	"strings"
)

// Reverse builds a concrete URL for the named route, substituting params for
// the pattern's parameter segments. Every ":param" and "*rest" segment must
// have a value in params.
func (g *Engine) Reverse(name string, params Params) (string, error) {
	for _, route := range g.routes {
		if route.name != name {
			continue
		}
		return route.fill(params)
	}
	return "", fmt.Errorf("%w: %q", ErrNoRoute, name)
}

func (r *Route) fill(params Params) (string, error) {
	parts := make([]string, 0, len(r.segments))

	for _, seg := range r.segments {
		if seg.param == "" {
			parts = append(parts, seg.literal)
			continue
		}
		value, ok := params[seg.param]
		if !ok {
			return "", fmt.Errorf("reverse %q: missing param %q", r.pattern, seg.param)
		}
		parts = append(parts, value)
	}

	return strings.Join(parts, "/"), nil
}
