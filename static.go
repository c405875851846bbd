package strada

import (
	"net/http"
	"strings"
)

// Static serves files from dir under the given URL prefix. It registers a
// catch-all GET route, so it participates in ordered matching like any other
// route: register it after more specific patterns that share the prefix.
func (g *Engine) Static(prefix, dir string) *Route {
	prefix = strings.TrimSuffix(prefix, "/")
	fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))

	return g.Get(prefix+"/*filepath", func(c *Context) {
		fileServer.ServeHTTP(c.writer, c.request)
	})
}
