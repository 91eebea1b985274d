package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by their first path segment.
// Paths matching no module (health probes, readiness) fall through to a
// native ServeMux.
type Router struct {
	modules map[string]*Module
	native  *http.ServeMux
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a handler on the fallback mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers a module under its prefix. Later mounts with the same
// prefix replace earlier ones.
func (r *Router) Mount(mod *Module) {
	r.modules[mod.prefix] = mod
}

// ServeHTTP routes to the module owning the request's leading segment, or to
// the native mux when none does. Trailing slashes are stripped before
// matching so /api/objects/ and /api/objects dispatch identically.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := trimTrailingSlash(req)

	if mod, ok := r.modules[leadingSegment(path)]; ok {
		mod.Serve(w, req)
		return
	}
	r.native.ServeHTTP(w, req)
}

func leadingSegment(path string) string {
	parts := strings.SplitN(path, "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[1]
	}
	return path
}

func trimTrailingSlash(req *http.Request) string {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}
	return path
}
