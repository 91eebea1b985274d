package routes

import "net/http"

// Group collects the routes of one handler under a shared prefix. Children
// nest: a child's effective prefix is the concatenation of every ancestor
// prefix plus its own.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register installs every route of the given groups on the mux using the
// "METHOD /prefix/pattern" ServeMux form.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		group.register(mux, "")
	}
}

func (g Group) register(mux *http.ServeMux, parent string) {
	prefix := parent + g.Prefix
	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range g.Children {
		child.register(mux, prefix)
	}
}
