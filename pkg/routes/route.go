// Package routes declares HTTP surfaces as nested route groups that domain
// handlers return and the API module registers in one pass.
package routes

import "net/http"

// Route binds one "METHOD pattern" entry to a handler. Pattern is relative
// to the enclosing group prefix, so a handler mounted at /objects declares
// "/{id}" rather than "/objects/{id}".
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
