// Package middleware provides the HTTP middleware stack shared by all
// modules: ordered application, request logging, and CORS.
package middleware

import "net/http"

// System is an ordered middleware stack. Use appends; Apply wraps a handler
// so the first middleware added sees the request first.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	entries []func(http.Handler) http.Handler
}

// New creates an empty middleware System.
func New() System {
	return &stack{}
}

func (s *stack) Use(fn func(http.Handler) http.Handler) {
	s.entries = append(s.entries, fn)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.entries) - 1; i >= 0; i-- {
		handler = s.entries[i](handler)
	}
	return handler
}
