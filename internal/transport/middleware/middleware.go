// Package middleware holds the HTTP middleware of the REST API.
// Each constructor returns a Middleware that can be passed to chi's Use.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler
