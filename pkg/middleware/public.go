package middleware

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// PublicAPI applies the headers every guest website endpoint needs: the
// site frontend is served from a different origin, and intake responses
// must never be cached.
func PublicAPI() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		h := e.Response.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")

		if e.Request.Method == http.MethodOptions {
			return e.NoContent(http.StatusNoContent)
		}
		if e.Request.Method == http.MethodPost {
			h.Set("Cache-Control", "no-store")
		}

		return e.Next()
	}
}
