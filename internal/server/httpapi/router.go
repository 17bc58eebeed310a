package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/harshpatel958/kontax/internal/logging"
)

// newRouter mounts the API under /api and the public hosted card pages
// under /c.
//
// Routes:
//
//	POST /api/register            → register a device
//	POST /api/login               → obtain a token pair
//	POST /api/refresh             → rotate a refresh token
//	GET  /api/ping                → health check
//	POST /api/cards               → publish a card (auth required)
//	POST /api/voicenotes/presign  → presign a voice note upload (auth required)
//	GET  /api/voicenotes/presign  → presign a voice note download (auth required)
//	GET  /c/{id}                  → public hosted card page
func newRouter(h *Handler, logger logging.Logger, secretKey []byte) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(withRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)
		r.Get("/ping", h.ping)

		// Protected group: requires a valid access token
		r.Group(func(r chi.Router) {
			r.Use(withDeviceAuth(secretKey))
			r.Post("/cards", h.publishCard)
			r.Post("/voicenotes/presign", h.presignVoiceNote)
			r.Get("/voicenotes/presign", h.presignVoiceNotePlayback)
		})
	})

	r.Get("/c/{id}", h.hostedCard)

	return r
}
