package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/harshpatel958/kontax/internal/common"
	"github.com/harshpatel958/kontax/internal/logging"
	"github.com/harshpatel958/kontax/internal/server/auth"
)

type ctxKey string

const deviceKey ctxKey = "device"

// withDeviceAuth validates the Bearer access token and stores the device
// ID in the request context. Expired tokens get a distinct error body so
// clients know to refresh and retry.
func withDeviceAuth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AccessTokenHeaderName)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, http.StatusUnauthorized, "missing token")
				return
			}

			deviceID, err := auth.GetDeviceIDFromToken(token, secretKey)
			if err != nil {
				if errors.Is(err, common.ErrTokenExpired) {
					writeError(w, http.StatusUnauthorized, common.ErrTokenExpired.Error())
					return
				}
				writeError(w, http.StatusUnauthorized, common.ErrInvalidToken.Error())
				return
			}

			ctx := context.WithValue(r.Context(), deviceKey, deviceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetDeviceIDFromContext extracts the authenticated device ID from the
// request context. Returns an empty string if not found.
func GetDeviceIDFromContext(ctx context.Context) string {
	val := ctx.Value(deviceKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

// withRequestLogging logs each request with its status and duration.
func withRequestLogging(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}
