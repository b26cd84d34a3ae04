package middleware

import (
	"net/http"

	"github.com/go-http-utils/headers"

	"github.com/eurofurence/reg-response-result/internal/config"
	"github.com/eurofurence/reg-response-result/internal/logging"
)

// CorsHeadersMiddleware adds permissive cors headers when cors checks are disabled in the
// configuration. This is only meant for local development.
func CorsHeadersMiddleware(conf *config.CorsConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if conf != nil && conf.DisableCors {
				logging.LoggerFromContext(r.Context()).Debug("sending headers to disable CORS. This configuration is not intended for production use, only for local development!")
				w.Header().Set(headers.AccessControlAllowOrigin, conf.AllowOrigin)
				w.Header().Set(headers.AccessControlAllowMethods, "POST, GET, OPTIONS, PUT, DELETE")
				w.Header().Set(headers.AccessControlAllowHeaders, "content-type")
				w.Header().Set(headers.AccessControlAllowCredentials, "true")
				w.Header().Set(headers.AccessControlExposeHeaders, "Location, "+RequestIDHeader)

				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
