package middleware

import (
	"net/http"
	"strings"
)

const corsAllowHeaders = "Content-Type, " + HeaderCorrelationID

// CORS lets a browser front end served from another origin drive the
// storefront API. A single "*" entry reflects any origin.
func CORS(allowOrigins []string) func(http.Handler) http.Handler {
	allowAll := len(allowOrigins) == 1 && allowOrigins[0] == "*"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed := setCORSHeaders(w, r.Header.Get("Origin"), allowOrigins, allowAll)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if !allowed {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setCORSHeaders(w http.ResponseWriter, origin string, allowOrigins []string, allowAll bool) bool {
	if origin == "" || !(allowAll || originAllowed(origin, allowOrigins)) {
		return false
	}

	// reflect instead of "*" so credentials keep working
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Add("Vary", "Origin")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
	w.Header().Set("Access-Control-Expose-Headers", HeaderCorrelationID)
	return true
}

func originAllowed(origin string, allow []string) bool {
	for _, a := range allow {
		if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(origin)) {
			return true
		}
	}
	return false
}
