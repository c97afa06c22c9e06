// Package version tags requests with the API version of the subrouter
// that matched them.
package version

import (
	"net/http"

	id "kontrola/pkg/domain"
	"kontrola/pkg/requestcontext"
)

// Header echoes the served version to the caller.
const Header = "X-API-Version"

// ExtractVersion is mounted inside a versioned chi subrouter:
//
//	r.Route(id.APIVersionV1.Prefix(), func(sub chi.Router) {
//	    sub.Use(version.ExtractVersion(id.APIVersionV1))
//	})
func ExtractVersion(v id.APIVersion) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(Header, v.String())
			next.ServeHTTP(w, r.WithContext(requestcontext.WithAPIVersion(r.Context(), v)))
		})
	}
}
