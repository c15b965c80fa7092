package apiversion

import (
	"context"
	"net/http"
	"strings"
)

// Response headers written by Report.
const (
	HeaderSupportedVersions  = "api-supported-versions"
	HeaderDeprecatedVersions = "api-deprecated-versions"
	HeaderDeprecation        = "Deprecation"
)

type versionCtxKey struct{}

// ContextWithVersion stores the served version in ctx.
func ContextWithVersion(ctx context.Context, v Version) context.Context {
	return context.WithValue(ctx, versionCtxKey{}, v)
}

// FromContext retrieves the version stored by ContextWithVersion.
func FromContext(ctx context.Context) (Version, bool) {
	v, ok := ctx.Value(versionCtxKey{}).(Version)
	return v, ok
}

// Report returns middleware that advertises the versions of an API and tags
// requests with the version being served.
func Report(served Descriptor, all Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var supported, deprecated []string
			if all != nil {
				for _, d := range all.Descriptions() {
					if d.Deprecated {
						deprecated = append(deprecated, d.Version.String())
					} else {
						supported = append(supported, d.Version.String())
					}
				}
			}

			if len(supported) > 0 {
				w.Header().Set(HeaderSupportedVersions, strings.Join(supported, ", "))
			}
			if len(deprecated) > 0 {
				w.Header().Set(HeaderDeprecatedVersions, strings.Join(deprecated, ", "))
			}
			if served.Deprecated {
				w.Header().Set(HeaderDeprecation, "true")
			}

			next.ServeHTTP(w, r.WithContext(ContextWithVersion(r.Context(), served.Version)))
		})
	}
}
