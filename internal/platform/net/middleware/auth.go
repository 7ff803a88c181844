package middleware

import (
	"net/http"

	pnet "marketflow/internal/platform/net"
)

// Principal is the authenticated actor resolved from request credentials
type Principal struct {
	UserID string
	Roles  []string
}

// AuthPort is a tiny seam the ident service implements
type AuthPort interface {
	// Parse resolves the request credentials to a principal or an error
	Parse(r *http.Request) (Principal, error)
}

// AuthOptional resolves credentials when they are presented and continues
// anonymously otherwise. Routes behind it serve both signed-in and signed-out
// callers; a resolvable token still lands a principal on the context
func AuthOptional(p AuthPort) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p != nil {
				if pr, err := p.Parse(r); err == nil {
					r = r.WithContext(pnet.WithPrincipal(r.Context(), pr.UserID, pr.Roles))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Auth is a no-op until wired. It uses the port when provided
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			pr, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithPrincipal(r.Context(), pr.UserID, pr.Roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
