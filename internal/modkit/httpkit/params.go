package httpkit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	perr "marketflow/internal/platform/errors"
)

// Param returns the named chi route parameter
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// MustParam returns the named route parameter or an invalid-argument error when blank
func MustParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", perr.InvalidArgf("missing path parameter %q", name)
	}
	return v, nil
}
