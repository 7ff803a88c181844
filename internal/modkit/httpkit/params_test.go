package httpkit

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "marketflow/internal/platform/errors"
)

func TestParam_FromRouteContext(t *testing.T) {
	t.Parallel()

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("listingID", "l-42")

	req := httptest.NewRequest("GET", "/x", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	if got := Param(req, "listingID"); got != "l-42" {
		t.Fatalf("Param = %q, want %q", got, "l-42")
	}
}

func TestMustParam_BlankIsInvalidArgument(t *testing.T) {
	t.Parallel()

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "   ")

	req := httptest.NewRequest("GET", "/x", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	if _, err := MustParam(req, "id"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("MustParam blank = %v, want invalid argument", err)
	}
}
