package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"marketflow/internal/platform/net"
	"marketflow/internal/platform/net/middleware"
)

type fakeAuthPort struct {
	pr  middleware.Principal
	err error
}

func (f fakeAuthPort) Parse(r *http.Request) (middleware.Principal, error) {
	return f.pr, f.err
}

func writeStub(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
}

func TestAuth_NilPortPassesThrough(t *testing.T) {
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(200)
	})

	mw := middleware.Auth(nil, writeStub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if !nextCalled {
		t.Fatal("expected next to be called")
	}
	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestAuth_ErrorFromPortWritesMappedError(t *testing.T) {
	p := fakeAuthPort{err: http.ErrNoCookie}
	mw := middleware.Auth(p, writeStub)

	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if nextCalled {
		t.Fatal("did not expect next to be called on auth error")
	}
	// exact status is delegated to pnet.Error, which can vary
	// assert it is a 4xx or 5xx rather than a 2xx
	if rr.Code < 400 {
		t.Fatalf("expected error status got %d", rr.Code)
	}
}

func TestAuthOptional_SetsPrincipalWhenTokenResolves(t *testing.T) {
	p := fakeAuthPort{pr: middleware.Principal{UserID: "u7", Roles: []string{"buyer"}}}
	mw := middleware.AuthOptional(p)

	var seenUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser = net.UserID(r.Context())
		w.WriteHeader(200)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if seenUser != "u7" {
		t.Fatalf("expected user u7 got %q", seenUser)
	}
}

func TestAuthOptional_AnonymousContinues(t *testing.T) {
	p := fakeAuthPort{err: http.ErrNoCookie}
	mw := middleware.AuthOptional(p)

	var nextCalled bool
	var seenUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		seenUser = net.UserID(r.Context())
		w.WriteHeader(200)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if !nextCalled {
		t.Fatal("expected next to be called for anonymous request")
	}
	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if seenUser != "" {
		t.Fatalf("expected no principal, got %q", seenUser)
	}
}

func TestAuth_SetsPrincipalOnContext(t *testing.T) {
	p := fakeAuthPort{pr: middleware.Principal{UserID: "u1", Roles: []string{"vendor"}}}
	mw := middleware.Auth(p, writeStub)

	var seenUser string
	var seenRoles []string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser = net.UserID(r.Context())
		seenRoles = net.Roles(r.Context())
		w.WriteHeader(200)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if seenUser != "u1" {
		t.Fatalf("expected user u1 got %q", seenUser)
	}
	if !reflect.DeepEqual(seenRoles, []string{"vendor"}) {
		t.Fatalf("expected roles [vendor] got %v", seenRoles)
	}
}
