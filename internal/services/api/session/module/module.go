// Package module wires session endpoints into the API using modkit
package module

import (
	"net/http"

	modkit "marketflow/internal/modkit"
	"marketflow/internal/modkit/httpkit"
	"marketflow/internal/platform/net/middleware"
	str "marketflow/internal/platform/strings"
	sessionhttp "marketflow/internal/services/api/session/http"
	identdom "marketflow/internal/services/ident/domain"
)

// Ports declares the injected dependencies for this API module
type Ports struct {
	Auth  middleware.AuthPort
	Ident identdom.Ports
}

// Module implements the session module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the session module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("session"), modkit.WithPrefix("/session")}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Auth == nil {
		panic("session API module requires Auth port (from services/ident)")
	}
	if injected.Ident == nil {
		panic("session API module requires the ident service ports")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, injected.Auth, func(pr httpkit.Router) {
			sessionhttp.Register(pr, injected.Ident)
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return nil }
