// Package module wires service requests into the API using modkit
package module

import (
	"net/http"

	modkit "marketflow/internal/modkit"
	"marketflow/internal/modkit/httpkit"
	"marketflow/internal/platform/net/middleware"
	str "marketflow/internal/platform/strings"
	admindom "marketflow/internal/services/api/admin/domain"
	requestshttp "marketflow/internal/services/api/requests/http"
	requestsrepo "marketflow/internal/services/api/requests/repo"
	requestssvc "marketflow/internal/services/api/requests/service"
)

// Ports declares the injected dependencies for this API module
type Ports struct {
	Auth  middleware.AuthPort
	Audit admindom.RecorderPort
}

// Module implements the requests module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc requestssvc.Service
}

// New constructs the requests module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("requests"), modkit.WithPrefix("/requests")}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Auth == nil {
		panic("requests API module requires Auth port (from services/ident)")
	}
	if injected.Audit == nil {
		panic("requests API module requires Audit recorder port (from api/admin)")
	}

	repo := requestsrepo.NewPG()
	svc := requestssvc.New(deps.PG, repo, injected.Audit)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptRequestsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, injected.Auth, func(pr httpkit.Router) {
			requestshttp.Register(pr, m.svc)
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
