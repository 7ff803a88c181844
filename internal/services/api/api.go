// Package api provides the HTTP API for the application
package api

import (
	"net/http"

	"marketflow/internal/platform/config"
	"marketflow/internal/platform/logger"
	phttp "marketflow/internal/platform/net/http"
	"marketflow/internal/platform/net/middleware"
	"marketflow/internal/platform/store"

	"marketflow/internal/modkit"
	"marketflow/internal/modkit/httpkit"
	"marketflow/internal/modkit/module"
	"marketflow/internal/modkit/swaggerkit"

	adminmod "marketflow/internal/services/api/admin/module"
	catalogmod "marketflow/internal/services/api/catalog/module"
	metamod "marketflow/internal/services/api/meta/module"
	requestsmod "marketflow/internal/services/api/requests/module"
	sessionmod "marketflow/internal/services/api/session/module"
	statsmod "marketflow/internal/services/api/stats/module"
	ticketsmod "marketflow/internal/services/api/tickets/module"
	identrepo "marketflow/internal/services/ident/repo"
	identsvc "marketflow/internal/services/ident/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Bearer auth resolves through the ident service; sessions and roles are
	// read fresh from postgres on every request
	ident := identsvc.New(deps.PG, identrepo.NewPG())
	auth := httpkit.NewPortFunc(func(r *http.Request, token string) (middleware.Principal, error) {
		p, err := ident.Resolve(r.Context(), token)
		if err != nil {
			return middleware.Principal{}, err
		}
		return middleware.Principal{UserID: p.UserID, Roles: p.Roles}, nil
	})

	// Construct the admin module first and extract its audit Recorder port so
	// the other management modules can log privileged mutations through it
	admin := adminmod.New(deps, modkit.WithPorts(adminmod.Ports{Auth: auth}))
	audit := module.MustPortsOf[adminmod.Exposed](admin).Recorder

	mods := []module.Module{
		metamod.New(deps),
		sessionmod.New(deps, modkit.WithPorts(sessionmod.Ports{Auth: auth, Ident: ident})),
		catalogmod.New(deps, modkit.WithPorts(catalogmod.Ports{Auth: auth})),
		requestsmod.New(deps, modkit.WithPorts(requestsmod.Ports{Auth: auth, Audit: audit})),
		ticketsmod.New(deps, modkit.WithPorts(ticketsmod.Ports{Auth: auth, Audit: audit})),
		statsmod.New(deps, modkit.WithPorts(statsmod.Ports{Auth: auth})),
		admin,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
