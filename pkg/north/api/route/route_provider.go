package route

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type DefaultRouteProvider struct {
	root      *chi.Mux
	AccessMap map[string]map[string]RouteAccess
}

func NewDefaultRootRoute() *DefaultRouteProvider {
	provider := &DefaultRouteProvider{
		root: chi.NewRouter(),
	}
	return provider
}

func (r *DefaultRouteProvider) RegisterRoute(path string, routeBuilder *ChiRouteBuilder) {
	route, access := routeBuilder.Build()
	r.root.Route(path, route)
	if r.AccessMap == nil {
		r.AccessMap = access
	} else {
		for k, v := range access {
			r.AccessMap[k] = v
		}
	}
}

// AddCommonMiddlewares must run before any route is registered, chi panics otherwise.
func (r *DefaultRouteProvider) AddCommonMiddlewares() {
	r.root.Use(middleware.RequestID)
	r.root.Use(middleware.RealIP)
	r.root.Use(middleware.Logger)
	r.root.Use(middleware.Recoverer)
}

func (r *DefaultRouteProvider) AddGlobalMiddlewares(middlewares ...func(http.Handler) http.Handler) {
	r.root.Use(middlewares...)
}

func (r *DefaultRouteProvider) GetRouteAuthorization() map[string]map[string]RouteAccess {
	return r.AccessMap
}

func (r *DefaultRouteProvider) GetRoot() *chi.Mux {
	return r.root
}
