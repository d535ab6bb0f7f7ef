package route

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
)

type IRouteProvider interface {
	RegisterRoute(path string, routeBuilder *ChiRouteBuilder)
	AddCommonMiddlewares()
	AddGlobalMiddlewares(middlewares ...func(http.Handler) http.Handler)
	// path|method|access
	GetRouteAuthorization() map[string]map[string]RouteAccess
	GetRoot() *chi.Mux
}

type IRouteRegister interface {
	RegisterRoute(provider IRouteProvider)
}

type RouteType string

const (
	DefaultRootRouteType RouteType = "default"
)

type ChiSubRouteBuilder struct {
	Method      string
	Pattern     string
	Handler     http.HandlerFunc
	RouteAccess RouteAccess
}

type ChiRouteBuilder struct {
	PathPrefix     string
	MethodHandlers []ChiSubRouteBuilder
	With           []func(http.Handler) http.Handler
}

// RouteAccess tells the token middleware whether a route may be called without a token.
type RouteAccess struct {
	Anonymous bool
}

func (builder *ChiRouteBuilder) Build() (func(r chi.Router), map[string]map[string]RouteAccess) {
	authorization := make(map[string]map[string]RouteAccess)
	return func(r chi.Router) {
		for _, middlewares := range builder.With {
			r.Use(middlewares)
		}

		for _, methodHandler := range builder.MethodHandlers {
			r.MethodFunc(methodHandler.Method, methodHandler.Pattern, methodHandler.Handler)
			CombinePathAccess(builder, methodHandler, authorization)
		}
	}, authorization
}

func NewRouteProvider(routeType RouteType) IRouteProvider {
	switch routeType {
	case DefaultRootRouteType:
		return NewDefaultRootRoute()
	default:
		return nil
	}
}

func CombinePathAccess(builder *ChiRouteBuilder, subBuilder ChiSubRouteBuilder, pathAccessSet map[string]map[string]RouteAccess) {
	reqUrl := path.Join(builder.PathPrefix, subBuilder.Pattern)
	if _, ok := pathAccessSet[reqUrl]; !ok {
		pathAccessSet[reqUrl] = make(map[string]RouteAccess)
	}
	pathAccessSet[reqUrl][subBuilder.Method] = subBuilder.RouteAccess
}
