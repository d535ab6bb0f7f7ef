package custom_middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	fossilApiLog "fossil-api/pkg/logger"
	northApiRoute "fossil-api/pkg/north/api/route"
	customErr "fossil-api/pkg/util/error"
	httpHelper "fossil-api/pkg/util/http"

	"github.com/go-chi/chi/v5"
)

type defaultTokenAuth struct {
	tokens        map[string]struct{}
	routeProvider northApiRoute.IRouteProvider
	whiteList     map[string]struct{}
	// white list entries ending with /*
	whiteListPrefix []string
}

func getRoutePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	routePath := r.URL.Path
	if r.URL.RawPath != "" {
		routePath = r.URL.RawPath
	}

	tctx := chi.NewRouteContext()
	if rctx.Routes == nil || !rctx.Routes.Match(tctx, r.Method, routePath) {
		return routePath
	}

	// Match fills tctx with the pattern
	return strings.TrimSuffix(tctx.RoutePattern(), "/")
}

func (ta *defaultTokenAuth) TokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		selectedRoute := getRoutePattern(r)
		if ta.isWhiteListed(selectedRoute, r.URL.Path) || ta.isAnonymous(selectedRoute, r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		err := ta.authorize(r)
		if err != nil {
			if customErr.IsUnauthorized(err) {
				httpHelper.WriteCustomErrorAndLog(w, "Unauthorized", http.StatusUnauthorized, "", err)
				return
			}
			httpHelper.WriteCustomErrorAndLog(w, "Failed to check token", http.StatusInternalServerError, "", err)
			return
		}

		fossilApiLog.Logger.Debug("token accepted", "route", selectedRoute)
		next.ServeHTTP(w, r)
	})
}

func (ta *defaultTokenAuth) authorize(r *http.Request) error {
	token := r.Header.Get("Authorization")
	if !strings.HasPrefix(token, "Bearer ") {
		return customErr.NewUnauthorized(http.StatusUnauthorized, "no bearer token found in header with authorization enabled")
	}
	if !ta.knownToken(strings.TrimPrefix(token, "Bearer ")) {
		return customErr.NewUnauthorized(http.StatusUnauthorized, "invalid token")
	}
	return nil
}

func (ta *defaultTokenAuth) knownToken(candidate string) bool {
	found := false
	for token := range ta.tokens {
		if subtle.ConstantTimeCompare([]byte(token), []byte(candidate)) == 1 {
			found = true
		}
	}
	return found
}

func (ta *defaultTokenAuth) isWhiteListed(selectedRoute, requestPath string) bool {
	if _, found := ta.whiteList[selectedRoute]; found {
		return true
	}
	for _, prefix := range ta.whiteListPrefix {
		if strings.HasPrefix(requestPath, prefix) {
			return true
		}
	}
	return false
}

func (ta *defaultTokenAuth) isAnonymous(selectedRoute, method string) bool {
	if ta.routeProvider == nil {
		return false
	}
	methods, found := ta.routeProvider.GetRouteAuthorization()[selectedRoute]
	if !found {
		return false
	}
	return methods[method].Anonymous
}

func (ta *defaultTokenAuth) GetWhiteListedRoutes() []string {
	routes := make([]string, 0, len(ta.whiteList))
	for route := range ta.whiteList {
		routes = append(routes, route)
	}
	return routes
}

func (ta *defaultTokenAuth) SetWhiteListedRoutes(routes []string) {
	ta.whiteList = make(map[string]struct{}, len(routes))
	ta.whiteListPrefix = nil
	for _, route := range routes {
		ta.whiteList[route] = struct{}{}
		if strings.HasSuffix(route, "/*") {
			ta.whiteListPrefix = append(ta.whiteListPrefix, strings.TrimSuffix(route, "*"))
		}
	}
}
