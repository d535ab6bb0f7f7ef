package apiserver

import (
	"net/http"
	"strings"

	"fossil-api/cmd/fossil-api-server/app/config"
	customMiddleware "fossil-api/pkg/core/apiserver/custom_middleware"
	"fossil-api/pkg/fossil"
	fossilApiLog "fossil-api/pkg/logger"
	northApiRoute "fossil-api/pkg/north/api/route"
	"fossil-api/pkg/store"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "fossil-api/docs"
)

func GetRootRouteProvider(serverConfig *config.Config, assistant *fossil.Assistant, conversations *store.ConversationManager) (northApiRoute.IRouteProvider, error) {
	routeBuilder := northApiRoute.NewDefaultRootRoute()
	// load all common middlewares
	routeBuilder.AddCommonMiddlewares()

	if serverConfig.AuthConfig != nil && len(serverConfig.AuthConfig.Tokens) > 0 {
		// the access map is read per request so the routes may be registered after this
		tokenAuth, err := customMiddleware.NewTokenAuth(serverConfig.AuthConfig, customMiddleware.DefaultTokenAuth, routeBuilder)
		if err != nil {
			return nil, err
		}
		routeBuilder.AddGlobalMiddlewares(tokenAuth.TokenAuth)
	} else {
		fossilApiLog.Logger.Warn("no auth token configured, every route is open")
	}

	defaultRouteRegister := northApiRoute.NewDefaultRouteRegister(serverConfig, assistant, conversations)
	defaultRouteRegister.RegisterRoute(routeBuilder)

	root := routeBuilder.GetRoot()
	staticDir := serverConfig.FossilApiConfig.StaticDir
	root.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	if !serverConfig.FossilApiConfig.DisableDoc {
		fossilApiLog.Logger.Info("Attempting to mount doc route")
		root.Mount("/doc", httpSwagger.WrapHandler)
	}

	fossilApiLog.Logger.Debug("routes registered", "groups", strings.Join(routeGroups(routeBuilder), ","))
	return routeBuilder, nil
}

func routeGroups(provider northApiRoute.IRouteProvider) []string {
	var groups []string
	for _, route := range provider.GetRoot().Routes() {
		groups = append(groups, route.Pattern)
	}
	return groups
}
