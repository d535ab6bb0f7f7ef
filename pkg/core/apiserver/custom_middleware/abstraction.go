package custom_middleware

import (
	"fmt"
	"net/http"

	"fossil-api/cmd/fossil-api-server/app/config"
	northApiRoute "fossil-api/pkg/north/api/route"
)

type ITokenAuth interface {
	TokenAuth(next http.Handler) http.Handler
	GetWhiteListedRoutes() []string
	SetWhiteListedRoutes(routes []string)
}

type TokenAuthType string

const (
	DefaultTokenAuth TokenAuthType = "default"
)

func NewTokenAuth(authConfig *config.AuthConfig, taType TokenAuthType, routeProvider northApiRoute.IRouteProvider) (ITokenAuth, error) {
	if authConfig == nil || len(authConfig.Tokens) == 0 {
		return nil, fmt.Errorf("no token configured")
	}

	switch taType {
	case DefaultTokenAuth:
		auth := &defaultTokenAuth{
			tokens:        make(map[string]struct{}, len(authConfig.Tokens)),
			routeProvider: routeProvider,
		}
		for _, token := range authConfig.Tokens {
			auth.tokens[token] = struct{}{}
		}
		auth.SetWhiteListedRoutes(authConfig.WhiteList)
		return auth, nil
	}

	return nil, fmt.Errorf("unknown token auth type: '%s'", taType)
}
