package fossil

import (
	"fossil-api/cmd/fossil-api-server/app/config"
	"fossil-api/pkg/south"
)

// NewAssistantFromConfig wires the configured chat provider, wiki lookup and graph renderer.
func NewAssistantFromConfig(serverConfig *config.Config) (*Assistant, error) {
	provider, err := south.NewChatProvider(serverConfig.LLM)
	if err != nil {
		return nil, err
	}
	images, err := south.NewWikiImageFinder(serverConfig.Wiki)
	if err != nil {
		return nil, err
	}
	renderer := south.NewGraphvizRenderer(serverConfig.Graph, serverConfig.FossilApiConfig.StaticDir)
	return NewAssistant(south.NewLLMGateway(provider, serverConfig.LLM), images, renderer, serverConfig.Fossil), nil
}
