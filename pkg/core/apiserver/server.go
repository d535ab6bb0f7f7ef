package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fossil-api/cmd/fossil-api-server/app/config"
	"fossil-api/pkg/fossil"
	fossilApiLog "fossil-api/pkg/logger"
	"fossil-api/pkg/store"
	"fossil-api/pkg/util/common"

	"github.com/common-nighthawk/go-figure"
)

const shutdownTimeout = 5 * time.Second

func RunServer(serverConfig *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RunServerWithContext(ctx, serverConfig)
}

// RunServerWithContext serves until ctx is done or the listener fails.
func RunServerWithContext(ctx context.Context, serverConfig *config.Config) error {
	err := common.CreateDirIfNotExists(serverConfig.FossilApiConfig.StaticDir)
	if err != nil {
		fossilApiLog.Logger.Error("Failed to create static dir", "error", err)
		return err
	}

	conversationStore, err := store.NewConversationStore(serverConfig.Store)
	if err != nil {
		fossilApiLog.Logger.Error("Failed to create conversation store", "error", err)
		return err
	}

	assistant, err := fossil.NewAssistantFromConfig(serverConfig)
	if err != nil {
		fossilApiLog.Logger.Error("Failed to create assistant", "error", err)
		return err
	}

	rootRouteProvider, err := GetRootRouteProvider(serverConfig, assistant, store.NewConversationManager(conversationStore, serverConfig.Fossil))
	if err != nil {
		fossilApiLog.Logger.Error("Failed to build routes", "error", err)
		return err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.FossilApiConfig.Port),
		Handler: rootRouteProvider.GetRoot(),
	}

	serveErr := make(chan error, 1)
	go func() {
		fmt.Println(figure.NewColorFigure(strings.ToUpper("fossil-api"), "isometric1", "green", true).String())
		fossilApiLog.Logger.Info("Starting server", "port", serverConfig.FossilApiConfig.Port,
			"provider", serverConfig.LLM.Provider, "model", serverConfig.LLM.Model, "store", serverConfig.Store.Backend)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			fossilApiLog.Logger.Error("Failed to start server", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
		fossilApiLog.Logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
