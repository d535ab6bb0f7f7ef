package south

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"fossil-api/cmd/fossil-api-server/app/config"
	fossilApiLog "fossil-api/pkg/logger"
	"fossil-api/pkg/util/common"

	"github.com/google/uuid"
)

const StaticUrlPrefix = "/static"

var ErrEmptyGraph = errors.New("empty graph source")

type IGraphRenderer interface {
	// Render rasterizes DOT source into the static dir and returns the url it is served under.
	Render(ctx context.Context, dotSource string) (string, error)
}

type GraphvizRenderer struct {
	config    *config.Graph
	staticDir string
}

func NewGraphvizRenderer(graphConfig *config.Graph, staticDir string) *GraphvizRenderer {
	return &GraphvizRenderer{
		config:    graphConfig,
		staticDir: staticDir,
	}
}

func (r *GraphvizRenderer) Render(ctx context.Context, dotSource string) (string, error) {
	if strings.TrimSpace(dotSource) == "" {
		return "", ErrEmptyGraph
	}
	if err := common.CreateDirIfNotExists(r.staticDir); err != nil {
		return "", fmt.Errorf("create static dir: %w", err)
	}

	format := common.GetStringValueOrDefault(r.config.Format, "png")
	fileName := fmt.Sprintf("evo_%s.%s", strings.ReplaceAll(uuid.NewString(), "-", ""), format)
	outPath := filepath.Join(r.staticDir, fileName)

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, common.GetStringValueOrDefault(r.config.DotBinary, "dot"), "-T"+format, "-o", outPath)
	cmd.Stdin = strings.NewReader(dotSource)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("dot failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if !common.FileExists(outPath) {
		return "", fmt.Errorf("dot produced no output at %s", outPath)
	}

	fossilApiLog.Logger.Info("graph rendered", "file", outPath)
	return path.Join(StaticUrlPrefix, fileName), nil
}
