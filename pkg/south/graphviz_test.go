package south

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"fossil-api/cmd/fossil-api-server/app/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// fakeDot copies stdin to the -o target, enough to stand in for graphviz.
const fakeDot = `#!/bin/sh
while [ $# -gt 0 ]; do
  if [ "$1" = "-o" ]; then out="$2"; fi
  shift
done
cat > "$out"
`

const failingDot = `#!/bin/sh
echo "syntax error in line 1" >&2
exit 1
`

func writeScript(dir, name, content string) string {
	p := filepath.Join(dir, name)
	Expect(os.WriteFile(p, []byte(content), 0755)).To(Succeed())
	return p
}

var _ = Describe("GraphvizRenderer test", func() {
	var tmpDir string
	var graphConfig *config.Graph
	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "fossil-graph")
		Expect(err).To(BeNil())
		graphConfig = config.DefaultConfig().Graph
	})
	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("should write image and return static url", func() {
		graphConfig.DotBinary = writeScript(tmpDir, "dot", fakeDot)
		staticDir := filepath.Join(tmpDir, "static")
		imageUrl, err := NewGraphvizRenderer(graphConfig, staticDir).Render(context.Background(), "digraph G { a -> b }")
		Expect(err).To(BeNil())
		Expect(strings.HasPrefix(imageUrl, "/static/evo_")).To(BeTrue())
		Expect(strings.HasSuffix(imageUrl, ".png")).To(BeTrue())

		content, err := os.ReadFile(filepath.Join(staticDir, strings.TrimPrefix(imageUrl, "/static/")))
		Expect(err).To(BeNil())
		Expect(string(content)).To(Equal("digraph G { a -> b }"))
	})

	It("should use distinct names per render", func() {
		graphConfig.DotBinary = writeScript(tmpDir, "dot", fakeDot)
		renderer := NewGraphvizRenderer(graphConfig, tmpDir)
		first, err := renderer.Render(context.Background(), "digraph G {}")
		Expect(err).To(BeNil())
		second, err := renderer.Render(context.Background(), "digraph G {}")
		Expect(err).To(BeNil())
		Expect(first).NotTo(Equal(second))
	})

	It("should report dot failure with stderr", func() {
		graphConfig.DotBinary = writeScript(tmpDir, "dot", failingDot)
		_, err := NewGraphvizRenderer(graphConfig, tmpDir).Render(context.Background(), "digraph G {")
		Expect(err).NotTo(BeNil())
		Expect(err.Error()).To(ContainSubstring("syntax error"))
	})

	It("should fail when dot is missing", func() {
		graphConfig.DotBinary = filepath.Join(tmpDir, "no-such-dot")
		_, err := NewGraphvizRenderer(graphConfig, tmpDir).Render(context.Background(), "digraph G {}")
		Expect(err).NotTo(BeNil())
	})

	It("should reject empty source", func() {
		_, err := NewGraphvizRenderer(graphConfig, tmpDir).Render(context.Background(), "  ")
		Expect(err).To(Equal(ErrEmptyGraph))
	})
})
