package app

import (
	"bytes"
	"context"
	"strings"

	"fossil-api/pkg/fossil"
	"fossil-api/pkg/south"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type scriptedLLM struct {
	replies map[string]string
	asked   []string
}

func (s *scriptedLLM) Ask(ctx context.Context, task, prompt string) south.Answer {
	s.asked = append(s.asked, task)
	return south.Answer{Text: s.replies[task]}
}

func (s *scriptedLLM) Classify(ctx context.Context, prompt string) string {
	return "IDENTIFY"
}

var _ = Describe("RunChat test", func() {
	var llm *scriptedLLM
	var out *bytes.Buffer

	BeforeEach(func() {
		llm = &scriptedLLM{replies: map[string]string{
			"identify": "鑑定結果：台灣獼猴 [[Wiki: Macaca cyclopis]]",
			"graph":    "```dot\ndigraph Evolution { Macaca -> \"Macaca cyclopis\" }\n```",
		}}
		out = &bytes.Buffer{}
	})

	run := func(input string) {
		assistant := fossil.NewAssistant(llm, nil, nil, nil)
		Expect(RunChat(context.Background(), assistant, strings.NewReader(input), out)).To(Succeed())
	}

	It("should identify and print DOT on y", func() {
		run("左鎮的猴子頭骨\ny\nq\n")
		Expect(llm.asked).To(Equal([]string{"identify", "graph"}))
		Expect(out.String()).To(ContainSubstring("台灣獼猴"))
		Expect(out.String()).NotTo(ContainSubstring("[[Wiki"))
		Expect(out.String()).To(ContainSubstring("digraph Evolution"))
		Expect(out.String()).NotTo(ContainSubstring("```"))
	})

	It("should skip the graph on n", func() {
		run("左鎮的猴子頭骨\nn\nq\n")
		Expect(llm.asked).To(Equal([]string{"identify"}))
	})

	It("should quit immediately on q and on end of input", func() {
		run("q\n")
		Expect(llm.asked).To(BeEmpty())
		run("")
		Expect(llm.asked).To(BeEmpty())
	})

	It("should quit on an upper case Q", func() {
		run("Q\n左鎮的猴子頭骨\n")
		Expect(llm.asked).To(BeEmpty())
	})

	It("should report a malformed graph", func() {
		llm.replies["graph"] = "I cannot draw that"
		run("貝殼\ny\n")
		Expect(out.String()).To(ContainSubstring("無法產生演化圖"))
	})
})
