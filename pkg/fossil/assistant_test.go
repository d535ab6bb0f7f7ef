package fossil

import (
	"context"

	"fossil-api/cmd/fossil-api-server/app/config"
	conversationV1 "fossil-api/pkg/north/api/conversation/core/v1"
	fossilV1 "fossil-api/pkg/north/api/fossil/core/v1"
	customErr "fossil-api/pkg/util/error"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const identifyReply = "**1. 推測學名與中文俗名**\n* 學名：*Palaeoloxodon*\n\n[[Wiki: Palaeoloxodon]]"

var historyWithReport = []conversationV1.Message{
	{Role: conversationV1.RoleUser, Content: "左鎮挖到的大牙齒"},
	{Role: conversationV1.RoleAssistant, Content: longReport},
}

var buryPost = fossilV1.BuryPost{Lat: 23.05, Lng: 120.36, Era: "更新世"}

var fossilRecord = fossilV1.FossilRecord{Found: true, Name: "古菱齒象", Lat: 23.05, Lng: 120.36}

var _ = Describe("Assistant test", func() {
	var llm *stubLLM
	var images *stubImageFinder
	var renderer *stubRenderer
	var fossilConfig *config.Fossil
	var assistant func() *Assistant

	BeforeEach(func() {
		llm = newStubLLM("IDENTIFY")
		images = &stubImageFinder{url: "https://upload.example/palaeoloxodon.jpg"}
		renderer = &stubRenderer{url: "/static/evo_abc.png"}
		fossilConfig = config.DefaultConfig().Fossil
		assistant = func() *Assistant {
			return NewAssistant(llm, images, renderer, fossilConfig)
		}
	})

	Describe("IDENTIFY", func() {
		It("should clean the reply and attach the wiki image", func() {
			llm.replies["identify"] = identifyReply
			reply := assistant().Reply(context.Background(), nil, "左鎮挖到的大牙齒")
			Expect(reply.Intent).To(Equal(IntentIdentify))
			Expect(reply.Text).NotTo(ContainSubstring("[[Wiki"))
			Expect(images.keywords).To(Equal([]string{"Palaeoloxodon"}))
			Expect(*reply.ImageUrl()).To(Equal("https://upload.example/palaeoloxodon.jpg"))
			Expect(reply.StoredContent()).To(HaveSuffix("\n\n<img src=\"https://upload.example/palaeoloxodon.jpg\" alt=\"Fossil Image\">"))
			Expect(llm.prompts["identify"]).To(ContainSubstring("左鎮挖到的大牙齒"))
			Expect(renderer.sources).To(BeEmpty())
		})

		It("should keep a nil image when the wiki has nothing", func() {
			llm.replies["identify"] = identifyReply
			images.url = ""
			reply := assistant().Reply(context.Background(), nil, "大牙齒")
			Expect(reply.ImageUrl()).To(BeNil())
			Expect(reply.StoredContent()).To(Equal(reply.Text))
		})

		It("should render a graph after identification when autoGraph is on", func() {
			fossilConfig.AutoGraph = true
			llm.replies["identify"] = identifyReply
			llm.replies["graph"] = "digraph G { a -> b }"
			reply := assistant().Reply(context.Background(), nil, "大牙齒")
			Expect(renderer.sources).To(Equal([]string{"digraph G { a -> b }"}))
			Expect(reply.Images).To(HaveLen(2))
			Expect(*reply.ImageUrl()).To(Equal("https://upload.example/palaeoloxodon.jpg"))
			Expect(reply.StoredContent()).To(ContainSubstring("alt=\"Evolution Graph\""))
			Expect(llm.prompts["graph"]).To(ContainSubstring("Palaeoloxodon"))
		})

		It("should apologize when the gateway fails", func() {
			llm.fail("identify", "Error: 503 - Service Unavailable")
			reply := assistant().Reply(context.Background(), nil, "大牙齒")
			Expect(reply.Text).To(Equal(msgLLMUnavailable))
			Expect(images.keywords).To(BeEmpty())
		})

		It("should keep a model reply that starts like an error marker", func() {
			llm.replies["identify"] = "Error: 這不是化石，而是結核。"
			reply := assistant().Reply(context.Background(), nil, "圓形石頭")
			Expect(reply.Text).To(Equal("Error: 這不是化石，而是結核。"))
		})
	})

	Describe("GRAPH", func() {
		BeforeEach(func() {
			llm.intent = "GRAPH"
		})

		It("should ask for an identification first when there is no context", func() {
			reply := assistant().Reply(context.Background(), nil, "畫圖")
			Expect(reply.Intent).To(Equal(IntentGraph))
			Expect(reply.Text).To(Equal(msgNeedContextGraph))
			Expect(reply.ImageUrl()).To(BeNil())
			Expect(llm.asked).To(BeEmpty())
		})

		It("should render the cleaned DOT source", func() {
			llm.replies["graph"] = "```dot\ndigraph Evolution { a -> b }\n```"
			reply := assistant().Reply(context.Background(), historyWithReport, "畫圖")
			Expect(renderer.sources).To(Equal([]string{"digraph Evolution { a -> b }"}))
			Expect(*reply.ImageUrl()).To(Equal("/static/evo_abc.png"))
			Expect(reply.StoredContent()).To(ContainSubstring("<img src=\"/static/evo_abc.png\" alt=\"Evolution Graph\">"))
			Expect(llm.prompts["graph"]).To(ContainSubstring(longReport))
		})

		It("should refuse malformed DOT", func() {
			llm.replies["graph"] = "graph G { a -- b }"
			reply := assistant().Reply(context.Background(), historyWithReport, "畫圖")
			Expect(reply.Text).To(Equal(msgGraphMalformed))
			Expect(renderer.sources).To(BeEmpty())
		})

		It("should apologize when rendering fails", func() {
			llm.replies["graph"] = "digraph G {"
			renderer.err = errRenderBroken
			reply := assistant().Reply(context.Background(), historyWithReport, "畫圖")
			Expect(reply.Text).To(Equal(msgGraphFailed))
			Expect(reply.ImageUrl()).To(BeNil())
		})

		It("should apologize when the gateway fails", func() {
			llm.fail("graph", "Connection Error: timeout")
			reply := assistant().Reply(context.Background(), historyWithReport, "畫圖")
			Expect(reply.Text).To(Equal(msgLLMUnavailable))
		})
	})

	Describe("EXPLAIN", func() {
		BeforeEach(func() {
			llm.intent = "EXPLAIN"
		})

		It("should guide the user without context", func() {
			reply := assistant().Reply(context.Background(), nil, "為什麼？")
			Expect(reply.Text).To(Equal(msgNeedContextAsk))
			Expect(llm.asked).To(BeEmpty())
		})

		It("should return the reply verbatim", func() {
			llm.replies["explain"] = "  牠主要以草為食。[[Wiki: x]]  "
			reply := assistant().Reply(context.Background(), historyWithReport, "牠吃什麼？")
			Expect(reply.Text).To(Equal("  牠主要以草為食。[[Wiki: x]]  "))
			Expect(llm.prompts["explain"]).To(ContainSubstring(longReport))
			Expect(llm.prompts["explain"]).To(ContainSubstring("牠吃什麼？"))
		})
	})

	It("should refuse IRRELEVANT without asking the model", func() {
		llm.intent = "IRRELEVANT"
		reply := assistant().Reply(context.Background(), historyWithReport, "今天天氣如何")
		Expect(reply.Intent).To(Equal(IntentIrrelevant))
		Expect(reply.Text).To(Equal(msgIrrelevant))
		Expect(llm.asked).To(BeEmpty())
	})

	It("should take the identify branch when classification fails", func() {
		llm.intent = "Error: 500 - internal"
		llm.replies["identify"] = "鑑定結果"
		reply := assistant().Reply(context.Background(), nil, "三葉蟲")
		Expect(reply.Intent).To(Equal(IntentIdentify))
		Expect(llm.asked).To(Equal([]string{"identify"}))
	})

	Describe("map test", func() {
		It("should reject coordinates off the globe as a bad request", func() {
			Expect(ValidateBuryPost(&buryPost)).To(Succeed())
			err := ValidateBuryPost(&fossilV1.BuryPost{Lat: 91, Lng: 120.36})
			Expect(customErr.IsBadRequest(err)).To(BeTrue())
			Expect(customErr.IsBadRequest(ValidateBuryPost(&fossilV1.BuryPost{Lat: 23, Lng: -181}))).To(BeTrue())
		})

		It("should return the parsed record", func() {
			llm.replies["bury"] = `{"found": true, "name": "古菱齒象", "scientific_name": "Palaeoloxodon"}`
			record := assistant().Bury(context.Background(), &buryPost)
			Expect(record.Found).To(BeTrue())
			Expect(record.Lat).To(Equal(buryPost.Lat))
			Expect(llm.prompts["bury"]).To(ContainSubstring("更新世"))
		})

		It("should turn gateway failure into a not found record", func() {
			llm.fail("bury", "Connection Error: refused")
			record := assistant().Bury(context.Background(), &buryPost)
			Expect(record.Found).To(BeFalse())
			Expect(record.Reason).To(Equal(msgLLMUnavailable))
		})

		It("should strip fences from the examine html", func() {
			llm.replies["examine"] = "```html\n<p>古菱齒象</p>\n```"
			record := assistant().Bury(context.Background(), &buryPost)
			Expect(assistant().Examine(context.Background(), record)).To(Equal("<p>古菱齒象</p>"))
			Expect(llm.prompts["examine"]).To(ContainSubstring(`"lat":23.05`))
		})

		It("should apologize when examine fails", func() {
			llm.fail("examine", "Error: 429 - slow down")
			Expect(assistant().Examine(context.Background(), &fossilRecord)).To(Equal(msgExamineFailed))
		})
	})
})
