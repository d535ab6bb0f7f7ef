package fossil

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("parse test", func() {
	DescribeTable("ExtractKeyword",
		func(reply, expected string) {
			Expect(ExtractKeyword(reply)).To(Equal(expected))
		},
		Entry("plain tag", "報告內容\n[[Wiki: Palaeoloxodon]]", "Palaeoloxodon"),
		Entry("loose spacing and case", "[[ wiki :  Elaphurus davidianus ]]", "Elaphurus davidianus"),
		Entry("markdown inside tag", "[[Wiki: *Macaca_cyclopis*]]", "Macacacyclopis"),
		Entry("tag across lines", "[[Wiki:\nTrilobita\n]]", "Trilobita"),
		Entry("bold fallback", "* **學名**：*Ammonoidea*", "學名"),
		Entry("nothing", "no markers at all", ""),
		Entry("unclosed tag falls back", "[[Wiki: Ammonite", ""),
	)

	It("should strip every wiki tag from the response", func() {
		Expect(CleanResponse("鑑定結果：菊石\n\n[[Wiki: Ammonite]]\n")).To(Equal("鑑定結果：菊石"))
		Expect(CleanResponse("[[WIKI:a]] 中間 [[wiki : b]]")).To(Equal("中間"))
		Expect(CleanResponse("沒有標籤")).To(Equal("沒有標籤"))
	})

	Describe("DOT cleaning test", func() {
		It("should remove fences", func() {
			source := CleanDot("```dot\ndigraph G { a -> b }\n```")
			Expect(source).To(Equal("digraph G { a -> b }"))
			Expect(ValidateDot(source)).To(BeTrue())
		})

		It("should reject replies without digraph", func() {
			Expect(ValidateDot(CleanDot("graph G { a -- b }"))).To(BeFalse())
			Expect(ValidateDot(CleanDot("抱歉，我無法畫圖"))).To(BeFalse())
			Expect(ValidateDot(CleanDot(""))).To(BeFalse())
		})
	})

	Describe("ParseFossilRecord test", func() {
		It("should decode a found record and keep coordinates from the request", func() {
			record := ParseFossilRecord(`{"found": true, "name": "古菱齒象", "scientific_name": "Palaeoloxodon", "era": "更新世", "lat": 1, "lng": 2}`, 23.1, 120.3)
			Expect(record.Found).To(BeTrue())
			Expect(record.Name).To(Equal("古菱齒象"))
			Expect(record.Lat).To(Equal(23.1))
			Expect(record.Lng).To(Equal(120.3))
		})

		It("should tolerate fences and prose", func() {
			record := ParseFossilRecord("好的，結果如下：\n```json\n{\"found\": true, \"name\": \"三葉蟲\"}\n```\n祝挖掘愉快", 0, 0)
			Expect(record.Found).To(BeTrue())
			Expect(record.Name).To(Equal("三葉蟲"))
		})

		It("should keep the model's not found reason", func() {
			record := ParseFossilRecord(`{"found": false, "reason": "這裡是深海"}`, 0, 0)
			Expect(record.Found).To(BeFalse())
			Expect(record.Reason).To(Equal("這裡是深海"))
		})

		It("should fill a default reason", func() {
			Expect(ParseFossilRecord(`{"found": false}`, 0, 0).Reason).To(Equal(msgNothingFound))
		})

		DescribeTable("malformed replies become not found",
			func(reply string) {
				record := ParseFossilRecord(reply, 10, 20)
				Expect(record.Found).To(BeFalse())
				Expect(record.Reason).To(Equal(msgRecordUnreadable))
				Expect(record.Lat).To(Equal(float64(10)))
			},
			Entry("empty", ""),
			Entry("prose", "我不知道"),
			Entry("broken json", `{"found": true, "name": }`),
			Entry("reversed braces", "} {"),
			Entry("found without a name", `{"found": true}`),
			Entry("wrong type", `{"found": "yes"}`),
		)
	})
})
