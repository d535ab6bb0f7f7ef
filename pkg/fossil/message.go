package fossil

// user facing texts, in the language of the chat ui
const (
	msgIrrelevant       = "抱歉，我是化石鑑定助理，只能回答與化石、古生物或地質相關的問題。請描述你發現的化石特徵，例如形狀、大小、紋路或出土地點。"
	msgNeedContextGraph = "我還沒有可以畫圖的鑑定結果喔！請先描述你的化石特徵，讓我完成鑑定後再請我畫演化圖。"
	msgNeedContextAsk   = "目前還沒有鑑定結果可以延伸說明。請先描述你的化石，我鑑定後你就可以繼續追問。"
	msgLLMUnavailable   = "抱歉，鑑定服務暫時無法連線，請稍後再試一次。"
	msgGraphMalformed   = "抱歉，這次產生的演化圖格式不正確，請再試一次。"
	msgGraphFailed      = "抱歉，演化圖繪製失敗，請稍後再試一次。"
	msgGraphDone        = "這是根據上一次鑑定結果繪製的演化分支圖，黃色節點為最可能的物種。"
	msgRecordUnreadable = "這一鏟挖到的資料無法辨識，換個地方再試試看吧。"
	msgNothingFound     = "這裡沒有挖到任何化石。"
	msgExamineFailed    = "<p>抱歉，解說服務暫時無法使用，請稍後再試。</p>"

	altEvolutionGraph = "Evolution Graph"
	altFossilImage    = "Fossil Image"
)
