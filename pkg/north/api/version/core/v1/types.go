package v1

type VersionInfo struct {
	ReleaseVersion string `json:"releaseVersion,omitempty"`
	GitVersion     string `json:"gitVersion,omitempty"`
	LLMProvider    string `json:"llmProvider,omitempty"`
	LLMModel       string `json:"llmModel,omitempty"`
	StoreBackend   string `json:"storeBackend,omitempty"`
}
