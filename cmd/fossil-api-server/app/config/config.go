package config

import "time"

type Config struct {
	AuthConfig      *AuthConfig      `json:"auth,omitempty" yaml:"auth,omitempty"`
	FossilApiConfig *FossilApiConfig `json:"fossil_api,omitempty" yaml:"fossilApi,omitempty"`
	LLM             *LLM             `json:"llm,omitempty" yaml:"llm,omitempty"`
	Wiki            *Wiki            `json:"wiki,omitempty" yaml:"wiki,omitempty"`
	Graph           *Graph           `json:"graph,omitempty" yaml:"graph,omitempty"`
	Store           *Store           `json:"store,omitempty" yaml:"store,omitempty"`
	Fossil          *Fossil          `json:"fossil,omitempty" yaml:"fossil,omitempty"`
}

type FossilApiConfig struct {
	Port string `json:"port,omitempty" yaml:"port,omitempty"`
	// static dir holds rendered graphs, it is served under /static and never pruned
	StaticDir      string `json:"static_dir,omitempty" yaml:"staticDir,omitempty"`
	LogLevel       string `json:"log_level,omitempty" yaml:"logLevel,omitempty"`
	ReleaseVersion string `json:"release_version,omitempty" yaml:"releaseVersion,omitempty"`
	GitVersion     string `json:"git_version,omitempty" yaml:"gitVersion,omitempty"`
	DisableDoc     bool   `json:"disable_doc,omitempty" yaml:"disableDoc,omitempty"`
}

// AuthConfig with no tokens leaves every route open.
type AuthConfig struct {
	Tokens    []string `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	WhiteList []string `json:"white_list,omitempty" yaml:"whiteList,omitempty"`
}

type LLMProvider string

const (
	LLMProviderGateway   LLMProvider = "gateway"
	LLMProviderOpenAI    LLMProvider = "openai"
	LLMProviderAnthropic LLMProvider = "anthropic"
)

type LLM struct {
	Provider LLMProvider `json:"provider,omitempty" yaml:"provider,omitempty"`
	Endpoint string      `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	// never commit a real key, prefer FOSSIL_LLM_API_KEY
	APIKey  string        `json:"api_key,omitempty" yaml:"apiKey,omitempty"`
	Model   string        `json:"model,omitempty" yaml:"model,omitempty"`
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	// classification runs colder and shorter than the other prompts
	IntentTimeout     time.Duration `json:"intent_timeout,omitempty" yaml:"intentTimeout,omitempty"`
	IntentTemperature float64       `json:"intent_temperature" yaml:"intentTemperature"`
	IntentMaxTokens   int           `json:"intent_max_tokens,omitempty" yaml:"intentMaxTokens,omitempty"`
	Temperature       float64       `json:"temperature" yaml:"temperature"`
	MaxTokens         int           `json:"max_tokens,omitempty" yaml:"maxTokens,omitempty"`
	SkipTlsCheck      bool          `json:"skip_tls_check,omitempty" yaml:"skipTlsCheck,omitempty"`
}

type Wiki struct {
	Endpoint  string        `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	UserAgent string        `json:"user_agent,omitempty" yaml:"userAgent,omitempty"`
	ThumbSize int           `json:"thumb_size,omitempty" yaml:"thumbSize,omitempty"`
	Timeout   time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	CacheTTL  time.Duration `json:"cache_ttl,omitempty" yaml:"cacheTTL,omitempty"`
	Disabled  bool          `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

type Graph struct {
	DotBinary string        `json:"dot_binary,omitempty" yaml:"dotBinary,omitempty"`
	Format    string        `json:"format,omitempty" yaml:"format,omitempty"`
	Timeout   time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

type StoreBackend string

const (
	StoreBackendFile   StoreBackend = "file"
	StoreBackendBolt   StoreBackend = "bolt"
	StoreBackendSqlite StoreBackend = "sqlite"
)

type Store struct {
	Backend StoreBackend `json:"backend,omitempty" yaml:"backend,omitempty"`
	Path    string       `json:"path,omitempty" yaml:"path,omitempty"`
}

type Fossil struct {
	// render an evolution graph right after every identification
	AutoGraph        bool   `json:"auto_graph,omitempty" yaml:"autoGraph,omitempty"`
	ContextThreshold int    `json:"context_threshold,omitempty" yaml:"contextThreshold,omitempty"`
	TitleRunes       int    `json:"title_runes,omitempty" yaml:"titleRunes,omitempty"`
	DefaultTitle     string `json:"default_title,omitempty" yaml:"defaultTitle,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		AuthConfig: &AuthConfig{
			WhiteList: []string{
				"/doc/*",
				"/api/version",
				"/static/*",
			},
		},
		FossilApiConfig: &FossilApiConfig{
			Port:           "5000",
			StaticDir:      "static",
			LogLevel:       "info",
			ReleaseVersion: "v0.0.1-debug",
			GitVersion:     "v0.0.1-debug",
		},
		LLM: &LLM{
			Provider:          LLMProviderGateway,
			Endpoint:          "https://api-gateway.netdb.csie.ncku.edu.tw/api/chat",
			Model:             "gpt-oss:20b",
			Timeout:           60 * time.Second,
			IntentTimeout:     30 * time.Second,
			IntentTemperature: 0,
			IntentMaxTokens:   16,
			Temperature:       0.7,
			MaxTokens:         2048,
		},
		Wiki: &Wiki{
			Endpoint:  "https://en.wikipedia.org/w/api.php",
			UserAgent: "fossil-api/0.1 (https://github.com/Narcisal/FossilMind)",
			ThumbSize: 600,
			Timeout:   5 * time.Second,
			CacheTTL:  30 * time.Minute,
		},
		Graph: &Graph{
			DotBinary: "dot",
			Format:    "png",
			Timeout:   20 * time.Second,
		},
		Store: &Store{
			Backend: StoreBackendFile,
			Path:    "chats.json",
		},
		Fossil: &Fossil{
			AutoGraph:        false,
			ContextThreshold: 20,
			TitleRunes:       15,
			DefaultTitle:     "新對話",
		},
	}
}
