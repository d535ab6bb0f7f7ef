package option

import (
	"fmt"
	"os"
	"strings"

	"fossil-api/cmd/fossil-api-server/app/config"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	EnvLLMApiKey   = "FOSSIL_LLM_API_KEY"
	EnvLLMEndpoint = "FOSSIL_LLM_ENDPOINT"
	EnvLLMModel    = "FOSSIL_LLM_MODEL"
	EnvLLMProvider = "FOSSIL_LLM_PROVIDER"
	EnvStorePath   = "FOSSIL_STORE_PATH"
)

var serverConfig *config.Config

type Option struct {
	ConfigPath string `json:"config_path" yaml:"configPath"`
	Port       string `json:"port" yaml:"port"`
}

func (opt *Option) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&opt.ConfigPath, "config", "c", "", "config file path, defaults are used when empty")
	fs.StringVarP(&opt.Port, "port", "p", "", "override the listening port from config file")
}

// GenerateConfig layers the config file over DefaultConfig and the environment over both.
func (opt *Option) GenerateConfig() (*config.Config, error) {
	if serverConfig != nil {
		return serverConfig, nil
	}

	result := config.DefaultConfig()

	if opt.ConfigPath != "" {
		file, err := os.ReadFile(opt.ConfigPath)
		if err != nil {
			return nil, err
		}

		err = yaml.Unmarshal(file, result)
		if err != nil {
			return nil, err
		}
	}

	fillNilSections(result)
	ApplyEnvOverrides(result)
	if opt.Port != "" {
		result.FossilApiConfig.Port = opt.Port
	}

	if err := CheckFossilApiConfig(result); err != nil {
		return nil, err
	}

	serverConfig = result
	return serverConfig, nil
}

// a config file may blank out a whole section, put the defaults back for those
func fillNilSections(cfg *config.Config) {
	defaults := config.DefaultConfig()
	if cfg.AuthConfig == nil {
		cfg.AuthConfig = defaults.AuthConfig
	}
	if cfg.FossilApiConfig == nil {
		cfg.FossilApiConfig = defaults.FossilApiConfig
	}
	if cfg.LLM == nil {
		cfg.LLM = defaults.LLM
	}
	if cfg.Wiki == nil {
		cfg.Wiki = defaults.Wiki
	}
	if cfg.Graph == nil {
		cfg.Graph = defaults.Graph
	}
	if cfg.Store == nil {
		cfg.Store = defaults.Store
	}
	if cfg.Fossil == nil {
		cfg.Fossil = defaults.Fossil
	}
}

func ApplyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv(EnvLLMApiKey); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv(EnvLLMEndpoint); v != "" {
		cfg.LLM.Endpoint = v
	}
	if v := os.Getenv(EnvLLMModel); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv(EnvLLMProvider); v != "" {
		cfg.LLM.Provider = config.LLMProvider(strings.ToLower(v))
	}
	if v := os.Getenv(EnvStorePath); v != "" {
		cfg.Store.Path = v
	}
	// the default endpoint only speaks the gateway protocol, sdk providers fall back to their own base url
	if cfg.LLM.Provider != config.LLMProviderGateway && cfg.LLM.Endpoint == config.DefaultConfig().LLM.Endpoint {
		cfg.LLM.Endpoint = ""
	}
}

func CheckFossilApiConfig(cfg *config.Config) error {
	var errMsgs []string
	switch strings.ToLower(cfg.FossilApiConfig.LogLevel) {
	case "info", "debug", "error", "warn":
	default:
		errMsgs = append(errMsgs, fmt.Sprintf("invalid log level: %s, expect to be one of info, debug, error, warn", cfg.FossilApiConfig.LogLevel))
	}

	switch cfg.LLM.Provider {
	case config.LLMProviderGateway, config.LLMProviderOpenAI, config.LLMProviderAnthropic:
	default:
		errMsgs = append(errMsgs, fmt.Sprintf("invalid llm provider: %s, expect to be one of gateway, openai, anthropic", cfg.LLM.Provider))
	}

	if cfg.LLM.Provider == config.LLMProviderGateway && cfg.LLM.Endpoint == "" {
		errMsgs = append(errMsgs, "llm endpoint is required for the gateway provider")
	}

	if cfg.LLM.Model == "" {
		errMsgs = append(errMsgs, "llm model is required")
	}

	switch cfg.Store.Backend {
	case config.StoreBackendFile, config.StoreBackendBolt, config.StoreBackendSqlite:
	default:
		errMsgs = append(errMsgs, fmt.Sprintf("invalid store backend: %s, expect to be one of file, bolt, sqlite", cfg.Store.Backend))
	}

	if cfg.Store.Path == "" {
		errMsgs = append(errMsgs, "store path is required")
	}

	if cfg.Fossil.TitleRunes <= 0 {
		errMsgs = append(errMsgs, "title runes should be greater than 0")
	}

	if len(errMsgs) > 0 {
		return fmt.Errorf("%s", strings.Join(errMsgs, "\n"))
	}
	return nil
}
