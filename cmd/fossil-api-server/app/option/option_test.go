package option

import (
	"os"
	"path/filepath"

	"fossil-api/cmd/fossil-api-server/app/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var _ = Describe("option test", func() {
	var option *Option
	var configPath string
	BeforeEach(func() {
		option = &Option{}
		configPath = filepath.Join(GinkgoT().TempDir(), "fossil-api-server-config.yaml")
		defaultConfig := config.DefaultConfig()
		defaultConfig.LLM.Model = "llama3:8b"
		defaultConfig.LLM.APIKey = ""
		result, err := yaml.Marshal(defaultConfig)
		Expect(err).To(BeNil())
		err = os.WriteFile(configPath, result, 0644)
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		serverConfig = nil
	})

	Describe("binding test", func() {
		It("when binding flags", func() {
			cmd := &cobra.Command{
				Use:  "test",
				Long: "test",
				Run:  func(*cobra.Command, []string) {},
			}
			fs := cmd.PersistentFlags()
			option.BindFlags(fs)
			cmd.SetArgs([]string{"--config", configPath, "--port", "9000"})
			Expect(cmd.Execute()).To(Succeed())
			Expect(option.ConfigPath).To(Equal(configPath))
			Expect(option.Port).To(Equal("9000"))
		})
	})

	Describe("generate config test", func() {
		It("should reject an empty store path from the file", func() {
			err := os.WriteFile(configPath, []byte("store:\n  backend: file\n  path: \"\"\n"), 0644)
			Expect(err).To(BeNil())
			option.ConfigPath = configPath
			_, err = option.GenerateConfig()
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("store path is required"))
		})

		It("should take values from the file and the environment", func() {
			GinkgoT().Setenv(EnvStorePath, "/tmp/fossil-chats.json")
			GinkgoT().Setenv(EnvLLMApiKey, "secret-from-env")
			option.ConfigPath = configPath
			cfg, err := option.GenerateConfig()
			Expect(err).To(BeNil())
			Expect(cfg.LLM.Model).To(Equal("llama3:8b"))
			Expect(cfg.LLM.APIKey).To(Equal("secret-from-env"))
			Expect(cfg.Store.Path).To(Equal("/tmp/fossil-chats.json"))
			Expect(cfg.FossilApiConfig.Port).To(Equal("5000"))
		})

		It("should drop the gateway endpoint for sdk providers", func() {
			GinkgoT().Setenv(EnvLLMProvider, "OpenAI")
			cfg, err := option.GenerateConfig()
			Expect(err).To(BeNil())
			Expect(cfg.LLM.Provider).To(Equal(config.LLMProviderOpenAI))
			Expect(cfg.LLM.Endpoint).To(Equal(""))
		})

		It("should fall back to defaults without a config file", func() {
			option.Port = "8088"
			cfg, err := option.GenerateConfig()
			Expect(err).To(BeNil())
			Expect(cfg.FossilApiConfig.Port).To(Equal("8088"))
			Expect(cfg.Store.Backend).To(Equal(config.StoreBackendFile))
		})

		It("should restore sections blanked out by the file", func() {
			err := os.WriteFile(configPath, []byte("llm:\n  model: qwen2\nwiki: null\n"), 0644)
			Expect(err).To(BeNil())
			option.ConfigPath = configPath
			cfg, err := option.GenerateConfig()
			Expect(err).To(BeNil())
			Expect(cfg.LLM.Model).To(Equal("qwen2"))
			Expect(cfg.LLM.Provider).To(Equal(config.LLMProviderGateway))
			Expect(cfg.Wiki).NotTo(BeNil())
			Expect(cfg.Wiki.ThumbSize).To(Equal(600))
		})

		It("should be error with config file not exists", func() {
			option.ConfigPath = filepath.Join(GinkgoT().TempDir(), "not-exists.yaml")
			_, err := option.GenerateConfig()
			Expect(err).NotTo(BeNil())
		})
	})

	Describe("CheckFossilApiConfig test", func() {
		It("should collect every problem", func() {
			cfg := config.DefaultConfig()
			cfg.FossilApiConfig.LogLevel = "trace"
			cfg.LLM.Provider = "bard"
			cfg.Store.Backend = "redis"
			err := CheckFossilApiConfig(cfg)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("invalid log level"))
			Expect(err.Error()).To(ContainSubstring("invalid llm provider"))
			Expect(err.Error()).To(ContainSubstring("invalid store backend"))
		})

		It("should accept the defaults", func() {
			Expect(CheckFossilApiConfig(config.DefaultConfig())).To(Succeed())
		})
	})
})
