package app

import (
	"fmt"
	"os"

	"fossil-api/cmd/fossil-api-server/app/option"
	"fossil-api/pkg/core/apiserver"
	"fossil-api/pkg/fossil"
	fossilApiLog "fossil-api/pkg/logger"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

func NewCommand(version string) *cobra.Command {
	option := &option.Option{}
	cmd := &cobra.Command{
		Use:     "fossil-api-server",
		Long:    "fossil-api-server is a server daemon that identifies fossils from chat descriptions",
		Example: figure.NewColorFigure("fossil-api", "isometric1", "green", true).String(),
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print version and exit",
		Long:    "version subcommand will print version and exit",
		Example: "fossil-api-server version",
		Run: func(_ *cobra.Command, args []string) {
			fmt.Println("version:", version)
		},
	}

	runCommand := &cobra.Command{
		Use:     "run",
		Short:   "Run fossil-api-server",
		Long:    "Run fossil-api-server",
		Example: "fossil-api-server run --config /etc/fossil-api-server-config.yaml",
		RunE: func(_ *cobra.Command, args []string) error {
			config, err := option.GenerateConfig()
			if err != nil {
				fmt.Println("Failed to generate config", err)
				return err
			}

			// set idflag version to config
			if version != "" {
				config.FossilApiConfig.GitVersion = version
			}
			fossilApiLog.InitLogger(config.FossilApiConfig.LogLevel)

			err = apiserver.RunServer(config)
			if err != nil {
				fmt.Println("Failed to run server")
				return err
			}
			return nil
		},
	}

	chatCommand := &cobra.Command{
		Use:     "chat",
		Short:   "Identify fossils interactively in the terminal",
		Long:    "chat reads fossil descriptions from stdin, prints the identification and optionally the Graphviz DOT source of its cladogram",
		Example: "FOSSIL_LLM_API_KEY=... fossil-api-server chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := option.GenerateConfig()
			if err != nil {
				fmt.Println("Failed to generate config", err)
				return err
			}
			// keep log lines out of the conversation
			fossilApiLog.InitLoggerWithWriter("error", os.Stderr)

			assistant, err := fossil.NewAssistantFromConfig(config)
			if err != nil {
				return err
			}
			return RunChat(cmd.Context(), assistant, os.Stdin, os.Stdout)
		},
	}

	option.BindFlags(runCommand.Flags())
	option.BindFlags(chatCommand.Flags())

	cmd.AddCommand(versionCmd)
	cmd.AddCommand(runCommand)
	cmd.AddCommand(chatCommand)
	return cmd
}
