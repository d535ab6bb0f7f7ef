package main

import (
	"os"

	"fossil-api/cmd/fossil-api-server/app"
)

var version string

func main() {
	cmd := app.NewCommand(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
