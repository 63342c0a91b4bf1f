// Package main runs grimoire-api: the build service and its test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimoire-api/cmd/server/client"
)

// version is stamped at build time with -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "grimoire-api",
	Short:         "Grimoire character build server",
	Long:          `Grimoire resolves and stores homebrew character builds: skills, ability modifiers, feats and milestones.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
