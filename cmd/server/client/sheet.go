package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimoire-api/internal/handlers/build/v1alpha1"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Show the resolved build sheet",
	RunE:  runCharacterCall(v1alpha1.MethodGetBuildSheet),
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit a valid build and store its hit points",
	RunE:  runCharacterCall(v1alpha1.MethodCommitBuild),
}

var rollHPCmd = &cobra.Command{
	Use:   "roll-hp",
	Short: "Roll and store hit points",
	RunE:  runCharacterCall(v1alpha1.MethodRollHitPoints),
}

func init() {
	for _, cmd := range []*cobra.Command{sheetCmd, commitCmd, rollHPCmd} {
		cmd.Flags().StringVar(&characterID, "character-id", "", "Character ID (required)")
		_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	}
}
