package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/handlers/build/v1alpha1"
)

var (
	playerID     string
	characterID  string
	createName   string
	castingStyle string
	house        string
	background   string
	level        int
)

var createCharacterCmd = &cobra.Command{
	Use:   "create-character",
	Short: "Create a character",
	Long:  `Create a character for a player, optionally seeding casting style, house, background and level.`,
	RunE:  runCreateCharacter,
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character",
	Short: "Get a character by ID",
	RunE:  runCharacterCall(v1alpha1.MethodGetCharacter),
}

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List a player's characters",
	RunE:  runListCharacters,
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete-character",
	Short: "Delete a character by ID",
	RunE:  runCharacterCall(v1alpha1.MethodDeleteCharacter),
}

func init() {
	createCharacterCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID (required)")
	createCharacterCmd.Flags().StringVar(&createName, "name", "", "Character name")
	createCharacterCmd.Flags().StringVar(&castingStyle, "casting-style", "", "Casting style")
	createCharacterCmd.Flags().StringVar(&house, "house", "", "House")
	createCharacterCmd.Flags().StringVar(&background, "background", "", "Background")
	createCharacterCmd.Flags().IntVar(&level, "level", 0, "Starting level")
	_ = createCharacterCmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init

	listCharactersCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID (required)")
	_ = listCharactersCmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{getCharacterCmd, deleteCharacterCmd} {
		cmd.Flags().StringVar(&characterID, "character-id", "", "Character ID (required)")
		_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	}
}

func runCreateCharacter(cmd *cobra.Command, _ []string) error {
	initial := &entities.Patch{}
	if castingStyle != "" {
		initial.CastingStyle = &castingStyle
	}
	if house != "" {
		initial.House = &house
	}
	if background != "" {
		initial.Background = &background
	}
	if cmd.Flags().Changed("level") {
		initial.Level = &level
	}

	return call(v1alpha1.MethodCreateCharacter, &v1alpha1.CreateCharacterRequest{
		PlayerID: playerID,
		Name:     createName,
		Initial:  initial,
	})
}

func runListCharacters(_ *cobra.Command, _ []string) error {
	return call(v1alpha1.MethodListCharacters, &v1alpha1.ListCharactersRequest{PlayerID: playerID})
}

// runCharacterCall sends a request that only carries the character ID
func runCharacterCall(method string) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		return call(method, &v1alpha1.CharacterRequest{CharacterID: characterID})
	}
}

// call sends req to method and prints the reply
func call(method string, req interface{}) error {
	client, cleanup, err := createBuildClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reply := new(structpb.Struct)
	if err := client.Call(ctx, method, req, reply); err != nil {
		if errors.IsRetryable(err) {
			return fmt.Errorf("%s failed, safe to retry: %w", method, err)
		}
		return fmt.Errorf("%s failed: %w", method, err)
	}
	return printReply(reply)
}
