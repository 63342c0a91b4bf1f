// Package client provides test commands for the grimoire build service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/grimoire-api/internal/handlers/build/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the build service",
	Long:  `Client commands exercise the build service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Character commands
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)

	// Build edits
	ClientCmd.AddCommand(toggleSkillCmd)
	ClientCmd.AddCommand(setLevelCmd)
	ClientCmd.AddCommand(setLevel1Cmd)
	ClientCmd.AddCommand(setMilestoneCmd)

	// Derived views
	ClientCmd.AddCommand(sheetCmd)
	ClientCmd.AddCommand(commitCmd)
	ClientCmd.AddCommand(rollHPCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createBuildClient creates a build service client
func createBuildClient() (*v1alpha1.Client, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// printReply writes the raw reply as indented JSON
func printReply(reply *structpb.Struct) error {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(reply)
	if err != nil {
		return fmt.Errorf("failed to format reply: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
