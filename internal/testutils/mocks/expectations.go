// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/grimoire-api/internal/clients/catalog/mock"
	"github.com/KirkDiggler/grimoire-api/internal/engine"
	enginemock "github.com/KirkDiggler/grimoire-api/internal/engine/mock"
	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
	characterrepo "github.com/KirkDiggler/grimoire-api/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/grimoire-api/internal/repositories/character/mock"
)

// ExpectCharacterGet sets up a mock expectation for loading a character from the repository
func ExpectCharacterGet(
	ctx context.Context, mockRepo *characterrepomock.MockRepository,
	characterID string, character *entities.Character, err error,
) {
	var output *characterrepo.GetOutput
	if err == nil {
		output = &characterrepo.GetOutput{Character: character}
	}
	mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: characterID}).
		Return(output, err)
}

// ExpectCharacterSave expects a save guarded by the given revision and echoes the
// character back one revision later
func ExpectCharacterSave(
	ctx context.Context, mockRepo *characterrepomock.MockRepository, expectedRevision int64,
) {
	mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.SaveInput) (*characterrepo.SaveOutput, error) {
			saved := input.Character.Clone()
			saved.Revision = expectedRevision + 1
			return &characterrepo.SaveOutput{Character: saved}, nil
		})
}

// ExpectReference sets up the catalog to serve ref once
func ExpectReference(ctx context.Context, mockClient *catalogmock.MockClient, ref *reference.Data) {
	mockClient.EXPECT().GetReference(ctx).Return(ref, nil)
}

// ExpectValidate sets up the engine to report result for the next validation
func ExpectValidate(ctx context.Context, mockEngine *enginemock.MockEngine, result *rules.ValidationResult) {
	mockEngine.EXPECT().
		Validate(ctx, gomock.Any()).
		Return(&engine.ValidateOutput{Result: result}, nil)
}
