package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/services/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the build gRPC service
type Handler struct {
	characterService character.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

var _ BuildServiceServer = (*Handler)(nil)

// CreateCharacter creates a new character
func (h *Handler) CreateCharacter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req CreateCharacterRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.CreateCharacter(ctx, &character.CreateCharacterInput{
		PlayerID: req.PlayerID,
		Name:     req.Name,
		Initial:  req.Initial,
	})
	if err != nil {
		return nil, toStatus(ctx, MethodCreateCharacter, err)
	}

	return encode(&CharacterResponse{Character: out.Character})
}

// GetCharacter returns a stored character
func (h *Handler) GetCharacter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req CharacterRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, toStatus(ctx, MethodGetCharacter, err)
	}

	return encode(&CharacterResponse{Character: out.Character})
}

// ListCharacters returns a player's characters
func (h *Handler) ListCharacters(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ListCharactersRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, toStatus(ctx, MethodListCharacters, err)
	}

	return encode(&ListCharactersResponse{Characters: out.Characters})
}

// DeleteCharacter removes a stored character
func (h *Handler) DeleteCharacter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req CharacterRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
		CharacterID: req.CharacterID,
	}); err != nil {
		return nil, toStatus(ctx, MethodDeleteCharacter, err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
}

// UpdateCharacter patches a stored character
func (h *Handler) UpdateCharacter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req UpdateCharacterRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateCharacter(ctx, &character.UpdateCharacterInput{
		CharacterID: req.CharacterID,
		Patch:       req.Patch,
	})
	if err != nil {
		return nil, toStatus(ctx, MethodUpdateCharacter, err)
	}

	return encode(&UpdateCharacterResponse{Character: out.Character, Validation: out.Validation})
}

// ToggleCastingSkill toggles a casting-style skill pick
func (h *Handler) ToggleCastingSkill(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ToggleSkillRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ToggleCastingSkill(ctx, &character.ToggleSkillInput{
		CharacterID: req.CharacterID,
		Skill:       req.Skill,
	})
	if err != nil {
		return nil, toStatus(ctx, MethodToggleCastingSkill, err)
	}

	return encodeEdit(out)
}

// ToggleExpertise toggles an expertise pick
func (h *Handler) ToggleExpertise(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ToggleSkillRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ToggleExpertise(ctx, &character.ToggleSkillInput{
		CharacterID: req.CharacterID,
		Skill:       req.Skill,
	})
	if err != nil {
		return nil, toStatus(ctx, MethodToggleExpertise, err)
	}

	return encodeEdit(out)
}

// SetLevel changes the character level
func (h *Handler) SetLevel(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetLevelRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.SetLevel(ctx, &character.SetLevelInput{
		CharacterID: req.CharacterID,
		Level:       req.Level,
	})
	if err != nil {
		return nil, toStatus(ctx, MethodSetLevel, err)
	}

	return encodeEdit(out)
}

// SetLevel1Choice picks the level-1 advancement
func (h *Handler) SetLevel1Choice(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetLevel1ChoiceRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.SetLevel1Choice(ctx, &character.SetLevel1ChoiceInput{
		CharacterID: req.CharacterID,
		Choice:      req.Choice,
		Name:        req.Name,
	})
	if err != nil {
		return nil, toStatus(ctx, MethodSetLevel1Choice, err)
	}

	return encodeEdit(out)
}

// UnlockLevel1 allows the level-1 advancement to change again
func (h *Handler) UnlockLevel1(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req CharacterRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UnlockLevel1(ctx, &character.UnlockLevel1Input{CharacterID: req.CharacterID})
	if err != nil {
		return nil, toStatus(ctx, MethodUnlockLevel1, err)
	}

	return encodeEdit(out)
}

// SetMilestone resolves one ASI milestone
func (h *Handler) SetMilestone(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SetMilestoneRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.SetMilestone(ctx, &character.SetMilestoneInput{
		CharacterID: req.CharacterID,
		Level:       req.Level,
		Type:        req.Type,
		Increases:   req.Increases,
		Feat:        req.Feat,
		FeatChoices: req.FeatChoices,
	})
	if err != nil {
		return nil, toStatus(ctx, MethodSetMilestone, err)
	}

	return encodeEdit(out)
}

// GetBuildSheet returns every derived view of a stored character
func (h *Handler) GetBuildSheet(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req CharacterRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.GetBuildSheet(ctx, &character.GetBuildSheetInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, toStatus(ctx, MethodGetBuildSheet, err)
	}

	return encode(&BuildSheetResponse{Sheet: out.Sheet})
}

// RollHitPoints rolls and stores hit points
func (h *Handler) RollHitPoints(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req CharacterRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.RollHitPoints(ctx, &character.RollHitPointsInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, toStatus(ctx, MethodRollHitPoints, err)
	}

	return encode(&RollHitPointsResponse{Character: out.Character, HitPoints: out.HitPoints})
}

// CommitBuild finalises a valid build
func (h *Handler) CommitBuild(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req CharacterRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.CommitBuild(ctx, &character.CommitBuildInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, toStatus(ctx, MethodCommitBuild, err)
	}

	return encode(&CommitBuildResponse{Character: out.Character, Sheet: out.Sheet})
}

// ResolveSkills partitions a snapshot's skills
func (h *Handler) ResolveSkills(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SnapshotRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ResolveSkills(ctx, &character.SnapshotInput{Character: req.Character})
	if err != nil {
		return nil, toStatus(ctx, MethodResolveSkills, err)
	}

	return encode(&ResolveSkillsResponse{Skills: out.Skills})
}

// ResolveAbilityModifiers layers a snapshot's ability bonuses
func (h *Handler) ResolveAbilityModifiers(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ResolveAbilityModifiersRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ResolveAbilityModifiers(ctx, &character.ResolveAbilityModifiersInput{
		Character: req.Character,
		Choices: rules.ModifierChoices{
			FeatChoices:     req.FeatChoices,
			HouseChoices:    req.HouseChoices,
			HeritageChoices: req.HeritageChoices,
		},
	})
	if err != nil {
		return nil, toStatus(ctx, MethodResolveAbilityModifiers, err)
	}

	return encode(&ResolveAbilityModifiersResponse{
		Modifiers:          out.Modifiers,
		EffectiveScores:    out.EffectiveScores,
		EffectiveModifiers: out.EffectiveModifiers,
	})
}

// ResolveProgression derives a snapshot's progression
func (h *Handler) ResolveProgression(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SnapshotRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ResolveProgression(ctx, &character.SnapshotInput{Character: req.Character})
	if err != nil {
		return nil, toStatus(ctx, MethodResolveProgression, err)
	}

	return encode(&ResolveProgressionResponse{Progression: out.Progression})
}

// ValidateBuild validates a snapshot
func (h *Handler) ValidateBuild(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SnapshotRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ValidateBuild(ctx, &character.SnapshotInput{Character: req.Character})
	if err != nil {
		return nil, toStatus(ctx, MethodValidateBuild, err)
	}

	return encode(&ValidateBuildResponse{Result: out.Result})
}

// ComputeHitPoints totals hit points for a snapshot
func (h *Handler) ComputeHitPoints(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ComputeHitPointsRequest
	if err := Decode(in, &req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ComputeHitPoints(ctx, &character.ComputeHitPointsInput{
		Character: req.Character,
		Mode:      req.Mode,
	})
	if err != nil {
		return nil, toStatus(ctx, MethodComputeHitPoints, err)
	}

	return encode(&ComputeHitPointsResponse{HitPoints: out.HitPoints})
}

func encodeEdit(out *character.EditOutput) (*structpb.Struct, error) {
	return encode(&EditResponse{
		Character:  out.Character,
		Applied:    out.Applied,
		Reason:     out.Reason,
		Validation: out.Validation,
	})
}

func encode(v interface{}) (*structpb.Struct, error) {
	out, err := Encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// toStatus converts a service error, logging the ones that are not the caller's fault
func toStatus(ctx context.Context, method string, err error) error {
	code := errors.GetCode(err)
	if code.ServerFault() {
		slog.ErrorContext(ctx, "build service call failed",
			"method", method,
			"code", code,
			"error", err.Error())
	} else {
		slog.DebugContext(ctx, "build service call refused",
			"method", method,
			"code", code,
			"error", err.Error())
	}
	return errors.ToGRPCError(err)
}
