package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/grimoire-api/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	playerIndexPrefix  = "character:player:"

	// maxWatchAttempts bounds optimistic retries when a watched key changes
	maxWatchAttempts = 5

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
	errPatchNil         = "patch cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	stored := input.Character.Clone()
	now := r.clock.Now().Unix()
	if stored.CreatedAt == 0 {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	stored.Revision = 1

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // No TTL for characters
	if stored.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+stored.PlayerID, stored.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.DebugContext(ctx, "created character",
		"character_id", stored.ID,
		"player_id", stored.PlayerID)

	return &CreateOutput{Character: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	c, err := r.read(ctx, r.client.Get, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: c}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Patch == nil {
		return nil, errors.InvalidArgument(errPatchNil)
	}

	var updated *entities.Character
	err := r.watch(ctx, input.ID, func(tx *redis.Tx) error {
		existing, err := r.read(ctx, tx.Get, input.ID)
		if err != nil {
			return err
		}

		updated = input.Patch.Apply(existing)
		return r.write(ctx, tx, existing, updated)
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Character: updated}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var saved *entities.Character
	err := r.watch(ctx, input.Character.ID, func(tx *redis.Tx) error {
		existing, err := r.read(ctx, tx.Get, input.Character.ID)
		if err != nil {
			return err
		}
		if input.ExpectedRevision != 0 && existing.Revision != input.ExpectedRevision {
			return errors.Abortedf("character %s is at revision %d, expected %d",
				existing.ID, existing.Revision, input.ExpectedRevision)
		}

		saved = input.Character.Clone()
		return r.write(ctx, tx, existing, saved)
	})
	if err != nil {
		return nil, err
	}

	return &SaveOutput{Character: saved}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Get character to find indexes
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	if getOutput.Character.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+getOutput.Character.PlayerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	characters, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters by player index",
			"player_id", input.PlayerID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	slog.DebugContext(ctx, "listed characters by player",
		"player_id", input.PlayerID,
		"count", len(characters))

	return &ListByPlayerIDOutput{Characters: characters}, nil
}

// listByIndex loads every character in an index set, pruning IDs whose character is gone
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*entities.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}
	if len(ids) == 0 {
		return []*entities.Character{}, nil
	}

	// One GET per key keeps cluster deployments working where MGET would cross slots
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, characterKeyPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redisclient.Nil {
		return nil, errors.Wrapf(err, "failed to load characters from index %s", indexKey)
	}

	characters := make([]*entities.Character, 0, len(ids))
	for i, cmd := range cmds {
		raw, err := cmd.Result()
		if err == redisclient.Nil {
			slog.WarnContext(ctx, "character not found, cleaning up index",
				"character_id", ids[i],
				"index_key", indexKey)
			r.client.SRem(ctx, indexKey, ids[i])
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get character %s", ids[i])
		}

		var c entities.Character
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal character %s", ids[i])
		}
		characters = append(characters, &c)
	}

	sort.Slice(characters, func(i, j int) bool {
		if characters[i].CreatedAt != characters[j].CreatedAt {
			return characters[i].CreatedAt < characters[j].CreatedAt
		}
		return characters[i].ID < characters[j].ID
	})

	return characters, nil
}

// watch runs fn under WATCH on the character key, retrying when the key changes before EXEC
func (r *redisRepository) watch(ctx context.Context, id string, fn func(tx *redis.Tx) error) error {
	key := characterKeyPrefix + id
	for attempt := 1; attempt <= maxWatchAttempts; attempt++ {
		err := r.client.Watch(ctx, fn, key)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redisclient.TxFailedErr) {
			return err
		}
		slog.DebugContext(ctx, "character changed during update, retrying",
			"character_id", id,
			"attempt", attempt)
	}
	return errors.Abortedf("character %s kept changing, giving up after %d attempts", id, maxWatchAttempts)
}

// read loads one character through the client or a WATCH transaction
func (r *redisRepository) read(
	ctx context.Context,
	get func(ctx context.Context, key string) *redis.StringCmd,
	id string,
) (*entities.Character, error) {
	raw, err := get(ctx, characterKeyPrefix+id).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var c entities.Character
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}
	return &c, nil
}

// write stores next over existing inside the watched transaction, keeping identity and bookkeeping
// fields under repository control and moving the player index when ownership changes
func (r *redisRepository) write(ctx context.Context, tx *redis.Tx, existing, next *entities.Character) error {
	next.ID = existing.ID
	next.CreatedAt = existing.CreatedAt
	next.UpdatedAt = r.clock.Now().Unix()
	next.Revision = existing.Revision + 1

	data, err := json.Marshal(next)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal character")
	}

	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, characterKeyPrefix+next.ID, data, 0)
		if existing.PlayerID != next.PlayerID {
			if existing.PlayerID != "" {
				pipe.SRem(ctx, playerIndexPrefix+existing.PlayerID, next.ID)
			}
			if next.PlayerID != "" {
				pipe.SAdd(ctx, playerIndexPrefix+next.PlayerID, next.ID)
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to write character")
	}
	return nil
}
