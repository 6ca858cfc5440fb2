package argument

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	argumentKeyPrefix = "argument:"
	typeIndexPrefix   = "argument_type:"
	nameIndexPrefix   = "argument_name:"
)

// ErrArgumentNotFound is returned when an argument is not found
var ErrArgumentNotFound = errors.New("argument not found")

// Config holds configuration for the Redis argument repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed argument repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func argumentKey(id string) string {
	return argumentKeyPrefix + id
}

func typeIndexKey(t models.ArgumentType) string {
	return typeIndexPrefix + string(t)
}

func nameIndexKey(name string) string {
	return nameIndexPrefix + strings.ToLower(strings.TrimSpace(name))
}

// SaveArgument persists an argument and keeps the type and name indexes current
func (r *redisRepository) SaveArgument(ctx context.Context, input *SaveArgumentInput) error {
	if input == nil || input.Argument == nil {
		return errors.New("input and argument cannot be nil")
	}

	argument := input.Argument
	if argument.ID == "" {
		return errors.New("argument ID cannot be empty")
	}

	if strings.TrimSpace(argument.Name) == "" {
		return errors.New("argument name cannot be empty")
	}

	// The previous version may be indexed under another type or name
	existing, err := r.GetArgument(ctx, &GetArgumentInput{
		ArgumentID: argument.ID,
	})
	if err != nil && !errors.Is(err, ErrArgumentNotFound) {
		return err
	}

	argumentJSON, err := json.Marshal(argument)
	if err != nil {
		return fmt.Errorf("failed to marshal argument: %w", err)
	}

	pipe := r.client.TxPipeline()

	if existing != nil {
		pipe.SRem(ctx, typeIndexKey(existing.Type), existing.ID)
		pipe.SRem(ctx, nameIndexKey(existing.Name), existing.ID)
	}

	pipe.Set(ctx, argumentKey(argument.ID), argumentJSON, 0)
	pipe.SAdd(ctx, typeIndexKey(argument.Type), argument.ID)
	pipe.SAdd(ctx, nameIndexKey(argument.Name), argument.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save argument: %w", err)
	}

	return nil
}

// GetArgument retrieves an argument by ID from Redis
func (r *redisRepository) GetArgument(ctx context.Context, input *GetArgumentInput) (*models.Argument, error) {
	if input == nil || input.ArgumentID == "" {
		return nil, errors.New("input and argument ID cannot be empty")
	}

	argumentJSON, err := r.client.Get(ctx, argumentKey(input.ArgumentID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrArgumentNotFound
		}
		return nil, fmt.Errorf("failed to get argument: %w", err)
	}

	var argument models.Argument
	if err := json.Unmarshal([]byte(argumentJSON), &argument); err != nil {
		return nil, fmt.Errorf("failed to unmarshal argument: %w", err)
	}

	return &argument, nil
}

// ListByType retrieves every argument of a category from Redis
func (r *redisRepository) ListByType(ctx context.Context, input *ListByTypeInput) (*ListByTypeOutput, error) {
	if input == nil || input.Type == "" {
		return nil, errors.New("input and type cannot be empty")
	}

	arguments, err := r.getIndexed(ctx, typeIndexKey(input.Type))
	if err != nil {
		return nil, err
	}

	return &ListByTypeOutput{
		Arguments: arguments,
	}, nil
}

// FindByName retrieves every argument with the given name from Redis
func (r *redisRepository) FindByName(ctx context.Context, input *FindByNameInput) (*FindByNameOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("input and name cannot be empty")
	}

	arguments, err := r.getIndexed(ctx, nameIndexKey(input.Name))
	if err != nil {
		return nil, err
	}

	return &FindByNameOutput{
		Arguments: arguments,
	}, nil
}

// DeleteArgument removes an argument and its index entries from Redis
func (r *redisRepository) DeleteArgument(ctx context.Context, input *DeleteArgumentInput) error {
	if input == nil || input.ArgumentID == "" {
		return errors.New("input and argument ID cannot be empty")
	}

	existing, err := r.GetArgument(ctx, &GetArgumentInput{
		ArgumentID: input.ArgumentID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, argumentKey(existing.ID))
	pipe.SRem(ctx, typeIndexKey(existing.Type), existing.ID)
	pipe.SRem(ctx, nameIndexKey(existing.Name), existing.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete argument: %w", err)
	}

	return nil
}

// getIndexed loads the arguments whose IDs are members of an index set
func (r *redisRepository) getIndexed(ctx context.Context, indexKey string) ([]*models.Argument, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get argument IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*models.Argument{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(ids))
	for _, id := range ids {
		commands[id] = pipe.Get(ctx, argumentKey(id))
	}

	// redis.Nil for a single key is reported per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get arguments: %w", err)
	}

	arguments := make([]*models.Argument, 0, len(ids))
	for id, cmd := range commands {
		argumentJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Argument was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get argument %s: %w", id, err)
		}

		var argument models.Argument
		if err := json.Unmarshal([]byte(argumentJSON), &argument); err != nil {
			return nil, fmt.Errorf("failed to unmarshal argument %s: %w", id, err)
		}

		arguments = append(arguments, &argument)
	}

	sort.Slice(arguments, func(i, j int) bool {
		if arguments[i].Name != arguments[j].Name {
			return arguments[i].Name < arguments[j].Name
		}
		return arguments[i].ID < arguments[j].ID
	})

	return arguments, nil
}
