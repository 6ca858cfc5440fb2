package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/debatebot/internal/common/uuid"
	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/titanous/json5"
)

// ParseSeed reads a JSON5 array of arguments. Arguments without an id are given a new one.
func ParseSeed(data []byte, ids uuid.UUID) ([]*models.Argument, error) {
	var args []*models.Argument
	if err := json5.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, arg := range args {
		if arg == nil {
			return nil, fmt.Errorf("argument %d: empty entry", i)
		}

		arg.Type = models.ArgumentType(strings.TrimSpace(string(arg.Type)))
		arg.Name = strings.TrimSpace(arg.Name)

		if arg.Type == "" {
			return nil, fmt.Errorf("argument %d: %w", i, errors.New("type is required"))
		}
		if arg.Name == "" {
			return nil, fmt.Errorf("argument %d: %w", i, errors.New("name is required"))
		}
		if arg.ID == "" {
			arg.ID = ids.NewUUID()
		}
	}

	return args, nil
}
