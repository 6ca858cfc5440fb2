package argument

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/debatebot/internal/models"
	argumentRepo "github.com/KirkDiggler/debatebot/internal/repositories/argument"
)

// service implements the Service interface
type service struct {
	repo         argumentRepo.Repository
	defaultTypes []models.ArgumentType
}

// New creates a new argument service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	defaultTypes := cfg.DefaultTypes
	if len(defaultTypes) == 0 {
		defaultTypes = models.DefaultArgumentTypes()
	}

	return &service{
		repo:         cfg.Repository,
		defaultTypes: defaultTypes,
	}, nil
}

// List groups argument names by category
func (s *service) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	types := s.defaultTypes
	if input != nil && len(input.Types) > 0 {
		types = input.Types
	}

	groups := make([]*Group, 0, len(types))
	for _, t := range types {
		if t == "" {
			continue
		}

		output, err := s.repo.ListByType(ctx, &argumentRepo.ListByTypeInput{
			Type: t,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list %s arguments: %w", t, err)
		}

		if len(output.Arguments) == 0 {
			continue
		}

		group := &Group{Type: t}
		for _, a := range output.Arguments {
			group.Names = append(group.Names, a.Name)
		}
		groups = append(groups, group)
	}

	return &ListOutput{
		Groups: groups,
		Blocks: listBlocks(groups),
	}, nil
}

// listBlocks renders each group as its category followed by one indented name per line
func listBlocks(groups []*Group) []models.Block {
	if len(groups) == 0 {
		return []models.Block{
			models.PlainSection("Arguments:"),
			models.Section("No arguments found"),
		}
	}

	lists := make([]string, 0, len(groups))
	for _, g := range groups {
		lines := make([]string, 0, len(g.Names)+1)
		lines = append(lines, string(g.Type))
		for _, name := range g.Names {
			lines = append(lines, "\t"+name)
		}
		lists = append(lists, strings.Join(lines, "\n"))
	}

	return []models.Block{
		models.PlainSection("Arguments:"),
		models.Section(strings.Join(lists, "\n\n")),
	}
}

// Lookup returns the argument with the given name. Several arguments sharing the
// name are treated the same as none.
func (s *service) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, ErrEmptyName
	}

	output, err := s.repo.FindByName(ctx, &argumentRepo.FindByNameInput{
		Name: input.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find argument: %w", err)
	}

	if len(output.Arguments) != 1 {
		return nil, ErrNoMatch
	}

	return &LookupOutput{
		Argument: output.Arguments[0],
	}, nil
}
