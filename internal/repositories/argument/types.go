package argument

import "github.com/KirkDiggler/debatebot/internal/models"

type SaveArgumentInput struct {
	Argument *models.Argument
}

type GetArgumentInput struct {
	ArgumentID string
}

type ListByTypeInput struct {
	Type models.ArgumentType
}

type ListByTypeOutput struct {
	Arguments []*models.Argument
}

type FindByNameInput struct {
	Name string
}

type FindByNameOutput struct {
	Arguments []*models.Argument
}

type DeleteArgumentInput struct {
	ArgumentID string
}
