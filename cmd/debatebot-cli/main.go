package main

import (
	"context"

	"github.com/KirkDiggler/debatebot/cmd/debatebot-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
