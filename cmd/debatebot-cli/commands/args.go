package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/debatebot/internal/common/uuid"
	"github.com/KirkDiggler/debatebot/internal/models"
	argumentRepo "github.com/KirkDiggler/debatebot/internal/repositories/argument"
	argumentService "github.com/KirkDiggler/debatebot/internal/services/argument"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func init() {
	argsCmd.AddCommand(argsListCmd, argsGetCmd, argsSeedCmd)
	rootCmd.AddCommand(argsCmd)
}

var argsCmd = &cobra.Command{
	Use:   "args",
	Short: "Manages the saved arguments.",
}

var argsListCmd = &cobra.Command{
	Use:   "list [type...]",
	Short: "Prints the argument names of each type.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newRedisClient()
		defer client.Close()

		svc, err := newArgumentService(client)
		if err != nil {
			return err
		}

		var types []models.ArgumentType
		for _, a := range args {
			types = append(types, models.ArgumentType(a))
		}

		output, err := svc.List(cmd.Context(), &argumentService.ListInput{Types: types})
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Type", "Name"})
		for _, group := range output.Groups {
			for _, name := range group.Names {
				t.AppendRow(table.Row{group.Type, name})
			}
		}
		t.Render()

		return nil
	},
}

var argsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Prints the argument with the given name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newRedisClient()
		defer client.Close()

		svc, err := newArgumentService(client)
		if err != nil {
			return err
		}

		output, err := svc.Lookup(cmd.Context(), &argumentService.LookupInput{Name: args[0]})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n\n%s\n",
			output.Argument.Name, output.Argument.Type, output.Argument.ID, output.Argument.Arg)
		return nil
	},
}

var argsSeedCmd = &cobra.Command{
	Use:   "seed <file.json5>",
	Short: "Saves every argument of a JSON5 file to the store.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}

		seed, err := ParseSeed(data, uuid.New())
		if err != nil {
			return err
		}

		client := newRedisClient()
		defer client.Close()

		repo, err := argumentRepo.NewRedis(&argumentRepo.Config{RedisClient: client})
		if err != nil {
			return err
		}

		for _, arg := range seed {
			slog.DebugContext(cmd.Context(), "save argument", "id", arg.ID, "type", arg.Type, "name", arg.Name)
			if err := repo.SaveArgument(cmd.Context(), &argumentRepo.SaveArgumentInput{Argument: arg}); err != nil {
				return fmt.Errorf("failed to save %s: %w", arg.Name, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d arguments\n", len(seed))
		return nil
	},
}

func newArgumentService(client *redis.Client) (argumentService.Service, error) {
	repo, err := argumentRepo.NewRedis(&argumentRepo.Config{RedisClient: client})
	if err != nil {
		return nil, err
	}

	return argumentService.New(&argumentService.Config{
		Repository:   repo,
		DefaultTypes: models.DefaultArgumentTypes(),
	})
}
