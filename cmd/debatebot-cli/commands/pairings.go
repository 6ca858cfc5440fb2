package commands

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/debatebot/internal/common/clock"
	"github.com/KirkDiggler/debatebot/internal/config"
	tournamentRepo "github.com/KirkDiggler/debatebot/internal/repositories/tournament"
	pairingService "github.com/KirkDiggler/debatebot/internal/services/pairing"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	pairingsURL    string
	pairingsSchool string
)

func init() {
	pairingsCmd.Flags().StringVar(&pairingsURL, "url", envOr("TOURNAMENT_URL", config.DefaultTournamentURL), "Postings page of the tournament.")
	pairingsCmd.Flags().StringVar(&pairingsSchool, "school", envOr("SCHOOL_CODE", ""), "Only show rooms with an entry containing this code.")
	rootCmd.AddCommand(pairingsCmd)
}

var pairingsCmd = &cobra.Command{
	Use:   "pairings [--url <postings url>] [--school <code>]",
	Short: "Prints the pairings of the tournament's current round.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := tournamentRepo.NewMemory(&tournamentRepo.Config{
			DefaultURL: pairingsURL,
			Clock:      clock.New(),
		})
		if err != nil {
			return err
		}

		svc, err := pairingService.New(&pairingService.Config{
			Fetcher:        newFetcher(),
			TournamentRepo: repo,
			SchoolCode:     pairingsSchool,
			BaseURL:        tabroomURL,
		})
		if err != nil {
			return err
		}

		slog.DebugContext(cmd.Context(), "get pairings", "url", pairingsURL, "school", pairingsSchool)
		output, err := svc.GetPairings(cmd.Context(), &pairingService.GetPairingsInput{})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Round: %s\n", output.RoundURL)

		t := newTable()
		t.AppendHeader(table.Row{"Flight", "Room", "Aff", "Neg", "Judge"})
		for _, row := range output.Rows {
			t.AppendRow(table.Row{row.Flight, row.Room, row.Side1, row.Side2, row.Judge})
		}
		t.Render()

		return nil
	},
}
