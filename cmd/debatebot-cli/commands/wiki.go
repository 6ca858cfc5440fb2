package commands

import (
	"fmt"
	"strings"

	wikiService "github.com/KirkDiggler/debatebot/internal/services/wiki"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(wikiCmd)
}

var wikiCmd = &cobra.Command{
	Use:   "wiki <debater or team> <entry>",
	Short: "Prints the titles of a case list entry.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wikiService.New(&wikiService.Config{
			Fetcher: newFetcher(),
			BaseURL: wikiURL,
		})
		if err != nil {
			return err
		}

		output, err := svc.Lookup(cmd.Context(), &wikiService.LookupInput{
			Query: strings.Join(args, " "),
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Page: %s\n", output.URL)
		if !output.Found {
			fmt.Fprintln(cmd.OutOrStdout(), "The page does not exist")
			return nil
		}

		t := newTable()
		t.AppendHeader(table.Row{"#", "Title"})
		for i, title := range output.Titles {
			t.AppendRow(table.Row{i + 1, title})
		}
		t.Render()

		return nil
	},
}
