// Package commands implements the debatebot operator CLI.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/KirkDiggler/debatebot/internal/scrape"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var (
	redisAddr    string
	tabroomURL   string
	wikiURL      string
	fetchTimeout time.Duration
	verbose      bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&redisAddr, "redis", envOr("REDIS_ADDR", "localhost:6379"), "Address of the argument store.")
	flags.StringVar(&tabroomURL, "tabroom", envOr("TABROOM_URL", "https://www.tabroom.com/"), "Base for relative tabroom links.")
	flags.StringVar(&wikiURL, "wiki", envOr("WIKI_URL", "https://hsld.debatecoaches.org/"), "Root of the case list wiki.")
	flags.DurationVar(&fetchTimeout, "timeout", 30*time.Second, "Timeout of a single page fetch.")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr.")
}

var rootCmd = &cobra.Command{
	Use:   "debatebot-cli",
	Short: "debatebot-cli inspects tournaments and the case list wiki and manages saved arguments.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

// ExecuteContext runs the command named by the process arguments
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newFetcher() scrape.Fetcher {
	return scrape.NewClient(&scrape.ClientConfig{Timeout: fetchTimeout})
}

func newRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: redisAddr})
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
