package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/artilence/agentchat/internal/chat"
)

// historyPreviewLength bounds each message printed by the history command
const historyPreviewLength = 72

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List conversations stored by the chat backend",
	Long: `Fetches the conversations the backend has recorded and prints them in the
order it returns them. This is read-only: the TUI always starts with an
empty transcript.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show only the last N conversations (0 shows all)")
	rootCmd.AddCommand(historyCmd)
}

// historyFetcher is satisfied by *chat.Client
type historyFetcher interface {
	History(ctx context.Context) ([]chat.Conversation, error)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return printHistory(cmd.Context(), os.Stdout, newClient(cfg), historyLimit)
}

// printHistory writes one block per conversation to w
func printHistory(ctx context.Context, w io.Writer, fetcher historyFetcher, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	convs, err := fetcher.History(ctx)
	if err != nil {
		return fmt.Errorf("error fetching history: %w", err)
	}

	if len(convs) == 0 {
		fmt.Fprintln(w, "No conversations yet.")
		return nil
	}
	if limit > 0 && len(convs) > limit {
		convs = convs[len(convs)-limit:]
	}

	for i, c := range convs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if c.CreatedAt != "" {
			fmt.Fprintf(w, "#%d  %s\n", c.ID, c.CreatedAt)
		} else {
			fmt.Fprintf(w, "#%d\n", c.ID)
		}
		fmt.Fprintf(w, "  You:   %s\n", chat.Preview(c.UserMessage, historyPreviewLength))
		fmt.Fprintf(w, "  Agent: %s\n", chat.Preview(c.AIResponse, historyPreviewLength))
	}
	return nil
}
