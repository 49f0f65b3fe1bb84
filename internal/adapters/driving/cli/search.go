package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search your notes without asking",
	Long: `Ranks note passages against the query by keyword overlap and
prints the best matches. No scope gate and no generation: this is a
direct view of what retrieval would hand to the assistant.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 6, "maximum number of passages")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if retrievalService == nil {
		if err := ensureIngested(cmd.Context()); err != nil {
			return err
		}
	}
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	chunks, err := retrievalService.Retrieve(cmd.Context(), query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(chunks) == 0 {
		cmd.Println("No matching passages found.")
		return nil
	}

	cmd.Println("Passages:")
	cmd.Println()
	for i, c := range chunks {
		cmd.Printf("  [%d] %s\n", i+1, c.Source)
		cmd.Printf("      %s\n", snippet(c.Text, 200))
		cmd.Println()
	}
	return nil
}

// snippet truncates text for terminal display.
func snippet(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
