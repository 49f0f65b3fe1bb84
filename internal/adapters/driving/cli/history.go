package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent questions and answers",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of exchanges")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		if err := initServices(cmd.Context()); err != nil {
			return err
		}
	}
	if historyService == nil {
		return errors.New("history service not configured")
	}

	exchanges, err := historyService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if len(exchanges) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	for _, ex := range exchanges {
		verdict := "answered"
		if !ex.Allowed {
			verdict = fmt.Sprintf("refused (%s)", ex.Reason)
		}
		cmd.Printf("%s  %s\n", ex.AskedAt.Local().Format("2006-01-02 15:04"), verdict)
		cmd.Printf("  Q: %s\n", ex.Question)
		if ex.Allowed && ex.Answer != "" {
			cmd.Printf("  A: %s\n", snippet(ex.Answer, 160))
		}
		cmd.Println()
	}
	return nil
}
