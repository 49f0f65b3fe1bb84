package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question against your notes",
	Long: `Answers a physics question from your ingested notes.

The question passes through the scope gate first: anything outside
school physics (programming, medicine, law...) or beyond A-level
(quantum mechanics, relativity...) is refused with an explanation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var askShowSources bool

func init() {
	askCmd.Flags().BoolVar(&askShowSources, "sources", false, "list the note files the answer came from")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	if assistantService == nil {
		if err := ensureIngested(cmd.Context()); err != nil {
			return err
		}
	}
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	answer, err := assistantService.Ask(cmd.Context(), question)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println(answer.Text)

	if askShowSources && answer.Classification.Allowed {
		sources := answer.Sources()
		if len(sources) > 0 {
			cmd.Println()
			cmd.Println("Sources:")
			for _, s := range sources {
				cmd.Printf("  - %s\n", s)
			}
		}
	}

	return nil
}
