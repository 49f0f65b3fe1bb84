package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [question]",
	Short: "Show how the scope gate treats a question",
	Long: `Runs only the scope gate and prints the verdict. Useful for
tuning the scope lists in scope.toml without touching retrieval.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	if classifierService == nil {
		if err := initServices(cmd.Context()); err != nil {
			return err
		}
	}
	if classifierService == nil {
		return errors.New("classifier service not configured")
	}

	result := classifierService.Classify(question)

	if result.Allowed {
		cmd.Println("allowed")
		return nil
	}

	cmd.Printf("refused (%s)\n", result.Reason)
	cmd.Printf("  %s\n", result.Refusal)
	return nil
}
