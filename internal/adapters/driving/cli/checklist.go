package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist [process]",
	Short: "Show the required documents for a process",
	Long: `Prints the document checklist for the given process, or for every
configured process when none is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChecklist,
}

func init() {
	rootCmd.AddCommand(checklistCmd)
}

func runChecklist(cmd *cobra.Command, args []string) error {
	if ruleStore == nil {
		return errors.New("rule store not configured")
	}

	processes := ruleStore.Processes()
	if len(args) == 1 {
		processes = []domain.Process{domain.Process(args[0])}
	}

	for _, process := range processes {
		required, err := ruleStore.Checklist(process)
		if err != nil {
			return fmt.Errorf("unknown process %q: %w", process, err)
		}

		cmd.Println(styleHeading.Render(process.DisplayName()))
		for _, t := range required {
			cmd.Printf("  - %s\n", t.DisplayName())
		}
		cmd.Println()
	}

	return nil
}
