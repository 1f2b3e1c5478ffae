package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past review reports",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored review reports",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a stored review report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("review history not available")
	}

	reports, err := historyStore.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}

	if len(reports) == 0 {
		cmd.Println("No stored reports.")
		return nil
	}

	for i := range reports {
		r := &reports[i]
		cmd.Printf("%s  %s  %s  %d documents  %s\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Process,
			len(r.Documents),
			renderVerdict(r.Verdict))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyStore == nil {
		return errors.New("review history not available")
	}

	report, err := historyStore.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get report %s: %w", args[0], err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
