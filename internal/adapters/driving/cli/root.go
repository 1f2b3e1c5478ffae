// Package cli provides the cobra command-line interface for docketry.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driving"
	"github.com/docketry-labs/docketry-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// verbose enables debug logging on stderr.
var verbose bool

// Services injected by the composition root before Execute.
var (
	reviewService driving.ReviewService
	ruleStore     driven.RuleStore
	historyStore  driven.ReviewStore
	configStore   driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "docketry",
	Short: "Review ADGM legal documents for compliance issues",
	Long: `Docketry reviews DOCX legal documents against ADGM process
checklists: it classifies each document, flags compliance issues,
annotates reviewed copies with highlighted inline comments, and emits
a structured report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Dependencies holds everything the commands need. RuleStore and
// ReviewService are required; the rest are optional.
type Dependencies struct {
	Review  driving.ReviewService
	Rules   driven.RuleStore
	History driven.ReviewStore
	Config  driven.ConfigStore
}

// Wire injects services into the command tree.
func Wire(deps Dependencies) {
	reviewService = deps.Review
	ruleStore = deps.Rules
	historyStore = deps.History
	configStore = deps.Config
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
