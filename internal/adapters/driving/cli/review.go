package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driving"
	"github.com/docketry-labs/docketry-cli/internal/logger"
)

var (
	reviewProcess string
	reviewAI      bool
	reviewOut     string
	reviewJSON    bool
	reviewSave    bool
	reviewWatch   bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [files or directories...]",
	Short: "Review DOCX documents for ADGM compliance",
	Long: `Reviews one or more DOCX files (directories are expanded to the
.docx files they contain). Each document is classified, checked against
the process checklist, scanned for red flags, and an annotated copy
with highlighted inline comments is written to the output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVarP(&reviewProcess, "process", "p", "", "target process (default: detect from document types)")
	reviewCmd.Flags().BoolVar(&reviewAI, "ai", false, "enable AI-grounded suggestions")
	reviewCmd.Flags().StringVarP(&reviewOut, "out", "o", "reviewed", "output directory for annotated copies (empty to skip)")
	reviewCmd.Flags().BoolVar(&reviewJSON, "json", false, "output the report as JSON")
	reviewCmd.Flags().BoolVar(&reviewSave, "save", false, "persist the report to review history")
	reviewCmd.Flags().BoolVarP(&reviewWatch, "watch", "w", false, "watch directories and review new files as they appear")
	rootCmd.AddCommand(reviewCmd)
}

// historySetter is implemented by review services that support
// persisting reports.
type historySetter interface {
	SetHistoryStore(driven.ReviewStore)
}

func runReview(cmd *cobra.Command, args []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	if reviewSave {
		if historyStore == nil {
			return errors.New("review history not available")
		}
		if s, ok := reviewService.(historySetter); ok {
			s.SetHistoryStore(historyStore)
		}
	}

	outDir := reviewOut
	if !cmd.Flags().Changed("out") && configStore != nil {
		if configured := configStore.GetString(driven.ConfigOutputDir); configured != "" {
			outDir = configured
		}
	}

	opts := driving.ReviewOptions{
		Process: domain.Process(reviewProcess),
		AI:      reviewAI,
		OutDir:  outDir,
	}

	if reviewWatch {
		return watchAndReview(cmd, args, opts)
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	report, err := reviewService.Review(cmd.Context(), files, opts)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	if reviewJSON {
		return outputReportJSON(cmd, report)
	}
	outputReportSummary(cmd, report)
	return nil
}

// collectFiles expands directory arguments into the .docx files they
// contain. Reviewed copies are skipped so output directories can be
// passed back in without recursion.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !isReviewable(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(arg, entry.Name()))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no .docx files found: %w", domain.ErrInvalidInput)
	}
	return files, nil
}

// isReviewable reports whether a filename is a candidate input.
func isReviewable(name string) bool {
	lowered := strings.ToLower(name)
	return strings.HasSuffix(lowered, ".docx") &&
		!strings.HasSuffix(lowered, "_reviewed.docx")
}

// watchAndReview reviews each new .docx file appearing in the watched
// directories until interrupted.
func watchAndReview(cmd *cobra.Command, args []string, opts driving.ReviewOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("watch mode takes directories, got file %s: %w", arg, domain.ErrInvalidInput)
		}
		if err := watcher.Add(arg); err != nil {
			return fmt.Errorf("watch %s: %w", arg, err)
		}
		cmd.Printf("Watching %s\n", arg)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isReviewable(filepath.Base(event.Name)) {
				continue
			}

			report, err := reviewService.Review(ctx, []string{event.Name}, opts)
			if err != nil {
				logger.Warn("Review of %s failed: %v", event.Name, err)
				continue
			}
			outputReportSummary(cmd, report)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

func outputReportJSON(cmd *cobra.Command, report domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputReportSummary(cmd *cobra.Command, report domain.Report) {
	cmd.Println(styleHeading.Render(fmt.Sprintf("Process: %s", report.Process.DisplayName())))
	cmd.Println()

	for i := range report.Documents {
		doc := &report.Documents[i]
		if doc.Failed {
			cmd.Printf("%s: %s\n", doc.Filename, styleHigh.Render("failed: "+doc.FailureReason))
			continue
		}

		cmd.Printf("%s (%s)\n", doc.Filename, doc.Type.DisplayName())
		if len(doc.Issues) == 0 {
			cmd.Printf("  %s\n", styleMuted.Render("no issues"))
		}
		for _, issue := range doc.Issues {
			cmd.Printf("  [%s] %s (paragraph %d)\n", renderSeverity(issue.Severity), issue.Title, issue.ParagraphIndex)
			if issue.Suggestion != "" {
				cmd.Printf("      %s\n", styleMuted.Render(issue.Suggestion))
			}
		}
		if doc.ReviewedPath != "" {
			cmd.Printf("  %s\n", styleMuted.Render("reviewed copy: "+doc.ReviewedPath))
		}
		cmd.Println()
	}

	if len(report.Checklist.Missing) > 0 {
		names := make([]string, 0, len(report.Checklist.Missing))
		for _, t := range report.Checklist.Missing {
			names = append(names, t.DisplayName())
		}
		cmd.Printf("Missing required documents: %s\n", strings.Join(names, ", "))
	}

	cmd.Printf("Verdict: %s\n", renderVerdict(report.Verdict))
	if report.AIUsed {
		cmd.Println(styleMuted.Render("AI suggestions enabled"))
	}
}
