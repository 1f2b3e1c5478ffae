// Command docketry reviews DOCX legal documents for ADGM compliance.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/ai"
	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/config/file"
	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/docx"
	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/storage/sqlite"
	"github.com/docketry-labs/docketry-cli/internal/adapters/driving/cli"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
	"github.com/docketry-labs/docketry-cli/internal/core/services"
	"github.com/docketry-labs/docketry-cli/internal/logger"
)

func main() {
	// Best effort; secrets usually come from the shell environment.
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	ruleStore, err := file.NewRuleStore(userPath("rules.toml"))
	if err != nil {
		return fmt.Errorf("load review rules: %w", err)
	}

	// A broken user corpus only matters to AI-enabled runs; the review
	// service rejects those later. Template-only reviews continue on
	// the embedded corpus.
	snippets, snippetErr := file.NewSnippetStore(userPath("snippets.txt"))
	if snippetErr != nil {
		logger.Warn("Reference corpus unreadable, using embedded defaults: %v", snippetErr)
		snippets, err = file.NewSnippetStore("")
		if err != nil {
			return fmt.Errorf("load reference corpus: %w", err)
		}
	}

	// A missing or unreachable generator degrades to templated
	// suggestions instead of blocking reviews.
	var generator driven.SuggestionGenerator
	settings := ai.SettingsFromEnv(configStore)
	if settings.IsConfigured() {
		generator, err = ai.CreateAndValidateGenerator(settings)
		if err != nil {
			logger.Warn("AI suggestions unavailable: %v", err)
			generator = nil
		}
	}
	if generator != nil {
		defer generator.Close()
	}

	var history driven.ReviewStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("Review history unavailable: %v", err)
	} else {
		history = store
		defer store.Close()
	}

	service := services.NewReviewService(
		docx.NewReader(),
		docx.NewWriter(),
		ruleStore,
		snippets,
		generator,
	)
	if snippetErr != nil {
		service.SetSnippetLoadError(snippetErr)
	}

	cli.Wire(cli.Dependencies{
		Review:  service,
		Rules:   ruleStore,
		History: history,
		Config:  configStore,
	})

	return cli.Execute()
}

// userPath resolves a file under ~/.docketry, empty when the home
// directory is unknown (the stores then fall back to embedded
// defaults).
func userPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".docketry", name)
}
