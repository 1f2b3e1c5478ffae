package driven

// Configuration keys recognised by the CLI and adapter factories.
const (
	// ConfigAIProvider selects the suggestion backend ("groq",
	// "openai" or "ollama").
	ConfigAIProvider = "ai.provider"

	// ConfigAIModel is the model identifier passed to the backend.
	ConfigAIModel = "ai.model"

	// ConfigAIBaseURL overrides the backend endpoint, for
	// OpenAI-compatible services.
	ConfigAIBaseURL = "ai.base_url"

	// ConfigOutputDir is the default directory for reviewed copies
	// and reports.
	ConfigOutputDir = "output.dir"

	// ConfigHistoryEnabled toggles persisting review reports.
	ConfigHistoryEnabled = "history.enabled"
)

// ConfigStore provides access to persisted application settings.
// Implementations handle storage and type conversion. Keys use dot
// notation ("ai.provider").
type ConfigStore interface {
	// Get retrieves a value by key, reporting whether the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, empty when absent or not a
	// string.
	GetString(key string) string

	// GetBool retrieves a boolean value, false when absent or not a
	// boolean.
	GetBool(key string) bool

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Load re-reads settings from storage.
	Load() error

	// Path returns the backing file path.
	Path() string
}
