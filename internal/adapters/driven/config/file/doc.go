// Package file provides file-based implementations of driven port
// interfaces, loading review configuration from the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based application settings
//   - RuleStore: TOML-based review rules with embedded defaults
//   - SnippetStore: plain-text labelled reference corpus
package file
