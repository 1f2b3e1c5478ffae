package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return &buf
}

func TestDebug_GatedOnVerbose(t *testing.T) {
	buf := capture(t)

	Debug("classified %s as %s", "articles.docx", "articles-of-association")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("classified %s as %s", "articles.docx", "articles-of-association")
	assert.Equal(t, "[DEBUG] classified articles.docx as articles-of-association\n", buf.String())
}

func TestInfo_GatedOnVerbose(t *testing.T) {
	buf := capture(t)

	Info("reviewed %d documents", 3)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Info("reviewed %d documents", 3)
	assert.Equal(t, "[INFO] reviewed 3 documents\n", buf.String())
}

func TestWarn_AlwaysPrints(t *testing.T) {
	buf := capture(t)

	Warn("AI provider unavailable: %v", "connection refused")
	assert.Equal(t, "[WARN] AI provider unavailable: connection refused\n", buf.String())
}

func TestSection_GatedOnVerbose(t *testing.T) {
	buf := capture(t)

	Section("Document Review")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Section("Document Review")
	assert.Equal(t, "\n=== Document Review ===\n", buf.String())
}
