package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/automata/pkg/nfa"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/stretchr/testify/require"
)

// WriteDefinition writes content to a file named name inside a fresh temp dir.
// It returns the absolute path and fails the test immediately on error.
func WriteDefinition(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write definition")

	absPath, err := filepath.Abs(path)
	require.NoError(t, err, "Failed to get absolute path for definition")
	return absPath
}

// MustBuild parses a YAML definition and builds its NFA.
func MustBuild(t *testing.T, yamlText string) *nfa.NFA {
	t.Helper()

	def, err := schema.Parse([]byte(yamlText), schema.FormatYAML)
	require.NoError(t, err, "Failed to parse definition")

	n, err := def.Build()
	require.NoError(t, err, "Failed to build NFA")
	return n
}
