package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/keydrill/internal/models"
)

const sample = `
shortcuts:
  - id: vscode.save
    name: Save file
    keys: Ctrl+S
    category: Editing
    difficulty: beginner
  - id: " vscode.rename "
    name: Rename symbol
    keys: F2
    category: refactoring
    difficulty: INTERMEDIATE
`

func TestParse(t *testing.T) {
	shortcuts, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, shortcuts, 2)

	assert.Equal(t, models.Shortcut{
		ID:         "vscode.save",
		Name:       "Save file",
		Keys:       "Ctrl+S",
		Category:   models.CategoryEditing,
		Difficulty: models.DifficultyBeginner,
	}, shortcuts[0])
	assert.Equal(t, "vscode.rename", shortcuts[1].ID)
	assert.Equal(t, models.DifficultyIntermediate, shortcuts[1].Difficulty)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("shortcuts:\n  - id: a\n    hotkey: Ctrl+A\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = Parse(strings.NewReader("shortcuts: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	shortcuts, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, shortcuts, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
