// Package catalog reads shortcut catalog files.
//
// A catalog file is YAML:
//
//	shortcuts:
//	  - id: vscode.save
//	    name: Save file
//	    keys: Ctrl+S
//	    category: editing
//	    difficulty: beginner
package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vytor/keydrill/internal/models"
	"gopkg.in/yaml.v3"
)

type file struct {
	Shortcuts []models.Shortcut `yaml:"shortcuts"`
}

// Parse decodes a catalog document. Category and difficulty names are
// lower-cased; validation is left to the catalog service.
func Parse(r io.Reader) ([]models.Shortcut, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("catalog is empty")
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i := range f.Shortcuts {
		s := &f.Shortcuts[i]
		s.ID = strings.TrimSpace(s.ID)
		s.Category = s.Category.Normalize()
		s.Difficulty = s.Difficulty.Normalize()
	}
	return f.Shortcuts, nil
}

// Load reads and parses the catalog file at path.
func Load(path string) ([]models.Shortcut, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
