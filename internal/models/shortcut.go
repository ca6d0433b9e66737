package models

import "strings"

// Category groups shortcuts by what they do.
type Category string

const (
	CategoryNavigation  Category = "navigation"
	CategoryEditing     Category = "editing"
	CategorySearch      Category = "search"
	CategoryRefactoring Category = "refactoring"
	CategoryDebugging   Category = "debugging"
	CategoryTerminal    Category = "terminal"
	CategoryGit         Category = "git"
	CategoryWindow      Category = "window"
	CategoryAI          Category = "ai"
	CategoryOther       Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryNavigation, CategoryEditing, CategorySearch, CategoryRefactoring, CategoryDebugging,
		CategoryTerminal, CategoryGit, CategoryWindow, CategoryAI, CategoryOther:
		return true
	}
	return false
}

// Normalize trims and lower-cases the name.
func (c Category) Normalize() Category {
	return Category(strings.ToLower(strings.TrimSpace(string(c))))
}

// Difficulty is the curriculum level of a shortcut.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

// Normalize trims and lower-cases the name.
func (d Difficulty) Normalize() Difficulty {
	return Difficulty(strings.ToLower(strings.TrimSpace(string(d))))
}

// Shortcut is a catalog entry. The scheduler only ever sees its ID.
type Shortcut struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Keys       string     `json:"keys" yaml:"keys"`
	Category   Category   `json:"category" yaml:"category"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
}

// CatalogFilter narrows catalog listings. Empty slices match everything.
type CatalogFilter struct {
	Categories   []Category
	Difficulties []Difficulty
}

// IsEmpty reports whether the filter matches every shortcut.
func (f CatalogFilter) IsEmpty() bool {
	return len(f.Categories) == 0 && len(f.Difficulties) == 0
}

// Normalize returns a copy with category and difficulty names trimmed and
// lower-cased, the form the catalog stores them in.
func (f CatalogFilter) Normalize() CatalogFilter {
	out := CatalogFilter{}
	for _, c := range f.Categories {
		out.Categories = append(out.Categories, c.Normalize())
	}
	for _, d := range f.Difficulties {
		out.Difficulties = append(out.Difficulties, d.Normalize())
	}
	return out
}

// Matches reports whether s passes the category and difficulty filters.
func (f CatalogFilter) Matches(s Shortcut) bool {
	if len(f.Categories) > 0 && !contains(f.Categories, s.Category) {
		return false
	}
	if len(f.Difficulties) > 0 && !contains(f.Difficulties, s.Difficulty) {
		return false
	}
	return true
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
