// Package loader reads the catalog and preference input files.
package loader

import (
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/programrank/programrank/types"
)

// Common loader errors
var (
	// ErrMissingPrograms indicates the catalog file has no "programs" key
	ErrMissingPrograms = errors.New(`missing "programs" key`)

	// ErrMissingPreferredCategories indicates the preferences file has no
	// "preferred_categories" key
	ErrMissingPreferredCategories = errors.New(`missing "preferred_categories" key`)
)

type programsFile struct {
	Programs *[]types.Program `json:"programs"`
}

type preferencesFile struct {
	PreferredCategories *[]string `json:"preferred_categories"`
}

// LoadPrograms reads the catalog file. The top-level "programs" key is
// required; every field of the individual records is optional.
func LoadPrograms(path string) ([]types.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading programs file: %w", err)
	}

	var f programsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing programs file %s: %w", path, err)
	}
	if f.Programs == nil {
		return nil, fmt.Errorf("programs file %s: %w", path, ErrMissingPrograms)
	}

	return *f.Programs, nil
}

// LoadPreferences reads the user preference file. The top-level
// "preferred_categories" key is required.
func LoadPreferences(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preferences file: %w", err)
	}

	var f preferencesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing preferences file %s: %w", path, err)
	}
	if f.PreferredCategories == nil {
		return nil, fmt.Errorf("preferences file %s: %w", path, ErrMissingPreferredCategories)
	}

	return *f.PreferredCategories, nil
}
