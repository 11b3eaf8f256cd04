// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resultfile saves search results to disk and reloads them, so
// a search can be revisited without re-querying the APIs.
package resultfile

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-hub/pkg/types"
)

// File is the on-disk representation of one saved search.
type File struct {
	// Provider names the client that produced the results
	// (e.g. "arxiv", "semantic_scholar").
	Provider string `yaml:"provider"`

	// Saved is the write timestamp.
	Saved time.Time `yaml:"saved"`

	// Results is the full result set, including the query echo and
	// pagination metadata.
	Results types.ResultSet `yaml:"results"`
}

// Write saves a result set to a YAML file.
func Write(path, provider string, rs *types.ResultSet) error {
	f := File{
		Provider: provider,
		Saved:    time.Now().UTC(),
		Results:  *rs,
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously saved result file from disk.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &f, nil
}
