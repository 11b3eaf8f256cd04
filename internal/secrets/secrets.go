// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files.
// Each file is one secret: the filename is the key name and the trimmed
// contents are the value.
//
// Supported key files: semantic-scholar-api-key, contact-email, homepage.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Secrets maps key names to values.
type Secrets map[string]string

// Get returns the value for name, or the value of the environment
// variable envVar when the key file is absent, or "" when neither is
// set. The file wins over the environment so a checked-out secrets
// directory is authoritative.
func (s Secrets) Get(name, envVar string) string {
	if v, ok := s[name]; ok {
		return v
	}
	if envVar != "" {
		return os.Getenv(envVar)
	}
	return ""
}

// Load reads all files in dir into a Secrets map. A missing directory
// is not an error; Load returns an empty map. Unreadable files produce
// a warning on w but do not abort. Dotfiles and empty values are
// skipped.
func Load(dir string, w io.Writer) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(w, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}

	return s, nil
}
