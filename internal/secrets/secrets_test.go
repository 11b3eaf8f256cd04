// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Secrets
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "semantic-scholar-api-key", "  sk_xyz789  \n")
				writeFile(t, dir, "contact-email", "user@example.com\n")
				writeFile(t, dir, "homepage", "https://example.com/paper-hub")
				return dir
			},
			want: Secrets{
				"semantic-scholar-api-key": "sk_xyz789",
				"contact-email":            "user@example.com",
				"homepage":                 "https://example.com/paper-hub",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Secrets{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "semantic-scholar-api-key", "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: Secrets{
				"semantic-scholar-api-key": "valid-key",
			},
		},
		{
			name: "skips dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, "contact-email", "real@example.com")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: Secrets{
				"contact-email": "real@example.com",
			},
		},
		{
			name: "returns empty map for empty directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			want: Secrets{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			var warnings bytes.Buffer
			got, err := Load(dir, &warnings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, warnings.String())
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")

	// Create a file then remove read permission.
	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	var warnings bytes.Buffer
	got, err := Load(dir, &warnings)
	require.NoError(t, err)
	// The good file should still be returned; the bad file is skipped with a warning.
	assert.Equal(t, "value123", got["good-key"])
	_, hasBad := got["bad-key"]
	assert.False(t, hasBad, "unreadable file should not appear in result")
	assert.Contains(t, warnings.String(), "bad-key")
}

func TestGet(t *testing.T) {
	s := Secrets{"semantic-scholar-api-key": "from-file"}

	t.Setenv("SEMANTIC_SCHOLAR_API_KEY", "from-env")
	// The file wins over the environment.
	assert.Equal(t, "from-file", s.Get("semantic-scholar-api-key", "SEMANTIC_SCHOLAR_API_KEY"))

	// Environment fallback when the key file is absent.
	assert.Equal(t, "from-env", Secrets{}.Get("semantic-scholar-api-key", "SEMANTIC_SCHOLAR_API_KEY"))

	// Neither set.
	assert.Equal(t, "", Secrets{}.Get("missing", "PAPER_HUB_TEST_UNSET_VAR"))
	assert.Equal(t, "", Secrets{}.Get("missing", ""))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
