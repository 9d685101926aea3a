// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
ini_filename = "/tmp/editor.ini"
plot = false

[font]
face = "roboto"
size = 16
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/editor.ini", cfg.IniFilename)
	assert.Equal(t, Default().LogFilename, cfg.LogFilename)
	assert.False(t, cfg.Plot)
	assert.Equal(t, Font{Face: "roboto", Size: 16}, cfg.Font)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, `fonts = 3`))
	assert.Error(t, err)
}

func TestLoadRejectsBadFontSize(t *testing.T) {
	_, err := Load(writeFile(t, "[font]\nsize = 0\n"))
	assert.ErrorIs(t, err, ErrFontSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
