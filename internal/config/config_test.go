package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadResolvesAgainstFileDir(t *testing.T) {
	path := writeConfig(t, `{
		"input_dir": "meshes",
		"part_file": "parts/board.yaml",
		"encoding": "windows-1252",
		"strict": true,
		"workers": 3
	}`)
	dir := filepath.Dir(path)

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Resolve(Flags{})

	assert.Equal(t, filepath.Join(dir, "meshes"), cfg.InputDir)
	assert.Equal(t, filepath.Join(dir, "meshes", "revised"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(dir, "parts", "board.yaml"), cfg.PartFile)
	assert.Equal(t, "windows-1252", cfg.Encoding)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 3, cfg.Workers)
}

func TestResolveFlagsOverride(t *testing.T) {
	path := writeConfig(t, `{"input_dir": "meshes", "output_dir": "/abs/out", "workers": 3}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.Resolve(Flags{
		InputDir: "other",
		PartFile: "p.yaml",
		Encoding: "utf-16le",
		Strict:   true,
		Workers:  8,
	})

	assert.Equal(t, "other", cfg.InputDir)
	assert.Equal(t, "/abs/out", cfg.OutputDir)
	assert.Equal(t, "p.yaml", cfg.PartFile)
	assert.Equal(t, "utf-16le", cfg.Encoding)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 8, cfg.Workers)
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, ".", cfg.InputDir)
	assert.Equal(t, "revised", cfg.OutputDir)
	assert.Equal(t, "", cfg.PartFile)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.False(t, cfg.Strict)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "config: read")

	_, err = Load(writeConfig(t, `{"workers": "many"}`))
	assert.ErrorContains(t, err, "config: parse")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	cfg := Config{InputDir: dir}
	assert.Error(t, cfg.Validate())

	cfg.PartFile = "p.yaml"
	assert.NoError(t, cfg.Validate())

	cfg.InputDir = filepath.Join(dir, "nope")
	assert.Error(t, cfg.Validate())

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg.InputDir = file
	assert.Error(t, cfg.Validate())
}
