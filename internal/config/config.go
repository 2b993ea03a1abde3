package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the paths and parse settings for a batch run.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`
	PartFile  string `json:"part_file"`

	// Mesh parsing
	Encoding string `json:"encoding"`
	Strict   bool   `json:"strict"`

	Workers int `json:"workers"`

	// dir is the directory of the loaded file; relative paths resolve against it.
	dir string
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file; their paths stay relative to the cwd
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	} else {
		c.InputDir = c.rel(c.InputDir)
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	} else {
		c.OutputDir = c.rel(c.OutputDir)
	}
	if flags.PartFile != "" {
		c.PartFile = flags.PartFile
	} else {
		c.PartFile = c.rel(c.PartFile)
	}
	if flags.Encoding != "" {
		c.Encoding = flags.Encoding
	}
	if flags.Strict {
		c.Strict = true
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.InputDir == "" {
		c.InputDir = "."
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.InputDir, "revised")
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func (c *Config) rel(path string) string {
	if path == "" || c.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.dir, path)
}

// Validate reports settings a batch run cannot start without.
func (c *Config) Validate() error {
	if c.PartFile == "" {
		return fmt.Errorf("config: no part definition file")
	}
	info, err := os.Stat(c.InputDir)
	if err != nil {
		return fmt.Errorf("config: input dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("config: input dir %s is not a directory", c.InputDir)
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir  string
	OutputDir string
	PartFile  string
	Encoding  string
	Strict    bool
	Workers   int
}
