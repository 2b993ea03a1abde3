package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"parametric-parts/internal/mesh"
	"parametric-parts/internal/part"
)

// Extensions lists the mesh file suffixes Collect picks up.
var Extensions = []string{".obj", ".mesh"}

// Config holds all shared resources for a batch run. Definition and Values
// are read-only while Run is in progress.
type Config struct {
	InputDir   string
	OutputDir  string
	Definition *part.Definition
	Values     map[string]float64
	Options    mesh.Options
	Workers    int
	Logger     *slog.Logger

	// Interval between progress log lines; 0 means 2s.
	Interval time.Duration
}

// Result holds the outcome of processing one mesh file.
type Result struct {
	File     string
	Output   string
	Vertices int
	Faces    int
	Success  bool
	Error    string
}

// Collect lists the mesh files directly inside dir, sorted by name.
func Collect(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range Extensions {
			if ext == want {
				files = append(files, e.Name())
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run processes all files using a worker pool. Each worker parses its own
// geometry and builds its own part, so nothing mutable is shared.
func Run(cfg Config, files []string) []Result {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					logger.Info("progress",
						slog.Int64("done", p),
						slog.Int("total", total),
						slog.String("rate", fmt.Sprintf("%.1f files/sec", float64(p)/elapsed)))
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				if !results[idx].Success {
					logger.Warn("file failed", slog.String("file", files[idx]), slog.String("error", results[idx].Error))
				} else {
					logger.Debug("file revised", slog.String("file", files[idx]), slog.String("output", results[idx].Output))
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

// Failed counts unsuccessful results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}

// writeMesh is swapped in tests to simulate a failing writer.
var writeMesh = mesh.Write

// writeOutput writes g to path. On any error the partial file is removed.
func writeOutput(path string, g *mesh.Geometry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeMesh(f, g); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func processFile(cfg Config, name string) Result {
	res := Result{File: name}

	g, err := mesh.ParseFile(filepath.Join(cfg.InputDir, name), cfg.Options)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Vertices = g.VertexCount()
	res.Faces = g.Size()

	p, err := cfg.Definition.Build(g)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if err := p.Apply(cfg.Values); err != nil {
		res.Error = err.Error()
		return res
	}

	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	if err := writeOutput(outPath, p.Geometry()); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Output = name
	res.Success = true
	return res
}
