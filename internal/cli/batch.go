package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"parametric-parts/internal/batch"
	"parametric-parts/internal/config"
	"parametric-parts/internal/mesh"
	"parametric-parts/internal/part"
)

type batchOptions struct {
	partFile  string
	sets      []string
	inputDir  string
	outputDir string
	workers   int
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Apply a part definition to every mesh in a directory",
		Long: `Apply the same attribute values to every *.obj and *.mesh file in the
input directory. Revised meshes and manifest.json go to the output
directory. Exits non-zero when any file fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.partFile, "part", "p", "", "part definition (YAML)")
	cmd.Flags().StringArrayVarP(&opts.sets, "set", "s", nil, "attribute value as Name=value (repeatable)")
	cmd.Flags().StringVarP(&opts.inputDir, "input", "i", "", "input directory")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "output directory (default: <input>/revised)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "number of worker goroutines (default: NumCPU)")

	return cmd
}

func runBatch(rootOpts *RootOptions, opts *batchOptions, cmd *cobra.Command) error {
	logger := rootOpts.logger(cmd)

	// Load config
	var cfg config.Config
	if rootOpts.Config != "" {
		var err error
		cfg, err = config.Load(rootOpts.Config)
		if err != nil {
			return err
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:  opts.inputDir,
		OutputDir: opts.outputDir,
		PartFile:  opts.partFile,
		Encoding:  rootOpts.Encoding,
		Strict:    rootOpts.Strict,
		Workers:   opts.workers,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	values, err := parseValues(opts.sets)
	if err != nil {
		return err
	}
	def, err := part.LoadDefinition(cfg.PartFile)
	if err != nil {
		return err
	}
	files, err := batch.Collect(cfg.InputDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintln(w, "No meshes to revise.")
		return nil
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintf(w, "Part: %s\n", def.Name)
	fmt.Fprintf(w, "Meshes: %d, Workers: %d\n", len(files), cfg.Workers)
	fmt.Fprintf(w, "Output: %s\n", cfg.OutputDir)
	logger.Debug("Batch settings",
		slog.String("input", cfg.InputDir),
		slog.String("encoding", cfg.Encoding),
		slog.Bool("strict", cfg.Strict))

	start := time.Now()

	results := batch.Run(batch.Config{
		InputDir:   cfg.InputDir,
		OutputDir:  cfg.OutputDir,
		Definition: def,
		Values:     values,
		Options:    mesh.Options{Strict: cfg.Strict, Encoding: cfg.Encoding, Logger: logger},
		Workers:    cfg.Workers,
		Logger:     logger,
	}, files)

	failed := batch.Failed(results)
	fmt.Fprintf(w, "Done in %.1fs\n", time.Since(start).Seconds())
	fmt.Fprintf(w, "Revised: %d/%d\n", len(results)-failed, len(results))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, def.Name, values, results); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	fmt.Fprintf(w, "Manifest: %s\n", manifestPath)

	if failed > 0 {
		fmt.Fprintf(w, "\nFailed (%d):\n", failed)
		for _, r := range results {
			if !r.Success {
				fmt.Fprintf(w, "  %s: %s\n", r.File, r.Error)
			}
		}
		return fmt.Errorf("%d of %d meshes failed", failed, len(results))
	}
	return nil
}
