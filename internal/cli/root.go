package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"parametric-parts/internal/mesh"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Config   string // JSON config file, used by batch
	Encoding string // IANA charset of input meshes
	Strict   bool   // reject unknown mesh line tags
}

// NewRootCommand creates the root command for partctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "partctl",
		Short: "partctl - parametric part meshes",
		Long: `Inspect triangle meshes and revise them through named attributes.

A part definition (YAML) names attributes; each attribute moves selected
vertices by a magnitude given on the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to config.json")
	cmd.PersistentFlags().StringVar(&opts.Encoding, "encoding", "", "charset of input meshes (e.g. windows-1252)")
	cmd.PersistentFlags().BoolVar(&opts.Strict, "strict", false, "fail on unrecognized mesh lines")

	// Add subcommands
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewApplyCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// logger writes text records to the command's stderr.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) meshOptions(logger *slog.Logger) mesh.Options {
	return mesh.Options{
		Strict:   o.Strict,
		Encoding: o.Encoding,
		Logger:   logger,
	}
}
