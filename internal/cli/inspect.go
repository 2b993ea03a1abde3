package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"parametric-parts/internal/mesh"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	var normals bool

	cmd := &cobra.Command{
		Use:   "inspect <mesh>",
		Short: "Print vertex and face counts, bounds and size of a mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, cmd, args[0], normals)
		},
	}

	cmd.Flags().BoolVar(&normals, "normals", false, "print the normal of every face")

	return cmd
}

func runInspect(opts *RootOptions, cmd *cobra.Command, path string, normals bool) error {
	logger := opts.logger(cmd)

	g, err := mesh.ParseFile(path, opts.meshOptions(logger))
	if err != nil {
		return err
	}
	logger.Debug("Parsed mesh", slog.String("path", path))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "mesh: %s\n", path)
	fmt.Fprintf(w, "vertices: %d\n", g.VertexCount())
	fmt.Fprintf(w, "faces: %d\n", g.Size())
	if g.VertexCount() > 0 {
		lo, hi := g.Bounds()
		fmt.Fprintf(w, "min: %s\n", mesh.FormatVec3(lo))
		fmt.Fprintf(w, "max: %s\n", mesh.FormatVec3(hi))
		fmt.Fprintf(w, "size: %s\n", mesh.FormatVec3(hi.Sub(lo)))
	}

	if normals {
		for _, t := range g.Triangles() {
			fmt.Fprintf(w, "%s  n %s\n", t.Face(), mesh.FormatVec3(t.Normal()))
		}
	}
	return nil
}
