package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simplex/construct"
)

func buildCmd() *cobra.Command {
	var sphereDim int
	var subdivide bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a fixture triangulation and report its shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []construct.Option{construct.WithSeed(seed())}
			cons := []construct.Constructor{construct.Sphere(sphereDim)}
			if subdivide {
				cons = append(cons, construct.Subdivide())
			}
			t, err := construct.Build(ambientDimension(), opts, cons...)
			if err != nil {
				return err
			}
			printf("current_dimension=%d vertices=%d full_cells=%d valid=%t\n",
				t.CurrentDimension(), t.NumberOfVertices(), t.NumberOfFullCells(), t.IsValid(true))
			return nil
		},
	}
	cmd.Flags().IntVar(&sphereDim, "sphere-dimension", 2, "dimension of the minimal triangulated sphere to build")
	cmd.Flags().BoolVar(&subdivide, "subdivide", false, "stellar-subdivide every cell after building the sphere")
	return cmd
}
