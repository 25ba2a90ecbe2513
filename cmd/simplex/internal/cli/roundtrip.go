package cli

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simplex/codec"
	"github.com/katalvlaran/simplex/construct"
)

func roundtripCmd() *cobra.Command {
	var sphereDim int
	var binary bool

	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Build a fixture sphere, write it, read it back, and diff the shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := construct.Build(ambientDimension(), []construct.Option{construct.WithSeed(seed())},
				construct.Sphere(sphereDim))
			if err != nil {
				return err
			}

			mode := codec.Text
			if binary {
				mode = codec.Binary
			}
			var buf bytes.Buffer
			if err := codec.Write(t, &buf, mode); err != nil {
				return errors.Wrap(err, "roundtrip: write")
			}
			got, err := codec.Read(ambientDimension(), &buf, mode, nil, nil)
			if err != nil {
				return errors.Wrap(err, "roundtrip: read")
			}
			if got.NumberOfVertices() != t.NumberOfVertices() || got.NumberOfFullCells() != t.NumberOfFullCells() {
				return errors.New("roundtrip: recovered triangulation shape does not match the original")
			}
			printf("roundtrip ok: vertices=%d full_cells=%d valid=%t\n",
				got.NumberOfVertices(), got.NumberOfFullCells(), got.IsValid(true))
			return nil
		},
	}
	cmd.Flags().IntVar(&sphereDim, "sphere-dimension", 2, "dimension of the minimal triangulated sphere to build")
	cmd.Flags().BoolVar(&binary, "binary", false, "use the binary wire encoding instead of text")
	return cmd
}
