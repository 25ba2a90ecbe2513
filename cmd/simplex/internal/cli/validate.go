package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simplex/construct"
)

func validateCmd() *cobra.Command {
	var sphereDim int

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build a fixture sphere and report whether it is valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := construct.Build(ambientDimension(), []construct.Option{construct.WithSeed(seed())},
				construct.Sphere(sphereDim))
			if err != nil {
				return err
			}
			if !t.IsValid(true) {
				return errors.New("simplex validate: triangulation is not valid")
			}
			printf("valid\n")
			return nil
		},
	}
	cmd.Flags().IntVar(&sphereDim, "sphere-dimension", 2, "dimension of the minimal triangulated sphere to build")
	return cmd
}
