// Package cli wires this module's build/validate/roundtrip fixtures
// behind a cobra command tree, with viper resolving flags against
// SIMPLEX_-prefixed environment variables the way the retrieval pack's
// service commands do. No config file is read.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var v = viper.New()

// Root returns the top-level "simplex" command.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "simplex",
		Short: "Build, validate and round-trip combinatorial triangulations",
		Long: "simplex exercises the tds/walk/hole/dimension/codec packages " +
			"through a small set of fixture triangulations, without any " +
			"geometric interpretation of the vertices it creates.",
	}

	root.PersistentFlags().Int("ambient-dimension", 3, "ambient dimension D of the triangulation")
	root.PersistentFlags().Int64("seed", 1, "seed for any stochastic fixture construction")
	_ = v.BindPFlag("ambient-dimension", root.PersistentFlags().Lookup("ambient-dimension"))
	_ = v.BindPFlag("seed", root.PersistentFlags().Lookup("seed"))
	v.SetEnvPrefix("SIMPLEX")
	v.AutomaticEnv()

	root.AddCommand(buildCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(roundtripCmd())
	return root
}

func ambientDimension() int { return v.GetInt("ambient-dimension") }
func seed() int64           { return v.GetInt64("seed") }

func printf(format string, args ...any) { fmt.Printf(format, args...) }
