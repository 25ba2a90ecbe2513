package construct

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/simplex/tds"
)

// Constructor applies one deterministic mutation to t under cfg.
// Constructors must not panic; they report failure through an error.
type Constructor func(t *tds.TDS, cfg Config) error

// Build allocates an empty TDS with the given ambient dimension and
// applies every Constructor in order, wrapping the first error with its
// index in the chain. On error the partially built TDS is returned
// alongside the error, matching this module's general "no silent
// partial success, but no forced rollback either" stance for
// programmer-error-class failures.
func Build(ambientDim int, opts []Option, cons ...Constructor) (*tds.TDS, error) {
	t := tds.New(ambientDim)
	cfg := newConfig(opts...)
	for i, c := range cons {
		if c == nil {
			return t, errors.Errorf("construct.Build: nil constructor at index %d", i)
		}
		if err := c(t, cfg); err != nil {
			return t, errors.Wrapf(err, "construct.Build: constructor %d", i)
		}
	}
	return t, nil
}
