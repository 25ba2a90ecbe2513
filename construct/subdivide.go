package construct

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/simplex/hole"
	"github.com/katalvlaran/simplex/tds"
)

// Subdivide returns a Constructor that stellar-subdivides every full
// cell present in t at the time it runs — apexing a fresh vertex over
// each one via hole.InsertInFullCell — without touching any cell
// created by the subdivision itself.
//
// Precondition: t.CurrentDimension() > 0 (InsertInFullCell requires a
// positive dimension to have a facet to cone from).
func Subdivide() Constructor {
	return func(t *tds.TDS, cfg Config) error {
		if t.CurrentDimension() <= 0 {
			return errors.New("construct.Subdivide: current dimension must be > 0")
		}
		cells := t.FullCells()
		for i, s := range cells {
			hole.InsertInFullCell(t, s, cfg.payloadFn(i))
		}
		return nil
	}
}
