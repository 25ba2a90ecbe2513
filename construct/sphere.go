package construct

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/simplex/dimension"
	"github.com/katalvlaran/simplex/tds"
)

// Sphere returns a Constructor that drives an empty TDS up to
// current_dimension == d entirely through dimension.Increase, producing
// the minimal triangulated d-sphere: d+2 vertices, the boundary complex
// of a (d+1)-simplex. It requires t to be empty (current_dimension ==
// -2) and d in [0, t.AmbientDimension()].
func Sphere(d int) Constructor {
	return func(t *tds.TDS, cfg Config) error {
		if t.CurrentDimension() != -2 {
			return errors.New("construct.Sphere: target TDS is not empty")
		}
		if d < 0 || d > t.AmbientDimension() {
			return errors.Errorf("construct.Sphere: dimension %d out of [0,%d]", d, t.AmbientDimension())
		}
		star, err := dimension.Increase(t, tds.NullVertex, cfg.payloadFn(0))
		if err != nil {
			return errors.Wrap(err, "construct.Sphere: first vertex")
		}
		for k := 1; k <= d+1; k++ {
			if _, err := dimension.Increase(t, star, cfg.payloadFn(k)); err != nil {
				return errors.Wrapf(err, "construct.Sphere: vertex %d", k)
			}
		}
		return nil
	}
}
