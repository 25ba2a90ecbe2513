package dimension

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/simplex/tds"
	"github.com/katalvlaran/simplex/walk"
)

// Decrease removes v and lowers t's current dimension by one. star names
// a second vertex that survives the contraction; it is used at every
// current dimension >= 0 and ignored (and may be tds.NullVertex) only
// when the current dimension is -1.
//
// Precondition: v must be a live vertex of t and t.CurrentDimension() >= -1.
func Decrease(t *tds.TDS, v, star tds.VertexHandle) error {
	cur := t.CurrentDimension()
	if cur < -1 {
		return errors.Wrapf(tds.ErrDimensionOutOfRange, "Decrease: current dimension %d", cur)
	}

	switch cur {
	case -1:
		t.Clear()
		return nil

	case 0:
		t.DeleteFullCell(t.VertexFullCell(v))
		t.DeleteVertex(v)
		t.SetNeighborOf(t.VertexFullCell(star), 0, tds.NullCell)
		return t.SetCurrentDimension(-1)

	case 1:
		s := t.VertexFullCell(v)
		if starIdx := t.IndexOfVertex(s, star); starIdx >= 0 {
			s = t.NeighborOf(s, starIdx)
		}
		inf1 := t.NeighborOf(s, 0)
		inf2 := t.NeighborOf(s, 1)
		vIdx := t.IndexOfVertex(s, v)
		v2 := t.VertexOf(s, 1-vIdx)
		t.DeleteVertex(v)
		t.DeleteFullCell(s)
		t.SetVertexOf(inf1, 1, tds.NullVertex)
		t.SetNeighborOf(inf1, 1, tds.NullCell)
		t.SetVertexOf(inf2, 1, tds.NullVertex)
		t.SetNeighborOf(inf2, 1, tds.NullCell)
		t.AssociateVertexWithFullCell(inf1, 0, star)
		t.AssociateVertexWithFullCell(inf2, 0, v2)
		t.SetNeighbors(inf1, 0, inf2, 0)
		return t.SetCurrentDimension(0)

	default:
		for _, s := range walk.IncidentFullCellsOfVertex(t, v) {
			vIdx := t.IndexOfVertex(s, v)
			if t.IndexOfVertex(s, star) < 0 {
				t.DeleteFullCell(t.NeighborOf(s, vIdx))
				for i := 0; i <= cur; i++ {
					t.SetVertexFullCell(t.VertexOf(s, i), s)
				}
			} else {
				t.SetVertexFullCell(star, s)
			}
			if vIdx != cur {
				t.SwapVertices(s, vIdx, cur)
				if t.IndexOfVertex(s, star) < 0 || cur > 2 {
					t.SwapVertices(s, cur-2, cur-1)
				}
			}
			t.SetVertexOf(s, cur, tds.NullVertex)
			t.SetNeighborOf(s, cur, tds.NullCell)
		}
		if err := t.SetCurrentDimension(cur - 1); err != nil {
			return err
		}
		t.DeleteVertex(v)
		return nil
	}
}
