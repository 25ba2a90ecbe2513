package tds

import "github.com/katalvlaran/simplex/handle"

// VertexHandle references a vertex slot in a TDS. The zero value is
// NullVertex and never refers to a live vertex.
type VertexHandle handle.Handle

// CellHandle references a full-cell slot in a TDS. The zero value is
// NullCell and never refers to a live full cell.
type CellHandle handle.Handle

// NullVertex is the distinguished "no vertex" handle.
const NullVertex VertexHandle = VertexHandle(handle.Null)

// NullCell is the distinguished "no full cell" handle.
const NullCell CellHandle = CellHandle(handle.Null)

// IsNull reports whether v is the null vertex handle.
func (v VertexHandle) IsNull() bool { return handle.Handle(v) == handle.Null }

// IsNull reports whether s is the null full-cell handle.
func (s CellHandle) IsNull() bool { return handle.Handle(s) == handle.Null }

// vertexRecord is the payload stored in the vertex pool.
//
// cell, when non-null, is a full cell whose vertex list contains the
// vertex owning this record.
type vertexRecord struct {
	payload any
	cell    CellHandle
}

// cellRecord is the payload stored in the full-cell pool.
//
// vertex, neighbor and mirror are all allocated to length
// ambient_dimension+1 at construction; only indices [0, current_dimension]
// are meaningful. visited is the traversal mark scratch bit; a bool
// suffices since only one traversal is ever in flight at a time and it
// reads more plainly than bit-twiddling a byte would.
type cellRecord struct {
	vertex   []VertexHandle
	neighbor []CellHandle
	mirror   []int8
	payload  any
	visited  bool
}
