package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/simplex/tds"
)

// ErrMalformedStream is wrapped by every error Read returns once it has
// started consuming the stream: a truncated read, an index outside the
// count just declared, or a header that does not parse.
var ErrMalformedStream = errors.New("codec: malformed stream")

// Mode selects the wire encoding for the combinatorial skeleton (counts
// and indices). Each payload is preceded by its byte length, written as a
// skeleton integer in the current Mode; Text mode also writes a single
// space after the payload bytes.
type Mode int

const (
	// Text separates every skeleton token with whitespace and writes
	// integers in decimal.
	Text Mode = iota
	// Binary writes every skeleton integer as a fixed-width
	// little-endian uint32.
	Binary
)

// Payload is the collaborator contract a vertex or cell payload value
// must satisfy to be written by this package: stream itself out as
// opaque bytes. codec never interprets the result.
type Payload interface {
	WriteTo(w io.Writer) (int64, error)
}

// Decoder reads one payload back from r and returns it as the opaque
// value that will be stored in the reconstructed TDS.
type Decoder func(r io.Reader) (any, error)

// rawPayload wraps a value with no better Payload available: it is
// written as its fmt.Sprint representation. Used only when a caller
// passes a payload that isn't a Payload — Write still needs to produce
// bytes for every vertex/cell slot the format requires.
type rawPayload struct{ v any }

func (r rawPayload) WriteTo(w io.Writer) (int64, error) {
	s := fmt.Sprint(r.v)
	n, err := io.WriteString(w, s)
	return int64(n), err
}

func asPayload(v any) Payload {
	if p, ok := v.(Payload); ok {
		return p
	}
	return rawPayload{v}
}

// skeletonWriter abstracts over Text/Binary token framing for the
// combinatorial skeleton only.
type skeletonWriter struct {
	mode Mode
	w    io.Writer
	err  error
}

func (s *skeletonWriter) writeInt(v int) {
	if s.err != nil {
		return
	}
	switch s.mode {
	case Text:
		_, s.err = fmt.Fprintf(s.w, "%d ", v)
	case Binary:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(int32(v)))
		_, s.err = s.w.Write(buf[:])
	}
}

func (s *skeletonWriter) writePayload(p Payload) {
	if s.err != nil {
		return
	}
	var buf countingBuffer
	if _, err := p.WriteTo(&buf); err != nil {
		s.err = err
		return
	}
	s.writeInt(len(buf.data))
	if s.mode == Text {
		_, s.err = s.w.Write(buf.data)
		if s.err == nil {
			_, s.err = io.WriteString(s.w, " ")
		}
		return
	}
	_, s.err = s.w.Write(buf.data)
}

type countingBuffer struct{ data []byte }

func (c *countingBuffer) Write(p []byte) (int, error) {
	c.data = append(c.data, p...)
	return len(p), nil
}

// Write encodes t's combinatorial state (and every vertex/cell payload)
// to w in the given mode. Vertex and cell payloads are written in pool
// iteration order, matching the order Read expects them back in.
func Write(t *tds.TDS, w io.Writer, mode Mode) error {
	sw := &skeletonWriter{mode: mode, w: w}

	sw.writeInt(t.CurrentDimension())
	vertices := t.Vertices()
	sw.writeInt(len(vertices))
	vidx := make(map[tds.VertexHandle]int, len(vertices))
	for i, v := range vertices {
		vidx[v] = i
		sw.writePayload(asPayload(t.VertexPayload(v)))
	}

	cells := t.FullCells()
	sw.writeInt(len(cells))
	cidx := make(map[tds.CellHandle]int, len(cells))
	for i, s := range cells {
		cidx[s] = i
	}

	curDim := t.CurrentDimension()
	fakeDim := curDim
	if fakeDim < 0 {
		fakeDim = 0
	}
	for _, s := range cells {
		for i := 0; i <= fakeDim; i++ {
			sw.writeInt(vidx[t.VertexOf(s, i)])
		}
		sw.writePayload(asPayload(t.CellPayload(s)))
	}
	for _, s := range cells {
		for i := 0; i <= fakeDim; i++ {
			sw.writeInt(cidx[t.NeighborOf(s, i)])
		}
	}
	if sw.err != nil {
		return errors.Wrap(sw.err, "codec: write")
	}
	return nil
}

// skeletonReader is the Read-side mirror of skeletonWriter.
type skeletonReader struct {
	mode Mode
	br   *bufio.Reader
}

func (s *skeletonReader) readInt() (int, error) {
	switch s.mode {
	case Text:
		var b []byte
		for {
			c, err := s.br.ReadByte()
			if err != nil {
				if len(b) > 0 {
					break
				}
				return 0, errors.Wrap(ErrMalformedStream, "unexpected end of stream reading an integer")
			}
			if c == ' ' || c == '\n' || c == '\t' || c == '\r' {
				if len(b) == 0 {
					continue
				}
				break
			}
			b = append(b, c)
		}
		n, err := strconv.Atoi(string(b))
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedStream, "invalid integer token %q", string(b))
		}
		return n, nil
	case Binary:
		var buf [4]byte
		if _, err := io.ReadFull(s.br, buf[:]); err != nil {
			return 0, errors.Wrap(ErrMalformedStream, "truncated stream reading a binary integer")
		}
		return int(int32(binary.LittleEndian.Uint32(buf[:]))), nil
	}
	return 0, errors.Wrap(ErrMalformedStream, "unknown mode")
}

func (s *skeletonReader) readPayload(decode Decoder) (any, error) {
	n, err := s.readInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Wrap(ErrMalformedStream, "negative payload length")
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.br, buf); err != nil {
		return nil, errors.Wrap(ErrMalformedStream, "truncated payload")
	}
	if s.mode == Text {
		// Consume the separating space the writer emitted after a text payload.
		if b, err := s.br.ReadByte(); err == nil && b != ' ' {
			_ = s.br.UnreadByte()
		}
	}
	if decode == nil {
		return string(buf), nil
	}
	return decode(bytesReader(buf))
}

func bytesReader(b []byte) io.Reader { return &sliceReader{b: b} }

type sliceReader struct {
	b []byte
	i int
}

func (r *sliceReader) Read(p []byte) (int, error) {
	if r.i >= len(r.b) {
		return 0, io.EOF
	}
	n := copy(p, r.b[r.i:])
	r.i += n
	return n, nil
}

// Read decodes a TDS previously written by Write, in the same mode,
// into a fresh tds.TDS with the given ambient dimension. On any
// malformed-stream error the returned TDS is left Clear()ed.
//
// vertexDecoder/cellDecoder may be nil, in which case payloads are
// recovered as their raw string form. On a malformed stream the target
// TDS is left Clear()ed rather than partially populated.
func Read(ambientDim int, r io.Reader, mode Mode, vertexDecoder, cellDecoder Decoder) (*tds.TDS, error) {
	t := tds.New(ambientDim)
	sr := &skeletonReader{mode: mode, br: bufio.NewReader(r)}

	fail := func(err error) (*tds.TDS, error) {
		t.Clear()
		return t, err
	}

	dcur, err := sr.readInt()
	if err != nil {
		return fail(err)
	}
	if dcur < -2 || dcur > ambientDim {
		return fail(errors.Wrapf(ErrMalformedStream, "current dimension %d out of range", dcur))
	}
	n, err := sr.readInt()
	if err != nil {
		return fail(err)
	}
	if n < 0 {
		return fail(errors.Wrap(ErrMalformedStream, "negative vertex count"))
	}

	if dcur != -2 {
		if err := t.SetCurrentDimension(dcur); err != nil {
			return fail(errors.Wrap(ErrMalformedStream, "invalid current dimension header"))
		}
	} else if n != 0 {
		return fail(errors.Wrap(ErrMalformedStream, "current dimension is -2 but vertex count is nonzero"))
	}

	vertices := make([]tds.VertexHandle, n)
	for i := 0; i < n; i++ {
		payload, err := sr.readPayload(vertexDecoder)
		if err != nil {
			return fail(err)
		}
		vertices[i] = t.NewVertex(payload)
	}

	m, err := sr.readInt()
	if err != nil {
		return fail(err)
	}
	if m < 0 {
		return fail(errors.Wrap(ErrMalformedStream, "negative cell count"))
	}
	if dcur == -2 && m != 0 {
		return fail(errors.Wrap(ErrMalformedStream, "current dimension is -2 but cell count is nonzero"))
	}

	fakeDim := dcur
	if fakeDim < 0 {
		fakeDim = 0
	}

	cells := make([]tds.CellHandle, m)
	for i := 0; i < m; i++ {
		cells[i] = t.NewFullCell()
	}
	for i := 0; i < m; i++ {
		seen := make(map[int]bool, fakeDim+1)
		for k := 0; k <= fakeDim; k++ {
			vi, err := sr.readInt()
			if err != nil {
				return fail(err)
			}
			if vi < 0 || vi >= n {
				return fail(errors.Wrapf(ErrMalformedStream, "vertex index %d out of range [0,%d)", vi, n))
			}
			if seen[vi] {
				return fail(errors.Wrapf(ErrMalformedStream, "cell %d repeats vertex index %d", i, vi))
			}
			seen[vi] = true
			t.AssociateVertexWithFullCell(cells[i], k, vertices[vi])
		}
		payload, err := sr.readPayload(cellDecoder)
		if err != nil {
			return fail(err)
		}
		t.SetCellPayload(cells[i], payload)
	}

	neighborIdx := make([][]int, m)
	for i := 0; i < m; i++ {
		neighborIdx[i] = make([]int, fakeDim+1)
		for k := 0; k <= fakeDim; k++ {
			ni, err := sr.readInt()
			if err != nil {
				return fail(err)
			}
			if ni < 0 || ni >= m {
				return fail(errors.Wrapf(ErrMalformedStream, "cell index %d out of range [0,%d)", ni, m))
			}
			neighborIdx[i][k] = ni
		}
	}
	// Wire neighbors symmetrically, deriving mirror indices by scanning
	// (mirror indices are not written to the stream).
	linked := make([][]bool, m)
	for i := range linked {
		linked[i] = make([]bool, fakeDim+1)
	}
	for i := 0; i < m; i++ {
		for k := 0; k <= fakeDim; k++ {
			if linked[i][k] {
				continue
			}
			j := neighborIdx[i][k]
			mirror := -1
			for l := 0; l <= fakeDim; l++ {
				if neighborIdx[j][l] == i && !linked[j][l] {
					mirror = l
					break
				}
			}
			if mirror < 0 {
				return fail(errors.Wrapf(ErrMalformedStream,
					"cell %d's neighbor %d does not point back", i, j))
			}
			t.SetNeighbors(cells[i], k, cells[j], mirror)
			linked[i][k] = true
			linked[j][mirror] = true
		}
	}

	return t, nil
}

