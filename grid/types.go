package grid

// Direction identifies one of the eight grid neighbor offsets, per
// spec.md section 3's canonical direction-code set {L,R,U,D,UL,UR,DL,DR}.
type Direction uint8

const (
	L Direction = iota
	R
	U
	D
	UL
	UR
	DL
	DR
)

// delta holds (dy, dx) for each Direction, indexed by Direction value.
var delta = [8][2]int{
	L:  {0, -1},
	R:  {0, 1},
	U:  {-1, 0},
	D:  {1, 0},
	UL: {-1, -1},
	UR: {-1, 1},
	DL: {1, -1},
	DR: {1, 1},
}

// Delta returns the (dy, dx) row/column offset for d.
func (d Direction) Delta() (dy, dx int) {
	off := delta[d]
	return off[0], off[1]
}

// String returns the two-or-one letter code used in doc comments and
// test failure messages.
func (d Direction) String() string {
	switch d {
	case L:
		return "L"
	case R:
		return "R"
	case U:
		return "U"
	case D:
		return "D"
	case UL:
		return "UL"
	case UR:
		return "UR"
	case DL:
		return "DL"
	case DR:
		return "DR"
	default:
		return "?"
	}
}

// forwardDirections lists the four Direction values whose target pixel
// index is always greater than the source index in row-major order
// (dy > 0, or dy == 0 and dx > 0). Enumerating only these four per pixel
// realizes spec.md section 4.B's "i_p < i_q" canonical-ordering rule
// without a visited set.
var forwardDirections = [4]Direction{R, D, DL, DR}

// Grid is an immutable Width x Height rectangle of row-major pixel
// indices. It carries no pixel data; it is pure index arithmetic shared
// by every component that walks the 8-connected pixel graph.
type Grid struct {
	Width, Height int
}

// New constructs a Grid. Both dimensions must be positive; New does not
// validate this itself (felzenszwalb.BuildEdges rejects an empty image
// with felzenszwalb.ErrEmptyImage before calling New).
func New(width, height int) Grid {
	return Grid{Width: width, Height: height}
}
