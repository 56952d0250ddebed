package grid

// N returns the total pixel count Width*Height.
// Complexity: O(1).
func (g Grid) N() int {
	return g.Width * g.Height
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to its row-major pixel index i = y*Width + x.
// Callers must ensure InBounds(x,y); Index does not itself bounds-check,
// matching spec.md section 4.A's "find of an out-of-range index is
// undefined" edge-case policy for the rest of the pipeline.
// Complexity: O(1).
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate maps a row-major pixel index back to (x,y).
// Complexity: O(1).
func (g Grid) Coordinate(i int) (x, y int) {
	return i % g.Width, i / g.Width
}

// Neighbor returns the pixel coordinate reached from (x,y) by Direction
// d, and whether that coordinate is in bounds.
// Complexity: O(1).
func (g Grid) Neighbor(x, y int, d Direction) (nx, ny int, ok bool) {
	dy, dx := d.Delta()
	nx, ny = x+dx, y+dy
	return nx, ny, g.InBounds(nx, ny)
}

// ForwardDirections returns the four Direction values that always
// satisfy i_p < i_q (R, D, DL, DR). EdgeBuilder walks exactly these per
// pixel to emit each unordered 8-neighbor pair exactly once.
// Complexity: O(1).
func (g Grid) ForwardDirections() [4]Direction {
	return forwardDirections
}

// AllDirections returns all eight Direction values, for callers that
// want the full 8-neighborhood rather than the canonical forward half.
// The channel intersector does not use it: it walks ForwardDirections.
// Complexity: O(1).
func (g Grid) AllDirections() [8]Direction {
	return [8]Direction{L, R, U, D, UL, UR, DL, DR}
}
