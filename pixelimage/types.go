package pixelimage

// Channel selects one of the three 8-bit color channels a pixel carries.
type Channel uint8

const (
	R Channel = iota
	G
	B
)

// String returns the single-letter channel name used in log fields and
// test failure messages.
func (c Channel) String() string {
	switch c {
	case R:
		return "R"
	case G:
		return "G"
	case B:
		return "B"
	default:
		return "?"
	}
}

// Pixel is a single 8-bit RGB triple.
type Pixel struct {
	R, G, B uint8
}

// intensity returns the pixel's value on the given channel.
func (p Pixel) intensity(c Channel) uint8 {
	switch c {
	case G:
		return p.G
	case B:
		return p.B
	default:
		return p.R
	}
}

// Image is a read-only, rectangular H x W grid of 8-bit RGB pixels.
// Pixels are stored densely in row-major order; pixel index
// i = y*Width + x is the canonical addressing scheme used throughout
// this module (spec.md section 3). An Image is immutable once
// constructed: New deep-copies its input, and no method mutates the
// receiver.
type Image struct {
	Width, Height int
	pixels        []Pixel
}

// New builds an Image from a non-empty, rectangular row-major [][]Pixel
// grid (rows[y][x] = Pixel{R, G, B}). It deep-copies the input.
//
// Returns ErrEmptyImage if rows has no rows or the first row has no
// columns, ErrNonRectangular if any row's length differs from the
// first.
// Complexity: O(H*W) time and memory.
func New(rows [][]Pixel) (Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Image{}, ErrEmptyImage
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return Image{}, ErrNonRectangular
		}
	}
	pixels := make([]Pixel, h*w)
	for y, row := range rows {
		copy(pixels[y*w:(y+1)*w], row)
	}
	return Image{Width: w, Height: h, pixels: pixels}, nil
}

// N returns the pixel count Width*Height.
func (img Image) N() int {
	return img.Width * img.Height
}

// At returns the pixel at row-major index i.
// Complexity: O(1).
func (img Image) At(i int) Pixel {
	return img.pixels[i]
}

// AtXY returns the pixel at (x,y).
// Complexity: O(1).
func (img Image) AtXY(x, y int) Pixel {
	return img.pixels[y*img.Width+x]
}

// Intensity returns the value of channel c at row-major index i, the
// quantity spec.md section 4.B's edge weights are absolute differences
// of.
// Complexity: O(1).
func (img Image) Intensity(i int, c Channel) uint8 {
	return img.pixels[i].intensity(c)
}
