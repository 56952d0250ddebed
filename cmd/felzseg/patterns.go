package main

import "github.com/Between-Dimensions/ImageSegmentation/pixelimage"

// synthesize builds a test image in one of a small set of named
// patterns, since decoding real image file formats is out of scope for
// this module (see spec.md's non-goals): checkerboard alternates
// black and white in an 8-connected diagonal pattern, ramp is a
// horizontal gradient repeated on every row, and blocks quarters the image into
// four flat-colored rectangles.
func synthesize(pattern string, width, height int) (pixelimage.Image, error) {
	switch pattern {
	case "checkerboard":
		return checkerboardPattern(width, height)
	case "ramp":
		return rampPattern(width, height)
	case "blocks":
		return blocksPattern(width, height)
	default:
		return pixelimage.Image{}, ErrUnknownPattern
	}
}

func checkerboardPattern(width, height int) (pixelimage.Image, error) {
	rows := make([][]pixelimage.Pixel, height)
	for y := 0; y < height; y++ {
		row := make([]pixelimage.Pixel, width)
		for x := 0; x < width; x++ {
			if (x+y)%2 == 0 {
				row[x] = pixelimage.Pixel{R: 0, G: 0, B: 0}
			} else {
				row[x] = pixelimage.Pixel{R: 255, G: 255, B: 255}
			}
		}
		rows[y] = row
	}
	return pixelimage.New(rows)
}

func rampPattern(width, height int) (pixelimage.Image, error) {
	rows := make([][]pixelimage.Pixel, height)
	for y := 0; y < height; y++ {
		row := make([]pixelimage.Pixel, width)
		for x := 0; x < width; x++ {
			v := uint8((x * 255) / maxInt(width-1, 1))
			row[x] = pixelimage.Pixel{R: v, G: v, B: v}
		}
		rows[y] = row
	}
	return pixelimage.New(rows)
}

func blocksPattern(width, height int) (pixelimage.Image, error) {
	rows := make([][]pixelimage.Pixel, height)
	midX, midY := width/2, height/2
	colors := [4]pixelimage.Pixel{
		{R: 20, G: 20, B: 20},
		{R: 235, G: 20, B: 20},
		{R: 20, G: 235, B: 20},
		{R: 20, G: 20, B: 235},
	}
	for y := 0; y < height; y++ {
		row := make([]pixelimage.Pixel, width)
		for x := 0; x < width; x++ {
			quadrant := 0
			if x >= midX {
				quadrant += 1
			}
			if y >= midY {
				quadrant += 2
			}
			row[x] = colors[quadrant]
		}
		rows[y] = row
	}
	return pixelimage.New(rows)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
