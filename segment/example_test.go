package segment_test

import (
	"fmt"

	"github.com/Between-Dimensions/ImageSegmentation/pixelimage"
	"github.com/Between-Dimensions/ImageSegmentation/segment"
)

func ExampleSegment() {
	rows := [][]pixelimage.Pixel{
		{{R: 0, G: 0, B: 0}, {R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}, {R: 255, G: 255, B: 255}},
	}
	img, err := pixelimage.New(rows)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	labels, err := segment.Segment(img, 100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(labels[0] == labels[1], labels[2] == labels[3], labels[0] == labels[2])
	// Output: true true false
}
