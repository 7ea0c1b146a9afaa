package pixel

import (
	"fmt"
	gimage "image"
)

// Buffer holds one color per pixel in row-major order: all of row 0 left to right, then row 1, and so on.
type Buffer struct {
	colors []Color
	height int
	width  int
}

func NewBuffer(width int, height int) *Buffer {
	return &Buffer{
		colors: make([]Color, 0, width*height),
		height: height,
		width:  width,
	}
}

// Append adds the color for the next pixel in row-major order.
func (b *Buffer) Append(color Color) {
	b.colors = append(b.colors, color)
}

func (b *Buffer) Len() int {
	return len(b.colors)
}

func (b *Buffer) Width() int {
	return b.width
}

func (b *Buffer) Height() int {
	return b.height
}

// At returns the color recorded for the pixel at (column, row).
func (b *Buffer) At(column int, row int) Color {
	return b.colors[row*b.width+column]
}

// Complete reports whether every pixel has been recorded.
func (b *Buffer) Complete() bool {
	return len(b.colors) == b.width*b.height
}

// Bytes flattens the buffer into width*height*4 bytes of RGBA channel data.
func (b *Buffer) Bytes() []uint8 {
	data := make([]uint8, 0, len(b.colors)*4)
	for _, c := range b.colors {
		channels := c.Bytes()
		data = append(data, channels[:]...)
	}
	return data
}

// Image wraps the channel data as an image whose Pix slice is exactly Bytes().
// Every color must have its components within [0, 1].
func (b *Buffer) Image() (*gimage.NRGBA, error) {
	if !b.Complete() {
		return nil, fmt.Errorf("incomplete pixel buffer: have %d of %d pixels", len(b.colors), b.Width()*b.Height())
	}
	for i, c := range b.colors {
		if !c.IsValid() {
			return nil, fmt.Errorf("pixel (%d, %d) has a component outside [0, 1]: %s", i%b.Width(), i/b.Width(), c)
		}
	}
	return &gimage.NRGBA{
		Pix:    b.Bytes(),
		Stride: b.Width() * 4,
		Rect:   gimage.Rect(0, 0, b.Width(), b.Height()),
	}, nil
}

func (b *Buffer) String() string {
	output := "{Buffer "
	output += fmt.Sprintf("Width: %d ", b.width)
	output += fmt.Sprintf("Height: %d ", b.height)
	output += fmt.Sprintf("Pixels: %d}", len(b.colors))
	return output
}
