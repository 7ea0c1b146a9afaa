package pixel

import (
	"JuliaRender/misc"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a normalized RGBA color. Every component is expected to lie in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// New builds a fully opaque color from normalized red, green and blue components.
func New(r float64, g float64, b float64) Color {
	return Color{
		Color: colorful.Color{R: r, G: g, B: b},
		A:     1.0,
	}
}

// FromHex decodes a packed 0xRRGGBB value. Alpha is always opaque.
func FromHex(value uint32) Color {
	r := misc.Map(float64((value>>16)&0xFF), 0, 255, 0, 1)
	g := misc.Map(float64((value>>8)&0xFF), 0, 255, 0, 1)
	b := misc.Map(float64(value&0xFF), 0, 255, 0, 1)
	return New(r, g, b)
}

// IsValid reports whether all four components are within [0, 1].
func (c Color) IsValid() bool {
	return c.Color.IsValid() && c.A >= 0 && c.A <= 1
}

// Bytes converts the color to 8-bit red, green, blue and alpha channels, truncating each.
// Components outside [0, 1] saturate at 0 or 255.
func (c Color) Bytes() [4]uint8 {
	rgb := c.Color.Clamped()
	return [4]uint8{
		channel(rgb.R),
		channel(rgb.G),
		channel(rgb.B),
		channel(math.Max(0, math.Min(1, c.A))),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("{Color %s A: %f}", c.Hex(), c.A)
}

func channel(value float64) uint8 {
	return uint8(misc.MapIndex(value, 0, 1, 0, 255))
}
