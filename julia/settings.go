package julia

import (
	"JuliaRender/pixel"
	"errors"
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

// Settings is everything one render needs. Verify replaces a zero Boundary, FileName, Height, MaxIterations,
// Palette, Scale or Width with the reference value, and a constant of exactly 0+0i with the reference constant.
// The offsets have no default: zero centers the window on the origin.
type Settings struct {
	logger bslogger.Logger

	Boundary          float64
	ConstantImaginary float64
	ConstantReal      float64
	FileName          string
	Height            int
	MaxIterations     int
	OffsetX           float64
	OffsetY           float64
	Palette           []pixel.Hex
	Scale             float64
	Width             int
}

// DefaultSettings returns the reference render of the Julia set for c = -0.7269 + 0.1889i.
func DefaultSettings() Settings {
	return Settings{
		Boundary:          100.0,
		ConstantImaginary: 0.1889,
		ConstantReal:      -0.7269,
		FileName:          "output.png",
		Height:            2000,
		MaxIterations:     1000,
		OffsetX:           0.15,
		OffsetY:           0.25,
		Palette:           []pixel.Hex{0x000000, 0x9B1D1D, 0x3D2A2A, 0x635C5C, 0xFFFFFF},
		Scale:             0.5,
		Width:             2000,
	}
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("JuliaSettings", bslogger.Normal, nil)
	reference := DefaultSettings()

	if s.Boundary < 0 {
		return fmt.Errorf("boundary must not be negative: %f", s.Boundary)
	}
	if s.Boundary == 0 {
		s.Boundary = reference.Boundary
	}
	// A zero constant is a valid (if dull) Julia set, only default when both parts are missing
	if s.ConstantReal == 0 && s.ConstantImaginary == 0 {
		s.ConstantReal = reference.ConstantReal
		s.ConstantImaginary = reference.ConstantImaginary
	}
	if s.FileName == "" {
		s.FileName = reference.FileName
	}
	if s.Height <= 0 {
		s.Height = reference.Height
	}
	if s.MaxIterations == 1 {
		return errors.New("max iterations must be at least 2 to spread iteration counts over the palette")
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = reference.MaxIterations
	}
	if len(s.Palette) == 0 {
		s.Palette = reference.Palette
		s.logger.Warning("No palette given, using the reference palette")
	}
	for i, hex := range s.Palette {
		if hex > 0xFFFFFF {
			return fmt.Errorf("palette color %d is not a 24-bit value: %#x", i, uint32(hex))
		}
	}
	if s.Scale < 0 {
		return fmt.Errorf("scale must not be negative: %f", s.Scale)
	}
	if s.Scale == 0 {
		s.Scale = reference.Scale
	}
	if s.Width <= 0 {
		s.Width = reference.Width
	}

	return nil
}

// Colors decodes the palette. Index 0 is the color of the fastest escaping points.
func (s *Settings) Colors() []pixel.Color {
	colors := make([]pixel.Color, len(s.Palette))
	for i, hex := range s.Palette {
		colors[i] = hex.Color()
	}
	return colors
}

func (s *Settings) String() string {
	output := "\nJulia settings\n"
	output += fmt.Sprintf("Boundary: %f\n", s.Boundary)
	output += fmt.Sprintf("Constant: %f%+fi\n", s.ConstantReal, s.ConstantImaginary)
	output += fmt.Sprintf("File Name: %s\n", s.FileName)
	output += fmt.Sprintf("Height: %d\n", s.Height)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Offset: (%f, %f)\n", s.OffsetX, s.OffsetY)
	output += fmt.Sprintf("Palette: %v\n", s.Palette)
	output += fmt.Sprintf("Scale: %f\n", s.Scale)
	output += fmt.Sprintf("Width: %d\n", s.Width)
	return output
}
