package julia

import (
	"JuliaRender/misc"
	"JuliaRender/pixel"
	"JuliaRender/task"
)

// Julia evaluates the escape time of the map z -> z² + c for a fixed c.
type Julia struct {
	palette  []pixel.Color
	settings Settings
}

func NewJulia(settings Settings) (Julia, error) {
	err := settings.Verify()
	if err != nil {
		return Julia{}, err
	}
	julia := Julia{
		palette:  settings.Colors(),
		settings: settings,
	}
	return julia, nil
}

func (j *Julia) Settings() Settings {
	return j.settings
}

func (j *Julia) Palette() []pixel.Color {
	return j.palette
}

// ConvertPixelCoordinateToComplexCoordinate maps a pixel to its point on the plane.
// Columns [0, width) span the real window centered on OffsetX, rows [0, height) span the imaginary window
// centered on OffsetY, both Scale wide.
func (j *Julia) ConvertPixelCoordinateToComplexCoordinate(c task.Coordinate) (float64, float64) {
	half := j.settings.Scale / 2
	x := misc.Map(float64(c.Column), 0, float64(j.settings.Width), -half+j.settings.OffsetX, half+j.settings.OffsetX)
	y := misc.Map(float64(c.Row), 0, float64(j.settings.Height), -half+j.settings.OffsetY, half+j.settings.OffsetY)
	return x, y
}

// EscapeTime iterates from z = x + yi and returns the index of the iteration whose result left the boundary.
// Points that never leave report MaxIterations - 1, the index of the last iteration run.
func (j *Julia) EscapeTime(x float64, y float64) int {
	za, zb := x, y
	ca, cb := j.settings.ConstantReal, j.settings.ConstantImaginary

	iteration := 0
	for n := 0; n < j.settings.MaxIterations; n++ {
		iteration = n
		za, zb = za*za-zb*zb+ca, 2*za*zb+cb
		if za*za+zb*zb > j.settings.Boundary {
			break
		}
	}
	return iteration
}

// GetColorIndex buckets an iteration count into the palette. Count 0 lands on the first entry and
// MaxIterations - 1 on the last.
func (j *Julia) GetColorIndex(iteration int) int {
	last := len(j.palette) - 1
	return misc.MapIndex(float64(iteration), 0, float64(j.settings.MaxIterations-1), 0, float64(last))
}

func (j *Julia) GetColor(iteration int) pixel.Color {
	return j.palette[j.GetColorIndex(iteration)]
}

// CalcPixelColor runs the whole evaluation for one pixel.
func (j *Julia) CalcPixelColor(c task.Coordinate) pixel.Color {
	x, y := j.ConvertPixelCoordinateToComplexCoordinate(c)
	return j.GetColor(j.EscapeTime(x, y))
}
