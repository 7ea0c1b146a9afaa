package render

import (
	"JuliaRender/image"
	"JuliaRender/julia"
	"JuliaRender/pixel"
	"JuliaRender/task"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

// Renderer evaluates every pixel of one image in row-major order and writes the result out.
type Renderer struct {
	julia  julia.Julia
	logger bslogger.Logger
	writer image.Writer
}

// NewRenderer verifies the settings and prepares the evaluator and writer. Verbose enables per-row logging.
func NewRenderer(settings julia.Settings, verbose bool) (Renderer, error) {
	j, err := julia.NewJulia(settings)
	if err != nil {
		return Renderer{}, err
	}

	verbosity := bslogger.Normal
	if verbose {
		verbosity = bslogger.All
	}
	logger := bslogger.NewLogger("Renderer", verbosity, nil)

	renderer := Renderer{
		julia:  j,
		logger: logger,
		writer: image.NewWriter(j.Settings().FileName, bslogger.NewLogger("ImageWriter", verbosity, nil)),
	}
	return renderer, nil
}

func (r *Renderer) Julia() *julia.Julia {
	return &r.julia
}

// Evaluate computes the color of every pixel, top row first.
func (r *Renderer) Evaluate() *pixel.Buffer {
	settings := r.julia.Settings()
	r.logger.Infof("Evaluating %dx%d pixels", settings.Width, settings.Height)

	var startTime = time.Now()
	todo := task.NewTask(settings.Width, settings.Height)
	todo.AddTasksForImage()

	for !todo.Done() {
		coordinate, err := todo.GetNextTask()
		if err != nil {
			break
		}
		todo.AddResult(r.julia.CalcPixelColor(coordinate))

		if coordinate.Column == settings.Width-1 {
			r.logger.Debugf("Finished row %d/%d", coordinate.Row+1, settings.Height)
		}
	}

	r.logger.Infof("Done evaluating %d pixels in %s", todo.Results.Len(), time.Since(startTime))
	return todo.Results
}

// Run evaluates the image and saves it. The only error is a failure to write the file.
func (r *Renderer) Run() error {
	r.logger.Infof("Loaded color palette with %d colors", len(r.julia.Palette()))

	buffer := r.Evaluate()
	r.logger.Infof("Writing %s", r.writer.FileName())

	var startTime = time.Now()
	err := r.writer.Save(buffer)
	if err != nil {
		return err
	}
	r.logger.Debugf("Done saving in %s", time.Since(startTime))
	return nil
}
