package main

import (
	"JuliaRender/julia"
	"JuliaRender/misc"
	"JuliaRender/render"
	"encoding/json"
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/alecthomas/kong"
)

type cli struct {
	DumpSettings bool `help:"Print the render settings as JSON and exit"`
	Verbose      bool `short:"v" help:"Log progress for every row"`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("julia"),
		kong.Description("Render the Julia set for c = -0.7269 + 0.1889i to output.png"),
	)
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	settings := julia.DefaultSettings()
	if args.DumpSettings {
		bytes, err := json.MarshalIndent(settings, "", "  ")
		misc.CheckFatal(err, logger)
		fmt.Println(string(bytes))
		return
	}

	renderer, err := render.NewRenderer(settings, args.Verbose)
	misc.CheckFatal(err, logger)
	logger.Debug(settings.String())

	logger.Info("Starting render")
	misc.CheckFatal(renderer.Run(), logger)
	logger.Info("Shutting down")
}
