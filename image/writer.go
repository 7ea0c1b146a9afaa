package image

import (
	"JuliaRender/misc"
	"JuliaRender/pixel"
	"fmt"
	"image/png"
	"io"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/disintegration/imaging"
)

// Writer saves a finished pixel buffer as an 8-bit PNG.
type Writer struct {
	compression png.CompressionLevel
	fileName    string
	logger      bslogger.Logger
}

func NewWriter(fileName string, logger bslogger.Logger) Writer {
	return Writer{
		compression: png.DefaultCompression,
		fileName:    fileName,
		logger:      logger,
	}
}

func (w *Writer) FileName() string {
	return w.fileName
}

// Encode serializes the buffer as PNG to out.
func (w *Writer) Encode(out io.Writer, buffer *pixel.Buffer) error {
	img, err := buffer.Image()
	if err != nil {
		return err
	}
	err = imaging.Encode(out, img, imaging.PNG, imaging.PNGCompressionLevel(w.compression))
	if err != nil {
		return fmt.Errorf("unable to encode png - %w", err)
	}
	return nil
}

// Save creates or overwrites the destination file with the encoded buffer.
func (w *Writer) Save(buffer *pixel.Buffer) error {
	w.logger.Debugf("Saving %s to %s", buffer.String(), w.fileName)
	err := misc.WriteFile(w.fileName, func(out io.Writer) error {
		return w.Encode(out, buffer)
	})
	if err != nil {
		return err
	}
	w.logger.Infof("Saved image to %s", w.fileName)
	return nil
}
