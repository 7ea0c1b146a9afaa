package misc

import (
	"errors"
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

// FileError is a failure on the output file. Action is the step that failed: create, write or close.
type FileError struct {
	Action   string
	FileName string
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("unable to %s file %s - %s", e.Action, e.FileName, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// FatalMessage is the line CheckFatal logs for err.
func FatalMessage(err error) string {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fmt.Sprintf("Could not %s %s, giving up: %s", fileErr.Action, fileErr.FileName, fileErr.Err)
	}
	return err.Error()
}

// CheckFatal logs err and exits with a non-zero status. It does nothing when err is nil.
func CheckFatal(err error, logger bslogger.Logger) {
	if err == nil {
		return
	}
	logger.Fatal(FatalMessage(err))
}
