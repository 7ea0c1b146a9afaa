package misc

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// WriteFile creates or truncates fileName and hands a buffered writer to write.
// The buffer is flushed and the file closed before returning, whether or not write succeeded.
// Failures after the name check are returned as *FileError.
func WriteFile(fileName string, write func(w io.Writer) error) (err error) {
	if fileName == "" {
		return errors.New("no filename supplied")
	}
	// create/truncate file for writing
	file, err := os.Create(fileName)
	if err != nil {
		return &FileError{Action: "create", FileName: fileName, Err: err}
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil && err == nil {
			err = &FileError{Action: "close", FileName: fileName, Err: closeErr}
		}
	}()

	buffered := bufio.NewWriter(file)
	err = write(buffered)
	if err != nil {
		return &FileError{Action: "write", FileName: fileName, Err: err}
	}
	err = buffered.Flush()
	if err != nil {
		return &FileError{Action: "write", FileName: fileName, Err: err}
	}

	return nil
}
