package textio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"
)

// ErrFileNotFound is returned by ReadFile when the file can not be accessed.
var ErrFileNotFound = errors.New("file not found")

// FileExists reports whether the file at path can be opened for reading.
func FileExists(path string) bool {
	fp, err := os.Open(path)
	if err != nil {
		return false
	}

	_ = fp.Close()
	return true
}

// RequireFile returns a descriptive error if the file at path can not be
// opened. Relative paths are resolved against the working directory, which
// is the usual reason for a missing data file.
func RequireFile(path string) error {
	fp, err := os.Open(path)
	if err == nil {
		return fp.Close()
	}

	wd, _ := os.Getwd()

	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(
			"%w: can not access %q from working directory %q, "+
				"the program is expected to run from the directory containing the data: %w",
			ErrFileNotFound, path, wd, err)
	}

	return fmt.Errorf("open %q: %w", path, err)
}

// ReadFile opens the file at path and decodes it using read.
func ReadFile[T any](path string, read func(r io.Reader) (T, error)) (T, error) {
	var zero T

	if err := RequireFile(path); err != nil {
		return zero, err
	}

	fp, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("open %q: %w", path, err)
	}

	defer fp.Close()

	startTime := time.Now()

	value, err := read(fp)
	if err != nil {
		return zero, fmt.Errorf("read %q: %w", path, err)
	}

	slog.Debug(
		"Loaded file",
		slog.String("path", path),
		slog.Duration("duration", time.Since(startTime)),
	)

	return value, nil
}
