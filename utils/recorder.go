package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// GenerationRecord is one telemetry row
type GenerationRecord struct {
	Generation int `csv:"generation"`
	Population int `csv:"population"`
	Births     int `csv:"births"`
	Deaths     int `csv:"deaths"`
}

// Recorder writes per-generation records as CSV, with a header before the first row
type Recorder struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewRecorder wraps w. The caller keeps ownership of w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{out: w}
}

// CreateRecorder creates the file at path, including parent directories.
// Returns nil if path is empty (recording disabled).
func CreateRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, "[CreateRecorder] failed to create directory for %+v", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[CreateRecorder] failed to create %+v", path)
	}
	return &Recorder{out: f, closer: f}, nil
}

// Write appends one record
func (r *Recorder) Write(rec GenerationRecord) error {
	if r == nil {
		return nil
	}

	records := []GenerationRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.out); err != nil {
			return errors.Wrap(err, "[Recorder.Write] failed to write telemetry")
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
		return errors.Wrap(err, "[Recorder.Write] failed to write telemetry")
	}
	return nil
}

// Close closes the underlying file if the recorder opened it
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
