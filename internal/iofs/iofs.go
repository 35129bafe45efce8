// Package iofs opens and creates sequence files with transparent
// gzip compression for paths ending in ".gz".
package iofs

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// IsZipped reports whether a path names a gzip-compressed file.
func IsZipped(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

type gzReader struct {
	*gzip.Reader
	file *os.File
}

func (r *gzReader) Close() error {
	err := r.Reader.Close()
	if ferr := r.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// Open opens a file for reading, gunzipping ".gz" paths on the fly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !IsZipped(path) {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzReader{Reader: zr, file: f}, nil
}

type gzWriter struct {
	*gzip.Writer
	file *os.File
}

func (w *gzWriter) Close() error {
	err := w.Writer.Close()
	if ferr := w.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// Create creates a file for writing, gzipping ".gz" paths on the
// fly. An existing file is truncated.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !IsZipped(path) {
		return f, nil
	}
	return &gzWriter{Writer: gzip.NewWriter(f), file: f}, nil
}
