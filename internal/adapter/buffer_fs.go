package adapter

import (
	"os"
	"path/filepath"

	m "github.com/mouse-blink/covlight/internal/model"
)

// BufferFS loads source files into buffers. It hides direct os access so
// the workflow logic can be tested without touching the disk.
type BufferFS interface {
	// Abs converts path to its absolute form. Coverage reports key files
	// by absolute path, so lookups go through this first.
	Abs(path m.Path) (m.Path, error)

	// Open reads the file at path into a fresh Buffer.
	Open(path m.Path) (*m.Buffer, error)
}

// LocalBufferFS implements BufferFS against the local filesystem.
type LocalBufferFS struct{}

// NewLocalBufferFS constructs a LocalBufferFS.
func NewLocalBufferFS() *LocalBufferFS {
	return &LocalBufferFS{}
}

// Abs resolves path against the current working directory.
func (a *LocalBufferFS) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// Open loads file contents from disk into a Buffer.
func (a *LocalBufferFS) Open(path m.Path) (*m.Buffer, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	return m.NewBuffer(path, content), nil
}
