// Package adapter contains filesystem adapters for the covlight CLI.
package adapter

import (
	"errors"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/covlight/internal/model"
)

// ErrReportNotFound is returned when no coverage report exists in the
// ancestry of the starting directory, or at an explicitly given path.
var ErrReportNotFound = errors.New("coverage report not found")

// reportRelPath is the well-known location of the report relative to a
// project root, as written by the coverage tool.
var reportRelPath = filepath.Join("coverage", ".resultset.json")

// maxTraversalDepth bounds the upward walk so pathological path inputs
// cannot loop forever.
const maxTraversalDepth = 64

// ReportLocator finds the coverage report relevant to a source file.
type ReportLocator interface {
	// FindReportPath walks parent directories from startDir upward until
	// coverage/.resultset.json exists, returning its full path.
	FindReportPath(startDir m.Path) (m.Path, error)
}

// LocalReportLocator implements ReportLocator against the local filesystem.
type LocalReportLocator struct{}

// NewLocalReportLocator constructs a LocalReportLocator.
func NewLocalReportLocator() *LocalReportLocator {
	return &LocalReportLocator{}
}

// FindReportPath checks each candidate directory from startDir up to the
// filesystem root for the well-known report path. The walk is capped at
// maxTraversalDepth parent hops.
func (l *LocalReportLocator) FindReportPath(startDir m.Path) (m.Path, error) {
	dir, err := filepath.Abs(string(startDir))
	if err != nil {
		return "", err
	}

	for range maxTraversalDepth {
		candidate := filepath.Join(dir, reportRelPath)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return m.Path(candidate), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrReportNotFound
		}

		dir = parent
	}

	return "", ErrReportNotFound
}
