package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	m "github.com/mouse-blink/covlight/internal/model"
)

// ErrMalformedReport is returned when the report file is not valid JSON.
var ErrMalformedReport = errors.New("malformed coverage report")

// ErrPathNotInReport is returned when the report parses but carries no
// entry for the requested source file.
var ErrPathNotInReport = errors.New("source file not present in coverage report")

// ReportStore reads coverage reports and resolves per-file line hits.
type ReportStore interface {
	// LoadReport reads and parses the report at path. The report is
	// re-read on every call; nothing is cached.
	LoadReport(path m.Path) (m.ResultSet, error)

	// LinesFor returns the per-line execution counts recorded for the
	// given source file, looking across all frameworks in the report.
	LinesFor(rs m.ResultSet, source m.Path) (m.LineHits, error)
}

// LocalReportStore implements ReportStore against the local filesystem.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// LoadReport reads the full report file and parses it as JSON.
func (s *LocalReportStore) LoadReport(path m.Path) (m.ResultSet, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, path)
		}

		return nil, err
	}

	var rs m.ResultSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}

	return rs, nil
}

// LinesFor resolves framework -> coverage -> source -> lines. Any
// framework entry containing the exact source path serves the lookup;
// frameworks are visited in sorted name order so repeated reads of a
// multi-framework report resolve identically.
func (s *LocalReportStore) LinesFor(rs m.ResultSet, source m.Path) (m.LineHits, error) {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if file, ok := rs[name].Coverage[string(source)]; ok {
			return file.Lines, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrPathNotInReport, source)
}
