package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/covlight/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minitestReport = `{"Minitest":{"coverage":{"/proj/src/a.rb":{"lines":[1,0,null,0]}}}}`

func TestLocalReportStore_LoadReport(t *testing.T) {
	store := NewLocalReportStore()

	t.Run("parses a well-formed report", func(t *testing.T) {
		path := writeTempReport(t, minitestReport)

		rs, err := store.LoadReport(m.Path(path))
		require.NoError(t, err)

		require.Contains(t, rs, "Minitest")
		assert.Contains(t, rs["Minitest"].Coverage, "/proj/src/a.rb")
	})

	t.Run("missing file yields ErrReportNotFound", func(t *testing.T) {
		_, err := store.LoadReport(m.Path(filepath.Join(t.TempDir(), "absent.json")))

		assert.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("invalid JSON yields ErrMalformedReport", func(t *testing.T) {
		path := writeTempReport(t, `{"Minitest":`)

		_, err := store.LoadReport(m.Path(path))

		assert.ErrorIs(t, err, ErrMalformedReport)
	})
}

func TestLocalReportStore_LinesFor(t *testing.T) {
	store := NewLocalReportStore()

	rs, err := store.LoadReport(m.Path(writeTempReport(t, minitestReport)))
	require.NoError(t, err)

	t.Run("returns line hits for a covered file", func(t *testing.T) {
		hits, err := store.LinesFor(rs, "/proj/src/a.rb")
		require.NoError(t, err)

		require.Len(t, hits, 4)
		assert.Equal(t, 1, *hits[0])
		assert.Equal(t, 0, *hits[1])
		assert.Nil(t, hits[2])
		assert.Equal(t, 0, *hits[3])
	})

	t.Run("unknown file yields ErrPathNotInReport", func(t *testing.T) {
		_, err := store.LinesFor(rs, "/proj/src/missing.rb")

		assert.ErrorIs(t, err, ErrPathNotInReport)
	})

	t.Run("any framework containing the file serves the lookup", func(t *testing.T) {
		multi := `{
			"RSpec":{"coverage":{"/proj/spec_helper.rb":{"lines":[1]}}},
			"Minitest":{"coverage":{"/proj/src/a.rb":{"lines":[0]}}}
		}`

		rs, err := store.LoadReport(m.Path(writeTempReport(t, multi)))
		require.NoError(t, err)

		hits, err := store.LinesFor(rs, "/proj/src/a.rb")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, 0, *hits[0])

		hits, err = store.LinesFor(rs, "/proj/spec_helper.rb")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, 1, *hits[0])
	})
}

func writeTempReport(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".resultset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
