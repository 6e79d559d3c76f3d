package controller

import (
	"bytes"
	"testing"

	m "github.com/mouse-blink/covlight/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

func TestSimpleUI_DisplayBuffer(t *testing.T) {
	ui, out := newTestSimpleUI()

	buf := m.NewBuffer("a.rb", []byte("def add\nend\n"))
	require.NoError(t, ui.DisplayBuffer(buf))

	assert.Contains(t, out.String(), "def add")
	assert.Contains(t, out.String(), "end")
}

func TestSimpleUI_DisplayNoCoverage(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplayNoCoverage("/proj/src/new.rb")

	assert.Contains(t, out.String(), "no coverage recorded for /proj/src/new.rb")
}

func TestSimpleUI_DisplayInteractive(t *testing.T) {
	ui, out := newTestSimpleUI()

	buf := m.NewBuffer("a.rb", []byte("only line\n"))
	require.NoError(t, ui.DisplayInteractive(buf, nil, "#ffcccc"))

	// Without a TTY the interactive view degrades to a one-shot render.
	assert.Contains(t, out.String(), "only line")
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, out := newTestSimpleUI()

	rows := []SummaryRow{
		{Source: "/proj/src/a.rb", Uncovered: 2, Executable: 10, Tracked: true},
		{Source: "/proj/src/b.rb", Tracked: false},
	}

	require.NoError(t, ui.DisplaySummary(rows))

	got := out.String()
	assert.Contains(t, got, "/proj/src/a.rb")
	assert.Contains(t, got, "2")
	assert.Contains(t, got, "10")
	assert.Contains(t, got, "-")
	// tablewriter renders footer cells uppercased.
	assert.Contains(t, got, "TOTAL FILES 2")
}
