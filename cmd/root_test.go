package cmd

import (
	"bytes"
	"testing"

	"github.com/mouse-blink/covlight/internal/domain"
	domainmocks "github.com/mouse-blink/covlight/internal/domain/mocks"
	m "github.com/mouse-blink/covlight/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_ShowsFileArgument(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Show", mock.MatchedBy(func(args domain.ShowArgs) bool {
		return args.Source == m.Path("lib/calc.rb") &&
			args.Color == domain.DefaultHighlightColor &&
			args.Report == m.Path("")
	})).Return(nil)

	cmd.SetArgs([]string{"lib/calc.rb"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestRootCmd_CustomColorAndReport(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Show", mock.MatchedBy(func(args domain.ShowArgs) bool {
		return args.Color == "#ccccff" &&
			args.Report == m.Path("build/.resultset.json")
	})).Return(nil)

	cmd.SetArgs([]string{"--color", "#ccccff", "--report", "build/.resultset.json", "lib/calc.rb"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestRootCmd_NoArgsShowsHelp(t *testing.T) {
	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "covlight")
}

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	colorFlag := cmd.PersistentFlags().Lookup("color")
	require.NotNil(t, colorFlag)
	assert.Equal(t, "#ffcccc", colorFlag.DefValue)

	reportFlag := cmd.PersistentFlags().Lookup("report")
	require.NotNil(t, reportFlag)
	assert.Empty(t, reportFlag.DefValue)
}
