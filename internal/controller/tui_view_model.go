package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/covlight/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// viewModel is the Bubble Tea model for the interactive buffer viewer.
type viewModel struct {
	buf      *m.Buffer
	regions  []m.Region
	color    string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newViewModel(buf *m.Buffer, regions []m.Region, color string) viewModel {
	return viewModel{
		buf:     buf,
		regions: regions,
		color:   color,
	}
}

func (vm viewModel) Init() tea.Cmd {
	return nil
}

func (vm viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return vm.handleResize(msg), nil

	case tea.KeyMsg:
		return vm.handleKeyPress(msg)
	}

	return vm, nil
}

func (vm viewModel) handleResize(msg tea.WindowSizeMsg) viewModel {
	// Reserve one line for the title and one for the help footer.
	height := msg.Height - 2
	if height < 1 {
		height = 1
	}

	if !vm.ready {
		vm.viewport = viewport.New(msg.Width, height)
		vm.viewport.SetContent(renderBuffer(vm.buf))
		vm.ready = true
	} else {
		vm.viewport.Width = msg.Width
		vm.viewport.Height = height
	}

	return vm
}

func (vm viewModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		vm.quitting = true
		return vm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		vm.quitting = true
		return vm, tea.Quit

	case "h":
		vm.applyHighlights()
		vm.viewport.SetContent(renderBuffer(vm.buf))

		return vm, nil

	case "c":
		vm.buf.RemoveAllMarkers()
		vm.viewport.SetContent(renderBuffer(vm.buf))

		return vm, nil
	}

	var cmd tea.Cmd

	vm.viewport, cmd = vm.viewport.Update(msg)

	return vm, cmd
}

// applyHighlights rebuilds the marker set from the pipeline's regions,
// clearing first so repeated presses never duplicate markers.
func (vm viewModel) applyHighlights() {
	vm.buf.RemoveAllMarkers()

	for _, region := range vm.regions {
		vm.buf.CreateMarker(region, vm.color)
	}
}

func (vm viewModel) View() string {
	if vm.quitting {
		return ""
	}

	if !vm.ready {
		return "loading..."
	}

	title := titleStyle.Render(fmt.Sprintf("%s: %d uncovered line(s)",
		vm.buf.Path(), vm.buf.MarkerCount()))
	help := helpStyle.Render("h: highlight | c: clear | ↑/k ↓/j: scroll | q: quit")

	return fmt.Sprintf("%s\n%s\n%s", title, vm.viewport.View(), help)
}
