package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/covlight/internal/model"
)

var gutterStyle = lipgloss.NewStyle().Faint(true)

// renderBuffer paints the buffer line by line with a faint line-number
// gutter. Lines covered by a marker get that marker's background color.
func renderBuffer(buf *m.Buffer) string {
	var b strings.Builder

	content := buf.Contents()
	markers := buf.Markers()
	lineCount := buf.LineCount()

	width := len(fmt.Sprintf("%d", lineCount))
	if width < 3 {
		width = 3
	}

	for line := 1; line <= lineCount; line++ {
		region, ok := buf.LineRegion(line)
		if !ok {
			continue
		}

		text := string(content[region.Start:region.End])

		b.WriteString(gutterStyle.Render(fmt.Sprintf("%*d", width, line)))
		b.WriteByte(' ')

		if color, marked := markerColor(markers, region); marked {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color(color))
			b.WriteString(style.Render(text))
		} else {
			b.WriteString(text)
		}

		b.WriteByte('\n')
	}

	return b.String()
}

// markerColor finds a marker overlapping the line region. Empty regions
// (blank lines) match on position since they cannot overlap anything.
func markerColor(markers []m.Marker, line m.Region) (string, bool) {
	for _, marker := range markers {
		r := marker.Region

		if r.Start < line.End && r.End > line.Start {
			return marker.Color, true
		}

		if r.Start == r.End && r.Start >= line.Start && r.End <= line.End {
			return marker.Color, true
		}
	}

	return "", false
}
