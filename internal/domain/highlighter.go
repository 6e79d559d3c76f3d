package domain

import (
	m "github.com/mouse-blink/covlight/internal/model"
)

// DefaultHighlightColor is the background painted over uncovered lines
// unless the caller picks another color.
const DefaultHighlightColor = "#ffcccc"

// Overlay is the marker surface of a display host. *model.Buffer
// satisfies it; keeping the pipeline against this interface leaves the
// core stages testable without a live display.
type Overlay interface {
	CreateMarker(region m.Region, color string) m.MarkerID
	RemoveAllMarkers()
}

// ApplyOverlays removes every pre-existing marker, then creates one
// marker per region painting its background with color. Clearing first
// keeps repeated invocations idempotent and leak-free.
func ApplyOverlays(o Overlay, regions []m.Region, color string) {
	o.RemoveAllMarkers()

	for _, region := range regions {
		o.CreateMarker(region, color)
	}
}

// ClearOverlays removes all markers from the overlay surface.
func ClearOverlays(o Overlay) {
	o.RemoveAllMarkers()
}
