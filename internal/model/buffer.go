package model

// Region is a contiguous [Start, End) span of buffer text. For a full
// line the span runs from line start to line end, excluding the line
// terminator (and a preceding carriage return).
type Region struct {
	Start int
	End   int
}

// MarkerID identifies a single marker within a buffer.
type MarkerID uint

// Marker is an ephemeral visual annotation over a Region. Markers are
// owned by the live buffer's display state and are never persisted.
type Marker struct {
	ID     MarkerID
	Region Region
	Color  string
}

// Buffer is an in-memory text buffer with its display-state marker set.
type Buffer struct {
	path        Path
	content     []byte
	lineOffsets []int // start offset of each line
	markers     []Marker
	nextMarker  MarkerID
}

// NewBuffer creates a Buffer over the given contents and indexes its lines.
func NewBuffer(path Path, content []byte) *Buffer {
	b := &Buffer{
		path:       path,
		content:    content,
		nextMarker: 1,
	}

	b.lineOffsets = append(b.lineOffsets, 0)
	for i, c := range content {
		if c == '\n' && i+1 < len(content) {
			b.lineOffsets = append(b.lineOffsets, i+1)
		}
	}

	return b
}

// Path returns the path of the file backing this buffer.
func (b *Buffer) Path() Path {
	return b.path
}

// Contents returns the raw buffer contents.
func (b *Buffer) Contents() []byte {
	return b.content
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	if len(b.content) == 0 {
		return 0
	}

	return len(b.lineOffsets)
}

// LineRegion returns the region spanning the given 1-based line, from
// line start to line end excluding the terminator. The second return
// value is false when the line number is out of range.
func (b *Buffer) LineRegion(line int) (Region, bool) {
	if line < 1 || line > b.LineCount() {
		return Region{}, false
	}

	start := b.lineOffsets[line-1]

	end := len(b.content)
	if line < len(b.lineOffsets) {
		end = b.lineOffsets[line] - 1 // strip '\n'
	} else if end > start && b.content[end-1] == '\n' {
		end--
	}

	if end > start && b.content[end-1] == '\r' {
		end--
	}

	return Region{Start: start, End: end}, true
}

// CreateMarker adds a marker over region with the given color and
// returns its id.
func (b *Buffer) CreateMarker(region Region, color string) MarkerID {
	id := b.nextMarker
	b.nextMarker++

	b.markers = append(b.markers, Marker{ID: id, Region: region, Color: color})

	return id
}

// Markers returns the buffer's current marker set.
func (b *Buffer) Markers() []Marker {
	return b.markers
}

// MarkerCount returns the number of markers currently in the buffer.
func (b *Buffer) MarkerCount() int {
	return len(b.markers)
}

// RemoveAllMarkers drops every marker from the buffer.
func (b *Buffer) RemoveAllMarkers() {
	b.markers = nil
}
