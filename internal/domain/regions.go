package domain

import (
	m "github.com/mouse-blink/covlight/internal/model"
)

// LinesToRegions converts 1-based line numbers into text regions within
// the buffer's current contents. Line numbers beyond the buffer's line
// count are skipped, so highlighting stays best-effort when the source
// has changed since the report was generated.
func LinesToRegions(buf *m.Buffer, lines []int) []m.Region {
	regions := make([]m.Region, 0, len(lines))

	for _, line := range lines {
		if region, ok := buf.LineRegion(line); ok {
			regions = append(regions, region)
		}
	}

	return regions
}
