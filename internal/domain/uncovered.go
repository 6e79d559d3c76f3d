// Package domain implements the coverage-to-highlight pipeline.
package domain

import (
	m "github.com/mouse-blink/covlight/internal/model"
)

// UncoveredLines returns the 1-based line numbers whose execution count
// is exactly zero, in ascending order. Lines without a coverage
// expectation (nil entries) are excluded.
func UncoveredLines(hits m.LineHits) []int {
	var lines []int

	for i, hit := range hits {
		if hit != nil && *hit == 0 {
			lines = append(lines, i+1)
		}
	}

	return lines
}

// ExecutableLines returns the number of lines carrying a coverage
// expectation.
func ExecutableLines(hits m.LineHits) int {
	count := 0

	for _, hit := range hits {
		if hit != nil {
			count++
		}
	}

	return count
}
