package model

// LineHits holds per-line execution counts for one source file.
// Index i corresponds to 1-based source line i+1. A nil entry means the
// line carries no coverage expectation (comment, blank line, etc).
type LineHits []*int

// FileCoverage is the coverage record for a single source file.
type FileCoverage struct {
	Lines LineHits `json:"lines"`
}

// FrameworkResult is the coverage produced by one test framework run.
type FrameworkResult struct {
	Coverage map[string]FileCoverage `json:"coverage"`
}

// ResultSet is a parsed .resultset.json report: framework name to its
// per-file coverage. Reconstructed fresh on every read, never cached.
type ResultSet map[string]FrameworkResult
