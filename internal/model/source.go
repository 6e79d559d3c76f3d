// Package model defines the data structures for coverage highlighting.
package model

// Path represents a file system path.
type Path string
