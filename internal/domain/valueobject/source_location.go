package valueobject

import "fmt"

// SourceLocation points at the line a declaration was extracted from.
// Paths are package-relative, the way the upstream parser reports them.
type SourceLocation struct {
	Path string `json:"path" yaml:"path"`
	Line int    `json:"line" yaml:"line"`
}

// NewSourceLocation creates a SourceLocation with validation.
func NewSourceLocation(path string, line int) (SourceLocation, error) {
	if path == "" {
		return SourceLocation{}, fmt.Errorf("source location requires a path")
	}
	if line < 1 {
		return SourceLocation{}, fmt.Errorf("source location line must be >= 1, got %d", line)
	}
	return SourceLocation{Path: path, Line: line}, nil
}

// String returns the conventional path:line rendering.
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d", l.Path, l.Line)
}
