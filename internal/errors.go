package internal

import "fmt"

// TranscriptError represents errors accessing transcript or output files
type TranscriptError struct {
	Path string
	Op   string // "read", "write"
	Err  error
}

func (e *TranscriptError) Error() string {
	return fmt.Sprintf("transcript error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TranscriptError) Unwrap() error {
	return e.Err
}

// ArchiveError represents errors accessing the run archive
type ArchiveError struct {
	Path string
	Op   string // "open", "save", "query"
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
