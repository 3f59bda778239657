package models

import "encoding/json"

// Violation is one rendered, non-suppressed diagnostic
type Violation struct {
	Message string   `json:"message"`
	Source  Category `json:"source"`
}

// LineViolations groups the violations reported for a single line
type LineViolations struct {
	Line       int         `json:"line"`
	Violations []Violation `json:"violations"`
}

// FileViolations groups the violations reported for a single file
type FileViolations struct {
	File  string           `json:"file"`
	Lines []LineViolations `json:"lines"`
}

// ViolationIndex maps file -> line -> violations. Files, lines within a file,
// and violations within a line all keep insertion order.
type ViolationIndex struct {
	files  []*fileEntry
	byFile map[string]*fileEntry
	total  int
}

type fileEntry struct {
	name   string
	lines  []*lineEntry
	byLine map[int]*lineEntry
}

type lineEntry struct {
	line       int
	violations []Violation
}

// NewViolationIndex creates an empty index
func NewViolationIndex() *ViolationIndex {
	return &ViolationIndex{
		byFile: make(map[string]*fileEntry),
	}
}

// Add appends a violation to file:line, creating the file and line entries
// on first use.
func (ix *ViolationIndex) Add(file string, line int, v Violation) {
	f, ok := ix.byFile[file]
	if !ok {
		f = &fileEntry{name: file, byLine: make(map[int]*lineEntry)}
		ix.byFile[file] = f
		ix.files = append(ix.files, f)
	}

	l, ok := f.byLine[line]
	if !ok {
		l = &lineEntry{line: line}
		f.byLine[line] = l
		f.lines = append(f.lines, l)
	}

	l.violations = append(l.violations, v)
	ix.total++
}

// Count returns the total number of violations
func (ix *ViolationIndex) Count() int {
	return ix.total
}

// FileCount returns the number of files with at least one violation
func (ix *ViolationIndex) FileCount() int {
	return len(ix.files)
}

// Get returns the violations recorded for file:line, or nil
func (ix *ViolationIndex) Get(file string, line int) []Violation {
	f, ok := ix.byFile[file]
	if !ok {
		return nil
	}
	l, ok := f.byLine[line]
	if !ok {
		return nil
	}
	out := make([]Violation, len(l.violations))
	copy(out, l.violations)
	return out
}

// HasFile reports whether any violation was recorded for file
func (ix *ViolationIndex) HasFile(file string) bool {
	_, ok := ix.byFile[file]
	return ok
}

// Files returns a snapshot of the index in insertion order
func (ix *ViolationIndex) Files() []FileViolations {
	out := make([]FileViolations, 0, len(ix.files))
	for _, f := range ix.files {
		fv := FileViolations{File: f.name, Lines: make([]LineViolations, 0, len(f.lines))}
		for _, l := range f.lines {
			vs := make([]Violation, len(l.violations))
			copy(vs, l.violations)
			fv.Lines = append(fv.Lines, LineViolations{Line: l.line, Violations: vs})
		}
		out = append(out, fv)
	}
	return out
}

// ExitCode returns the process exit status for this result
func (ix *ViolationIndex) ExitCode() int {
	if ix.total > 0 {
		return 1
	}
	return 0
}

// ViolationSummary contains aggregate statistics about the index
type ViolationSummary struct {
	TotalViolations    int              `json:"total_violations"`
	FilesWithViolation int              `json:"files_with_violations"`
	ViolationsBySource map[Category]int `json:"violations_by_source"`
}

// Summary computes aggregate statistics
func (ix *ViolationIndex) Summary() ViolationSummary {
	s := ViolationSummary{
		TotalViolations:    ix.total,
		FilesWithViolation: len(ix.files),
		ViolationsBySource: make(map[Category]int),
	}
	for _, f := range ix.files {
		for _, l := range f.lines {
			for _, v := range l.violations {
				s.ViolationsBySource[v.Source]++
			}
		}
	}
	return s
}

// MarshalJSON encodes the index as ordered arrays so that report order
// survives serialization.
func (ix *ViolationIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(ix.Files())
}
