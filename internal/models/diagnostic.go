package models

// Category identifies a class of compiler diagnostic (e.g. "UnknownClass")
type Category string

// RawRecord is a single diagnostic as reported by the compiler log
type RawRecord struct {
	Category Category
	File     string
	Line     int
	Detail   string // untrimmed, may span several lines
}

// CategoryGroup holds every record the log reported under one category
type CategoryGroup struct {
	Category Category
	Records  []RawRecord
}

// RawLog is the typed form of a CodeErrors.js log. Groups keep the order in
// which categories appear in the file.
type RawLog struct {
	Version string
	Groups  []CategoryGroup
}

// RecordCount returns the number of records across all groups
func (l *RawLog) RecordCount() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g.Records)
	}
	return n
}
