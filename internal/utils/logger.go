package utils

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// NewLogger returns the tool's logger. Diagnostics lowers the level to debug.
func NewLogger(w io.Writer, diagnostics bool) hclog.Logger {
	level := hclog.Warn
	if diagnostics {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "hphpa",
		Level:  level,
		Output: w,
	})
}
