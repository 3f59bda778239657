/*
 Version banner printed at the start of every run. Used in cmd/root.go
*/
package utils

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Version is overridden at build time with -ldflags "-X hphpa/internal/utils.Version=..."
var Version = "dev"

// VersionString returns the tool name and version
func VersionString() string {
	return fmt.Sprintf("hphpa %s", Version)
}

func DisplayBanner(w io.Writer) {
	color.New(color.FgMagenta, color.Bold).Fprintln(w, VersionString())
	fmt.Fprintln(w, "HipHop diagnostic log analyzer")
	fmt.Fprintln(w, "------------------------------")
	fmt.Fprintln(w)
}
