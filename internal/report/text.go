package report

import (
	"fmt"
	"io"

	"hphpa/internal/models"

	"github.com/fatih/color"
)

// Text writes the console listing: one block per file, one row per violation
func Text(w io.Writer, index *models.ViolationIndex) error {
	fileColor := color.New(color.FgCyan, color.Bold)
	lineColor := color.New(color.FgYellow)
	sourceColor := color.New(color.FgHiBlack)

	for _, file := range index.Files() {
		if _, err := fileColor.Fprintln(w, file.File); err != nil {
			return err
		}

		for _, line := range file.Lines {
			for _, v := range line.Violations {
				lineColor.Fprintf(w, "  %-5d ", line.Line)
				fmt.Fprintf(w, "%s ", v.Message)
				if _, err := sourceColor.Fprintf(w, "(%s)\n", v.Source); err != nil {
					return err
				}
			}
		}

		fmt.Fprintln(w)
	}

	return nil
}

// Summary returns the closing line of a run, e.g.
// "Found 3 violations in 1 file."
func Summary(index *models.ViolationIndex) string {
	n := index.Count()
	files := index.FileCount()
	return fmt.Sprintf("Found %d violation%s in %d file%s.", n, plural(n), files, plural(files))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
