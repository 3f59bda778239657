package report

import (
	"fmt"
	"io"

	"hphpa/internal/models"

	"github.com/fatih/color"
)

// Catalog lists the known diagnostic categories and how the ruleset treats them
func Catalog(w io.Writer, entries []models.CatalogEntry, active *models.RuleSet) {
	activeColor := color.New(color.FgGreen)
	blacklistColor := color.New(color.FgRed)
	inactiveColor := color.New(color.FgHiBlack)

	fmt.Fprintf(w, "%d known rules\n\n", len(entries))

	for _, entry := range entries {
		switch {
		case entry.Blacklisted:
			blacklistColor.Fprintf(w, "  %-12s", "blacklisted")
		case active.Contains(entry.Category):
			activeColor.Fprintf(w, "  %-12s", "active")
		default:
			inactiveColor.Fprintf(w, "  %-12s", "inactive")
		}

		fmt.Fprintf(w, "%-28s", entry.Category)
		if entry.Template != "" {
			fmt.Fprintf(w, " %s", entry.Template)
		}
		fmt.Fprintln(w)
	}
}
