package rules

import (
	"strings"

	"hphpa/internal/models"

	"github.com/hashicorp/go-hclog"
)

const placeholder = "%s"

// Classifier decides whether a raw diagnostic is reported and renders its message
type Classifier struct {
	catalog Catalog
	active  *models.RuleSet
	logger  hclog.Logger
}

// NewClassifier creates a classifier for the given catalog and active rules.
// A nil logger discards output.
func NewClassifier(catalog Catalog, active *models.RuleSet, logger hclog.Logger) *Classifier {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Classifier{
		catalog: catalog,
		active:  active,
		logger:  logger.Named("classifier"),
	}
}

// IsBlacklisted reports whether the catalog suppresses the category
// regardless of the active rules.
func (c *Classifier) IsBlacklisted(category models.Category) bool {
	entry, ok := c.catalog.Lookup(category)
	return ok && entry.Blacklisted
}

// Classify returns the violation for record, or false when it is suppressed
func (c *Classifier) Classify(record models.RawRecord) (models.Violation, bool) {
	entry, known := c.catalog.Lookup(record.Category)

	// Blacklist wins over explicit activation
	if known && entry.Blacklisted {
		c.logger.Trace("suppressed blacklisted record", "category", record.Category, "file", record.File, "line", record.Line)
		return models.Violation{}, false
	}

	if !c.active.Contains(record.Category) {
		c.logger.Trace("suppressed inactive record", "category", record.Category, "file", record.File, "line", record.Line)
		return models.Violation{}, false
	}

	return models.Violation{
		Message: RenderMessage(entry, known, record.Category, record.Detail),
		Source:  record.Category,
	}, true
}

// RenderMessage builds the message for a diagnostic. The trimmed detail
// replaces the template placeholder; without a template the message is
// "<category>: <detail>".
func RenderMessage(entry models.CatalogEntry, known bool, category models.Category, detail string) string {
	detail = strings.TrimSpace(detail)

	if !known || entry.Template == "" {
		return string(category) + ": " + detail
	}

	return strings.Replace(entry.Template, placeholder, detail, 1)
}
