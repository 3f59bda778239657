package rules

import (
	"sort"

	"hphpa/internal/models"
)

// Catalog resolves a diagnostic category to its reporting entry
type Catalog interface {
	Lookup(category models.Category) (models.CatalogEntry, bool)
}

// Categories that are environment-dependent noise (unresolved includes,
// classes loaded dynamically) and never reported.
var blacklist = map[models.Category]bool{
	"BadPHPIncludeFile":      true,
	"PHPIncludeFileNotFound": true,
	"UnknownBaseClass":       true,
	"UnknownClass":           true,
	"UnknownFunction":        true,
}

var templates = map[models.Category]string{
	"BadPHPIncludeFile":           "Bad include: %s",
	"PHPIncludeFileNotFound":      "Include not found: %s",
	"UseEvaluation":               "Usage of eval()",
	"UseUndeclaredVariable":       `Variable "%s" is not declared`,
	"UseUndeclaredGlobalVariable": `Global variable "%s" is not declared`,
	"UseUndeclaredConstant":       `Constant "%s" is not declared`,
	"UnknownClass":                `Class "%s" is unknown`,
	"UnknownBaseClass":            `Base class "%s" is unknown`,
	"UnknownObjectMethod":         `Method "%s" is unknown`,
	"InvalidMagicMethod":          `Magic method "%s" is invalid`,
	"UnknownFunction":             `Unknown function "%s"`,
	"BadConstructorCall":          "Bad call to constructor: %s",
	"DeclaredVariableTwice":       "Variable is declared twice: %s",
	"DeclaredConstantTwice":       "Constant is declared twice: %s",
	"BadDefine":                   "Bad define: %s",
	"RequiredAfterOptionalParam":  "Required parameters after optional parameters: %s",
	"RedundantParameter":          "Redundant parameter: %s",
	"TooFewArgument":              "Too few arguments in function or method call: %s",
	"TooManyArgument":             "Too many arguments in function or method call: %s",
	"BadArgumentType":             "Bad argument type: %s",
	"StatementHasNoEffect":        `Statement "%s" has no effect`,
	"UseVoidReturn":               `Usage of void return value from "%s"`,
	"MissingObjectContext":        "Trying to use $this in static context",
	"MoreThanOneDefault":          "More than one default in switch statement",
	"InvalidArrayElement":         "Invalid array element: %s",
	"InvalidDerivation":           "Invalid inheritance: %s",
	"InvalidOverride":             "Invalid override: %s",
	"ReassignThis":                "Reassignment of $this",
	"MissingAbstractMethodImpl":   "Implementation of abstract methods missing: %s",
	"BadPassByReference":          "Bad pass-by-reference: %s",
	"ConditionalClassLoading":     `Class "%s" is conditionally loaded`,
	"GotoUndefLabel":              `GOTO to invalid label "%s"`,
	"GotoInvalidBlock":            "GOTO to invalid block: %s",
	"AbstractProperty":            `Attribute "%s" is abstract`,
	"UnknownTrait":                `Trait "%s" is unknown`,
	"MethodInMultipleTraits":      `Method "%s" is declared in multiple traits`,
	"UnknownTraitMethod":          `Trait method "%s" is unknown`,
	"InvalidAccessModifier":       `Access modified "%s" is invalid`,
	"CyclicDependentTraits":       "Cyclic dependency between traits: %s",
	"InvalidTraitStatement":       "Invalid trait statement: %s",
	"RedeclaredTrait":             `Trait "%s" is declared twice`,
	"InvalidInstantiation":        "Invalid instantiation: %s",
}

type staticCatalog struct{}

// DefaultCatalog returns the built-in catalog of HipHop diagnostic categories
func DefaultCatalog() Catalog {
	return staticCatalog{}
}

func (staticCatalog) Lookup(category models.Category) (models.CatalogEntry, bool) {
	tmpl, ok := templates[category]
	if !ok {
		return models.CatalogEntry{}, false
	}
	return models.CatalogEntry{
		Category:    category,
		Template:    tmpl,
		Blacklisted: blacklist[category],
	}, true
}

// IsBlacklisted reports whether a category is always suppressed
func IsBlacklisted(category models.Category) bool {
	return blacklist[category]
}

// Entries returns every built-in catalog entry sorted by category
func Entries() []models.CatalogEntry {
	entries := make([]models.CatalogEntry, 0, len(templates))
	for category := range templates {
		entry, _ := staticCatalog{}.Lookup(category)
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Category < entries[j].Category
	})
	return entries
}
