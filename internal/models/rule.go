package models

// CatalogEntry describes how a known diagnostic category is reported
type CatalogEntry struct {
	Category    Category
	Template    string // may hold one %s placeholder, or be empty
	Blacklisted bool
}

// RuleSet is the ordered set of categories enabled for a run.
// It is built once by the loader and must not be modified afterwards.
type RuleSet struct {
	Name       string
	categories []Category
	index      map[Category]struct{}
}

// NewRuleSet builds a rule set from the given identifiers. Blank identifiers
// are dropped and duplicates keep their first position.
func NewRuleSet(name string, categories []Category) *RuleSet {
	rs := &RuleSet{
		Name:  name,
		index: make(map[Category]struct{}, len(categories)),
	}

	for _, c := range categories {
		if c == "" {
			continue
		}
		if _, seen := rs.index[c]; seen {
			continue
		}
		rs.index[c] = struct{}{}
		rs.categories = append(rs.categories, c)
	}

	return rs
}

// Contains reports whether the category is enabled
func (rs *RuleSet) Contains(c Category) bool {
	if rs == nil {
		return false
	}
	_, ok := rs.index[c]
	return ok
}

// Len returns the number of enabled categories
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.categories)
}

// Categories returns the enabled categories in document order
func (rs *RuleSet) Categories() []Category {
	if rs == nil {
		return nil
	}
	out := make([]Category, len(rs.categories))
	copy(out, rs.categories)
	return out
}
