package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRuleSet(t *testing.T) {
	tests := []struct {
		name  string
		input []Category
		want  []Category
	}{
		{
			name:  "keeps order",
			input: []Category{"B", "A", "C"},
			want:  []Category{"B", "A", "C"},
		},
		{
			name:  "drops duplicates after first",
			input: []Category{"A", "B", "A"},
			want:  []Category{"A", "B"},
		},
		{
			name:  "drops blanks",
			input: []Category{"", "A", ""},
			want:  []Category{"A"},
		},
		{
			name:  "empty",
			input: nil,
			want:  []Category{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := NewRuleSet("test", tt.input)
			assert.Equal(t, len(tt.want), rs.Len())
			assert.Equal(t, tt.want, append([]Category{}, rs.Categories()...))
		})
	}
}

func TestRuleSet_Contains(t *testing.T) {
	rs := NewRuleSet("test", []Category{"UseEvaluation"})

	assert.True(t, rs.Contains("UseEvaluation"))
	assert.False(t, rs.Contains("UnknownClass"))

	var nilSet *RuleSet
	assert.False(t, nilSet.Contains("UseEvaluation"))
	assert.Equal(t, 0, nilSet.Len())
}

func TestRuleSet_CategoriesIsCopy(t *testing.T) {
	rs := NewRuleSet("test", []Category{"A", "B"})
	got := rs.Categories()
	got[0] = "Z"

	assert.True(t, rs.Contains("A"))
	assert.Equal(t, Category("A"), rs.Categories()[0])
}
