package rules

import (
	"errors"
	"testing"

	"hphpa/internal/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRuleSet(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		content  string
		wantName string
		want     []models.Category
	}{
		{
			name: "xml",
			path: "ruleset.xml",
			content: `<?xml version="1.0"?>
<ruleset name="strict">
  <rule name="UseEvaluation"/>
  <rule name="UseUndeclaredVariable"/>
</ruleset>`,
			wantName: "strict",
			want:     []models.Category{"UseEvaluation", "UseUndeclaredVariable"},
		},
		{
			name:     "xml without name uses file name",
			path:     "config/mine.xml",
			content:  `<ruleset><rule name="BadDefine"/></ruleset>`,
			wantName: "mine",
			want:     []models.Category{"BadDefine"},
		},
		{
			name:     "unknown identifiers are kept",
			path:     "ruleset.xml",
			content:  `<ruleset><rule name="CustomFutureRule"/><rule name="UnknownClass"/></ruleset>`,
			wantName: "ruleset",
			want:     []models.Category{"CustomFutureRule", "UnknownClass"},
		},
		{
			name:     "whitespace and duplicates",
			path:     "ruleset.xml",
			content:  `<ruleset><rule name=" BadDefine "/><rule name=""/><rule name="BadDefine"/></ruleset>`,
			wantName: "ruleset",
			want:     []models.Category{"BadDefine"},
		},
		{
			name:     "yaml",
			path:     "ruleset.yml",
			content:  "name: yaml-rules\nrules:\n  - UseEvaluation\n  - ReassignThis\n",
			wantName: "yaml-rules",
			want:     []models.Category{"UseEvaluation", "ReassignThis"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.path, []byte(tt.content), 0o644))

			rs, err := LoadRuleSet(fs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, rs.Name)
			assert.Equal(t, tt.want, rs.Categories())
		})
	}
}

func TestLoadRuleSet_Errors(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		content   *string
		wantEmpty bool
	}{
		{name: "missing file", path: "nope.xml"},
		{name: "malformed xml", path: "bad.xml", content: strPtr("<ruleset><rule")},
		{name: "wrong root element", path: "bad.xml", content: strPtr(`<rules><rule name="A"/></rules>`)},
		{name: "empty file", path: "empty.xml", content: strPtr("")},
		{name: "no rules", path: "none.xml", content: strPtr("<ruleset/>"), wantEmpty: true},
		{name: "only blank rules", path: "blank.xml", content: strPtr(`<ruleset><rule name="  "/></ruleset>`), wantEmpty: true},
		{name: "malformed yaml", path: "bad.yaml", content: strPtr("rules: [a, b")},
		{name: "empty yaml", path: "empty.yml", content: strPtr(""), wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.content != nil {
				require.NoError(t, afero.WriteFile(fs, tt.path, []byte(*tt.content), 0o644))
			}

			rs, err := LoadRuleSet(fs, tt.path)
			require.Error(t, err)
			assert.Nil(t, rs)

			var readErr *RulesetReadError
			require.True(t, errors.As(err, &readErr))
			assert.Equal(t, tt.path, readErr.Path)
			assert.Equal(t, tt.wantEmpty, errors.Is(err, ErrEmptyRuleset))
		})
	}
}

func strPtr(s string) *string {
	return &s
}
