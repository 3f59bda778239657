package codeerrors

import (
	"errors"
	"strings"
	"testing"

	"hphpa/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_KeepsCategoryOrder(t *testing.T) {
	input := `[1, {
		"UseUndeclaredVariable": [
			{"c1": ["a.php", 10, 3, 10, 5], "d": "  x\n"},
			{"c1": ["b.php", "4"], "d": "y"}
		],
		"BadDefine": [
			{"c1": ["a.php", 10], "c2": ["a.php", 11], "d": "FOO"}
		],
		"UseEvaluation": [
			{"c1": ["c.php", 1]}
		]
	}]`

	log, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)

	want := &models.RawLog{
		Version: "1",
		Groups: []models.CategoryGroup{
			{Category: "UseUndeclaredVariable", Records: []models.RawRecord{
				{Category: "UseUndeclaredVariable", File: "a.php", Line: 10, Detail: "  x\n"},
				{Category: "UseUndeclaredVariable", File: "b.php", Line: 4, Detail: "y"},
			}},
			{Category: "BadDefine", Records: []models.RawRecord{
				{Category: "BadDefine", File: "a.php", Line: 10, Detail: "FOO"},
			}},
			{Category: "UseEvaluation", Records: []models.RawRecord{
				{Category: "UseEvaluation", File: "c.php", Line: 1, Detail: ""},
			}},
		},
	}

	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, log.RecordCount())
}

func TestParse_SkipsMalformedCategories(t *testing.T) {
	input := `[1, {
		"Meta": {"generated": "today"},
		"Count": 3,
		"Nothing": null,
		"UseEvaluation": [{"c1": ["a.php", 2], "d": null}],
		"Empty": []
	}]`

	log, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)

	require.Len(t, log.Groups, 2)
	assert.Equal(t, models.Category("UseEvaluation"), log.Groups[0].Category)
	assert.Equal(t, "", log.Groups[0].Records[0].Detail)
	assert.Equal(t, models.Category("Empty"), log.Groups[1].Category)
	assert.Empty(t, log.Groups[1].Records)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "hello"},
		{name: "empty", input: ""},
		{name: "top level object", input: `{"UseEvaluation": []}`},
		{name: "no category section", input: `[1]`},
		{name: "category section not an object", input: `[1, [1, 2]]`},
		{name: "category section null", input: `[1, null]`},
		{name: "record not an object", input: `[1, {"UseEvaluation": ["oops"]}]`},
		{name: "record without location", input: `[1, {"UseEvaluation": [{"d": "x"}]}]`},
		{name: "record with short location", input: `[1, {"UseEvaluation": [{"c1": ["a.php"]}]}]`},
		{name: "record with bad file", input: `[1, {"UseEvaluation": [{"c1": [7, 1]}]}]`},
		{name: "record with bad line", input: `[1, {"UseEvaluation": [{"c1": ["a.php", "ten"]}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Parse(strings.NewReader(tt.input), nil)
			require.Error(t, err)
			assert.Nil(t, log)

			var readErr *LogReadError
			assert.True(t, errors.As(err, &readErr))
		})
	}
}

func TestReadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/build/CodeErrors.js",
		[]byte(`[1, {"UseEvaluation": [{"c1": ["a.php", 2], "d": ""}]}]`), 0o644))

	log, err := ReadFile(fs, "/build/CodeErrors.js", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, log.RecordCount())
}

func TestReadFile_Missing(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := ReadFile(fs, "/build/CodeErrors.js", nil)
	require.Error(t, err)

	var readErr *LogReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "/build/CodeErrors.js", readErr.Path)
	assert.Contains(t, err.Error(), "/build/CodeErrors.js")
}
