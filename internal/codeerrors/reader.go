// Package codeerrors reads the CodeErrors.js diagnostic log written by the
// HipHop compiler.
//
// The log is a JSON array. Element 0 is the format version, element 1 an
// object mapping a category name to its records:
//
//	[1, {"UseUndeclaredVariable": [{"c1": ["a.php", 10, 3, 10, 5], "d": "x"}]}]
//
// Only c1[0] (file), c1[1] (line) and d (detail) are used.
package codeerrors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hphpa/internal/models"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// LogReadError reports a diagnostic log that is missing or structurally invalid
type LogReadError struct {
	Path string
	Err  error
}

func (e *LogReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not read diagnostic log: %v", e.Err)
	}
	return fmt.Sprintf("could not read diagnostic log %s: %v", e.Path, e.Err)
}

func (e *LogReadError) Unwrap() error {
	return e.Err
}

type rawRecord struct {
	C1 []json.RawMessage `json:"c1"`
	D  json.RawMessage   `json:"d"`
}

// ReadFile opens and parses the log at path
func ReadFile(fs afero.Fs, path string, logger hclog.Logger) (*models.RawLog, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &LogReadError{Path: path, Err: err}
	}
	defer f.Close()

	log, err := parse(f, logger)
	if err != nil {
		return nil, &LogReadError{Path: path, Err: err}
	}
	return log, nil
}

// Parse reads a log from r
func Parse(r io.Reader, logger hclog.Logger) (*models.RawLog, error) {
	log, err := parse(r, logger)
	if err != nil {
		return nil, &LogReadError{Err: err}
	}
	return log, nil
}

func parse(r io.Reader, logger hclog.Logger) (*models.RawLog, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("codeerrors")

	var top []json.RawMessage
	if err := json.NewDecoder(r).Decode(&top); err != nil {
		return nil, fmt.Errorf("log is not a JSON array: %w", err)
	}
	if len(top) < 2 {
		return nil, errors.New("log has no category section")
	}

	log := &models.RawLog{Version: scalarString(top[0])}

	groups, err := parseCategories(top[1], logger)
	if err != nil {
		return nil, err
	}
	log.Groups = groups

	logger.Debug("parsed diagnostic log", "version", log.Version, "categories", len(groups), "records", log.RecordCount())
	return log, nil
}

// parseCategories walks the category object with a token decoder so that
// categories come out in file order.
func parseCategories(data json.RawMessage, logger hclog.Logger) ([]models.CategoryGroup, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("error reading category section: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("category section is not an object")
	}

	var groups []models.CategoryGroup
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("error reading category name: %w", err)
		}
		name, _ := tok.(string)
		category := models.Category(name)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("error reading category %s: %w", category, err)
		}

		if !isArray(value) {
			logger.Debug("skipping malformed category entry", "category", category)
			continue
		}

		records, err := parseRecords(category, value)
		if err != nil {
			return nil, err
		}
		groups = append(groups, models.CategoryGroup{Category: category, Records: records})
	}

	return groups, nil
}

func parseRecords(category models.Category, data json.RawMessage) ([]models.RawRecord, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error reading category %s: %w", category, err)
	}

	records := make([]models.RawRecord, 0, len(raw))
	for i, item := range raw {
		var rec rawRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("category %s record #%d: %w", category, i+1, err)
		}
		if len(rec.C1) < 2 {
			return nil, fmt.Errorf("category %s record #%d: missing file and line", category, i+1)
		}

		var file string
		if err := json.Unmarshal(rec.C1[0], &file); err != nil || file == "" {
			return nil, fmt.Errorf("category %s record #%d: invalid file", category, i+1)
		}

		line, err := parseLine(rec.C1[1])
		if err != nil {
			return nil, fmt.Errorf("category %s record #%d: %w", category, i+1, err)
		}

		records = append(records, models.RawRecord{
			Category: category,
			File:     file,
			Line:     line,
			Detail:   scalarString(rec.D),
		})
	}

	return records, nil
}

func parseLine(data json.RawMessage) (int, error) {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	line, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid line %s", string(data))
	}
	return line, nil
}

func isArray(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// scalarString returns a JSON string's value, the literal text of any other
// scalar, and "" for null or absent values.
func scalarString(data json.RawMessage) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}
