package rules

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hphpa/internal/models"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultRuleSetName is the name reported when no ruleset file was given
const DefaultRuleSetName = "default"

//go:embed ruleset.xml
var defaultRuleSetXML []byte

// ErrEmptyRuleset is returned when a ruleset document enables no rules
var ErrEmptyRuleset = errors.New("ruleset enables no rules")

// RulesetReadError reports a ruleset document that could not be used
type RulesetReadError struct {
	Path string
	Err  error
}

func (e *RulesetReadError) Error() string {
	return fmt.Sprintf("could not read ruleset %s: %v", e.Path, e.Err)
}

func (e *RulesetReadError) Unwrap() error {
	return e.Err
}

type xmlRuleSet struct {
	XMLName xml.Name  `xml:"ruleset"`
	Name    string    `xml:"name,attr"`
	Rules   []xmlRule `xml:"rule"`
}

type xmlRule struct {
	Name string `xml:"name,attr"`
}

type yamlRuleSet struct {
	Name  string   `yaml:"name"`
	Rules []string `yaml:"rules"`
}

// LoadRuleSet loads the enabled rules from an XML or YAML ruleset document
func LoadRuleSet(fs afero.Fs, filePath string) (*models.RuleSet, error) {
	f, err := fs.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &RulesetReadError{Path: filePath, Err: fmt.Errorf("ruleset file not found: %w", err)}
		}
		return nil, &RulesetReadError{Path: filePath, Err: err}
	}
	defer f.Close()

	var names []string
	var setName string
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yml", ".yaml":
		setName, names, err = decodeYAML(f)
	default:
		setName, names, err = decodeXML(f)
	}
	if err != nil {
		return nil, &RulesetReadError{Path: filePath, Err: err}
	}

	if setName == "" {
		setName = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	ruleSet, err := buildRuleSet(setName, names)
	if err != nil {
		return nil, &RulesetReadError{Path: filePath, Err: err}
	}

	return ruleSet, nil
}

// DefaultRuleSet returns the ruleset shipped with the tool
func DefaultRuleSet() (*models.RuleSet, error) {
	_, names, err := decodeXML(bytes.NewReader(defaultRuleSetXML))
	if err != nil {
		return nil, &RulesetReadError{Path: DefaultRuleSetName, Err: err}
	}

	ruleSet, err := buildRuleSet(DefaultRuleSetName, names)
	if err != nil {
		return nil, &RulesetReadError{Path: DefaultRuleSetName, Err: err}
	}

	return ruleSet, nil
}

func decodeXML(r io.Reader) (string, []string, error) {
	var doc xmlRuleSet
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return "", nil, fmt.Errorf("error parsing ruleset: %w", err)
	}

	names := make([]string, 0, len(doc.Rules))
	for _, rule := range doc.Rules {
		names = append(names, rule.Name)
	}
	return doc.Name, names, nil
}

func decodeYAML(r io.Reader) (string, []string, error) {
	var doc yamlRuleSet
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		// An empty document decodes to io.EOF; it simply has no rules.
		if errors.Is(err, io.EOF) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("error parsing ruleset: %w", err)
	}
	return doc.Name, doc.Rules, nil
}

func buildRuleSet(name string, names []string) (*models.RuleSet, error) {
	categories := make([]models.Category, 0, len(names))
	for _, n := range names {
		categories = append(categories, models.Category(strings.TrimSpace(n)))
	}

	ruleSet := models.NewRuleSet(name, categories)
	if ruleSet.Len() == 0 {
		return nil, ErrEmptyRuleset
	}
	return ruleSet, nil
}
