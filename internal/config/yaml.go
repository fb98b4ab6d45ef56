package config

import (
	"path/filepath"

	"github.com/maxkimambo/fate/internal/runner"
	"gopkg.in/yaml.v3"
)

var yamlFileNames = map[string]bool{
	"fate.yaml":  true,
	"fate.yml":   true,
	".fate.yaml": true,
}

// YAMLParser reads a standalone fate.yaml whose top level is the tool table
type YAMLParser struct{}

// NewYAMLParser creates a YAML parser
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Name returns the registry name of the parser
func (p *YAMLParser) Name() string {
	return "yaml"
}

// MatchesFileName reports whether path is one of fate.yaml, fate.yml or .fate.yaml
func (p *YAMLParser) MatchesFileName(path string) bool {
	return yamlFileNames[filepath.Base(path)]
}

// Accepts reports whether data is a YAML mapping with a targets key
func (p *YAMLParser) Accepts(data []byte) bool {
	doc, err := p.decode(data)
	if err != nil {
		return false
	}
	_, ok := doc["targets"]
	return ok
}

// Parse builds a manager from the document
func (p *YAMLParser) Parse(data []byte) (*runner.Manager, error) {
	doc, err := p.decode(data)
	if err != nil {
		return nil, err
	}
	return buildManager("fate.yaml", doc)
}

func (p *YAMLParser) decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Source: "fate.yaml", Message: "invalid YAML", Err: err}
	}
	if doc == nil {
		return nil, &ParseError{Source: "fate.yaml", Message: "empty document"}
	}
	return doc, nil
}
