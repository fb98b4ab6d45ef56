package config

import (
	"fmt"
	"path/filepath"

	"github.com/maxkimambo/fate/internal/runner"
	"github.com/pelletier/go-toml/v2"
)

// DefaultToolName is the [tool.<name>] table read from pyproject.toml
const DefaultToolName = "fate"

// LegacyToolName is read when a pyproject.toml has no [tool.fate] table
const LegacyToolName = "faterunner"

// PyprojectParser reads targets from the [tool.<ToolName>] table of a
// pyproject.toml file.
type PyprojectParser struct {
	ToolName string
}

// NewPyprojectParser creates a parser for [tool.fate], falling back to
// [tool.faterunner]
func NewPyprojectParser() *PyprojectParser {
	return &PyprojectParser{ToolName: DefaultToolName}
}

// Name returns the registry name of the parser
func (p *PyprojectParser) Name() string {
	return "pyproject"
}

// MatchesFileName reports whether path is named pyproject.toml
func (p *PyprojectParser) MatchesFileName(path string) bool {
	return filepath.Base(path) == "pyproject.toml"
}

// Accepts reports whether data has a [tool.<ToolName>] table. A
// pyproject.toml without one belongs to another tool.
func (p *PyprojectParser) Accepts(data []byte) bool {
	_, err := p.toolTable("pyproject.toml", data)
	return err == nil
}

// Parse builds a manager from the [tool.<ToolName>] table
func (p *PyprojectParser) Parse(data []byte) (*runner.Manager, error) {
	tool, err := p.toolTable("pyproject.toml", data)
	if err != nil {
		return nil, err
	}
	return buildManager("pyproject.toml", tool)
}

func (p *PyprojectParser) toolTable(source string, data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Source: source, Message: "invalid TOML", Err: err}
	}

	tools, ok := doc["tool"].(map[string]any)
	if !ok {
		return nil, &ParseError{Source: source, Message: "missing [tool] table"}
	}
	for _, name := range p.toolNames() {
		if tool, ok := tools[name].(map[string]any); ok {
			return tool, nil
		}
	}
	return nil, &ParseError{Source: source, Message: fmt.Sprintf("missing [tool.%s] table", p.toolNames()[0])}
}

func (p *PyprojectParser) toolNames() []string {
	if p.ToolName == "" || p.ToolName == DefaultToolName {
		return []string{DefaultToolName, LegacyToolName}
	}
	return []string{p.ToolName}
}
