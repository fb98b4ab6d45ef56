package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maxkimambo/fate/internal/logger"
	"github.com/maxkimambo/fate/internal/runner"
)

// Parser translates one config file format into a manager
type Parser interface {
	// Name is the value accepted by --parser
	Name() string

	// MatchesFileName reports whether path has a name this parser reads
	MatchesFileName(path string) bool

	// Accepts reports whether the file content is meant for this parser
	Accepts(data []byte) bool

	// Parse builds the manager described by data
	Parse(data []byte) (*runner.Manager, error)
}

// ErrUnknownParser is matched by Lookup failures via errors.Is
var ErrUnknownParser = errors.New("unknown parser")

var registry = []Parser{
	NewPyprojectParser(),
	NewYAMLParser(),
}

// Lookup returns the registered parser called name
func Lookup(name string) (Parser, error) {
	for _, p := range registry {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w '%s' (available: %s)", ErrUnknownParser, name, strings.Join(Names(), ", "))
}

// Default returns the parser tried first when none is named
func Default() Parser {
	return registry[0]
}

// Names returns the registered parser names in lookup order
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, p := range registry {
		names = append(names, p.Name())
	}
	return names
}

// FindConfigFile returns the first file in dir, by name, that p matches and
// accepts. It returns "" when there is none.
func FindConfigFile(dir string, p Parser) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !p.MatchesFileName(path) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		if p.Accepts(data) {
			return path, nil
		}
		logger.Op.Debugf("Skipping %s: no %s configuration", path, p.Name())
	}
	return "", nil
}

// Resolve picks the parser and file to load. An explicit parser name and
// file are used as given; a missing file is discovered in dir; a missing
// parser is guessed from the file name and content.
func Resolve(dir, parserName, file string) (Parser, string, error) {
	switch {
	case parserName != "" && file != "":
		p, err := Lookup(parserName)
		return p, file, err

	case parserName != "":
		p, err := Lookup(parserName)
		if err != nil {
			return nil, "", err
		}
		path, err := FindConfigFile(dir, p)
		if err != nil {
			return nil, "", err
		}
		if path == "" {
			return nil, "", &GuessError{Dir: dir, Reason: fmt.Sprintf("no file for parser '%s'", parserName)}
		}
		return p, path, nil

	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		for _, p := range registry {
			if p.MatchesFileName(file) && p.Accepts(data) {
				return p, file, nil
			}
		}
		return nil, "", &GuessError{File: file, Reason: "use --parser to choose one of " + strings.Join(Names(), ", ")}

	default:
		for _, p := range registry {
			path, err := FindConfigFile(dir, p)
			if err != nil {
				return nil, "", err
			}
			if path != "" {
				return p, path, nil
			}
		}
		return nil, "", &GuessError{Dir: dir, Reason: "expected pyproject.toml with [tool.fate] or fate.yaml"}
	}
}

// Load resolves, reads and parses the config, returning the manager and the
// path it was read from.
func Load(dir, parserName, file string) (*runner.Manager, string, error) {
	p, path, err := Resolve(dir, parserName, file)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	logger.Op.Debugf("Parsing %s with the %s parser", path, p.Name())
	m, err := p.Parse(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Source = path
		}
		return nil, "", err
	}
	return m, path, nil
}
