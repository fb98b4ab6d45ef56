package config

import "fmt"

// ParseError reports a malformed or unexpected config document
type ParseError struct {
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

// Unwrap returns the decoder error, if any
func (e *ParseError) Unwrap() error {
	return e.Err
}

// GuessError is returned when no parser or config file could be chosen
type GuessError struct {
	Dir    string
	File   string
	Reason string
}

// Error implements the error interface
func (e *GuessError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("cannot pick a parser for %s: %s", e.File, e.Reason)
	}
	return fmt.Sprintf("no config file found in %s: %s", e.Dir, e.Reason)
}
