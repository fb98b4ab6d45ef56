package errors

import (
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/maxkimambo/fate/internal/runner"
)

var categoryTitles = map[ErrorCategory]string{
	ErrorCategoryAction:     "Action",
	ErrorCategoryDependency: "Dependency",
	ErrorCategoryCycle:      "Cycle",
	ErrorCategoryLookup:     "Lookup",
	ErrorCategoryConfig:     "Config",
}

// Members returns the errors collected by a keep-going run, or err itself
func Members(err error) []error {
	var fateErr *runner.FateError
	if goerrors.As(err, &fateErr) {
		return fateErr.Errors
	}
	return []error{err}
}

// DisplayErrorSummary provides a brief summary of the error for logs
func DisplayErrorSummary(err error) string {
	if members := Members(err); len(members) > 1 {
		return fmt.Sprintf("%d task failure(s): %s", len(members), GetErrorCode(err))
	}
	if runErr := Classify(err); runErr != nil {
		return fmt.Sprintf("%s-%s: %s", runErr.Category, runErr.Code, runErr.Message)
	}

	errStr := err.Error()
	if len(errStr) > 100 {
		return errStr[:97] + "..."
	}
	return errStr
}

// FormatForCLI formats an error for command-line display with proper spacing.
// A keep-going aggregate is expanded into one section per collected failure.
func FormatForCLI(err error) string {
	members := Members(err)
	if len(members) == 1 {
		return formatOne(members[0])
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n%d task failure(s)\n", len(members)))
	for _, member := range members {
		sb.WriteString(formatOne(member))
	}
	return sb.String()
}

func formatOne(err error) string {
	runErr := Classify(err)
	if runErr == nil {
		return fmt.Sprintf("\nError: %v\n", err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n%s Error [%s-%s]\n",
		categoryTitles[runErr.Category], runErr.Category, runErr.Code))
	sb.WriteString(fmt.Sprintf("  %s\n", runErr.Message))

	if runErr.Operation != "" {
		sb.WriteString(fmt.Sprintf("\nFailed Operation: %s\n", runErr.Operation))
	}

	if len(runErr.Context) > 0 {
		sb.WriteString("\nDetails:\n")
		for _, key := range runErr.contextKeys() {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", key, runErr.Context[key]))
		}
	}

	if len(runErr.Troubleshooting) > 0 {
		sb.WriteString("\nHow to resolve:\n")
		for i, step := range runErr.Troubleshooting {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	if runErr.OriginalError != nil {
		sb.WriteString(fmt.Sprintf("\nTechnical details: %v\n", runErr.OriginalError))
	}

	return sb.String()
}

// GetErrorCode extracts the error code for reporting. Aggregates yield the
// codes of their members joined by commas.
func GetErrorCode(err error) string {
	var codes []string
	for _, member := range Members(err) {
		if runErr := Classify(member); runErr != nil {
			codes = append(codes, fmt.Sprintf("%s-%s", runErr.Category, runErr.Code))
		} else {
			codes = append(codes, "UNKNOWN")
		}
	}
	return strings.Join(codes, ",")
}
