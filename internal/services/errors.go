package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDataLoad marks a missing or malformed dataset file. Fatal for the run.
	ErrDataLoad = errors.New("data load error")
	// ErrNoMatch marks an empty filter result. Fatal for the run but reported
	// as a user-facing suggestion rather than a crash.
	ErrNoMatch = errors.New("no recipes match")
	// ErrCollaborator marks a failed spreadsheet/document/email API call.
	ErrCollaborator = errors.New("collaborator error")
	// ErrConfiguration marks unusable configuration discovered at run time.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes step context while tagging it
// with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrCollaborator
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
