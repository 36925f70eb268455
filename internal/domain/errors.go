package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError reports a template document that could not be accepted.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid template: %s: %v", e.Reason, e.Err)
	}
	return "invalid template: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// MissingCredentialError is returned before any call to an AI provider when no
// API key could be found for it.
type MissingCredentialError struct {
	Provider string
	EnvVars  []string
}

func (e *MissingCredentialError) Error() string {
	if len(e.EnvVars) == 0 {
		return fmt.Sprintf("no API key configured for provider %q", e.Provider)
	}
	return fmt.Sprintf("no API key configured for provider %q: set apiKey in the config, pass --api-key, or export %s",
		e.Provider, strings.Join(e.EnvVars, " or "))
}

func IsMissingCredentialError(err error) bool {
	var me *MissingCredentialError
	return errors.As(err, &me)
}

// ServiceError wraps a failure of an external AI collaborator. The document
// the caller holds is never modified when one is returned.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

// NotFoundError is returned by edits addressing a section, component or
// attribute id that does not exist.
type NotFoundError struct {
	Kind        string
	ID          string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Kind, e.ID)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
