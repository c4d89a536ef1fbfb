package ptilerr

import (
	"errors"
	"fmt"
	"strings"
)

// Class represents the classification of an encoder error.
type Class int

const (
	// ClassInvalidInput represents errors caused by input the pipeline
	// cannot accept at all.
	ClassInvalidInput Class = iota
	// ClassParserUnavailable represents errors reaching or constructing the
	// configured linguistic Analyzer.
	ClassParserUnavailable
	// ClassInternalDegradation represents a recovered fault: a component
	// fell back to a safe default instead of failing the encode.
	ClassInternalDegradation
)

// String returns the string representation of Class.
func (c Class) String() string {
	switch c {
	case ClassInvalidInput:
		return "invalid_input"
	case ClassParserUnavailable:
		return "parser_unavailable"
	case ClassInternalDegradation:
		return "internal_degradation"
	default:
		return "unknown"
	}
}

// Sentinel errors for common encoder conditions.
var (
	ErrEmptyText          = errors.New("text must be non-empty")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrNilAnalyzer        = errors.New("analyzer must not be nil")

	ErrParserNotConfigured = errors.New("no analyzer configured for language")
	ErrParserPoolExhausted = errors.New("analyzer pool exhausted")

	ErrUnmappedPredicate     = errors.New("no ROOT mapping found for predicate")
	ErrIncompatibleRoleDropped = errors.New("role incompatible with ROOT, dropped")
)

// ClassifiedError wraps an error with its classification and the component
// and operation that produced it.
type ClassifiedError struct {
	Class     Class
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface.
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error.
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

func newClassified(class Class, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid input, with context.
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return newClassified(ClassInvalidInput, wrapped, component, method, wrapped.Error())
}

// WrapParserUnavailable wraps an error as a parser-availability failure.
func WrapParserUnavailable(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return newClassified(ClassParserUnavailable, wrapped, component, method, wrapped.Error())
}

// WrapDegraded wraps an error as an internal degradation: the component
// recovered with a safe default and the caller may continue.
func WrapDegraded(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return newClassified(ClassInternalDegradation, wrapped, component, method, wrapped.Error())
}

// IsInvalid reports whether err is classified as invalid input.
func IsInvalid(err error) bool {
	return classOf(err) == ClassInvalidInput
}

// IsParserUnavailable reports whether err is classified as a parser
// availability failure.
func IsParserUnavailable(err error) bool {
	return classOf(err) == ClassParserUnavailable
}

// IsDegraded reports whether err is a recovered internal degradation rather
// than a hard failure.
func IsDegraded(err error) bool {
	return classOf(err) == ClassInternalDegradation
}

func classOf(err error) Class {
	var ce *ClassifiedError
	if err != nil && errors.As(err, &ce) {
		return ce.Class
	}
	return classify(err)
}

// classify gives a best-effort class for an error not produced through
// Wrap*, by matching known sentinels and message substrings.
func classify(err error) Class {
	if err == nil {
		return ClassInvalidInput
	}
	if errors.Is(err, ErrParserNotConfigured) || errors.Is(err, ErrParserPoolExhausted) {
		return ClassParserUnavailable
	}
	if errors.Is(err, ErrUnmappedPredicate) || errors.Is(err, ErrIncompatibleRoleDropped) {
		return ClassInternalDegradation
	}
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "degraded") || strings.Contains(lower, "dropped") {
		return ClassInternalDegradation
	}
	if strings.Contains(lower, "analyzer") || strings.Contains(lower, "parser") {
		return ClassParserUnavailable
	}
	return ClassInvalidInput
}
