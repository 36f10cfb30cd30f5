// Package errors provides a small structured error type (TocError) used to
// classify failures of the TOC generator by category.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category classifies a TocError.
type Category string

const (
	// CategoryInput covers an unreadable or missing configuration document.
	CategoryInput Category = "input"
	// CategoryParse covers nav entries that cannot be turned into a TOC line.
	CategoryParse Category = "parse"
	// CategoryConfig covers invalid generator settings.
	CategoryConfig Category = "config"
	// CategoryInternal is reported for errors that are not TocErrors.
	CategoryInternal Category = "internal"
)

// TocError is a structured error with a category and context fields.
type TocError struct {
	Category Category
	Message  string
	Cause    error
	Context  ContextFields
}

// ContextFields carries structured context for TocError
type ContextFields map[string]any

func (e *TocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *TocError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *TocError) WithContext(key string, value any) *TocError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new TocError
func New(category Category, message string) *TocError {
	return &TocError{Category: category, Message: message}
}

// Wrap creates a new TocError that wraps an existing error
func Wrap(err error, category Category, message string) *TocError {
	return &TocError{Category: category, Message: message, Cause: err}
}

// GetCategory extracts the category from anywhere in the error chain, or
// returns CategoryInternal.
func GetCategory(err error) Category {
	var te *TocError
	if stderrors.As(err, &te) {
		return te.Category
	}
	return CategoryInternal
}

// IsCategory reports whether err (or anything it wraps) is a TocError of the
// given category.
func IsCategory(err error, category Category) bool {
	return err != nil && GetCategory(err) == category
}
