package carspec

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// EMISSING marks a page without a required section.
	EMISSING = "missing_section"
	// EFORMAT marks a numeric token that matches no known number format.
	EFORMAT = "format"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("carspec error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// SectionKind names an anchored section of a car page.
type SectionKind string

// Sections the parser looks for, in page order.
const (
	SectionClass  SectionKind = "class"
	SectionName   SectionKind = "name"
	SectionStars  SectionKind = "stars"
	SectionFuel   SectionKind = "fuel"
	SectionUnlock SectionKind = "unlock"
	SectionEpics  SectionKind = "epics"
	SectionStats  SectionKind = "stats"
	SectionCosts  SectionKind = "costs"
)

// SectionError reports that a required section was not found on a page.
type SectionError struct {
	CarID   int
	Section SectionKind
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("car %d: %s section not found", e.CarID, e.Section)
}

// FormatError reports a numeric token that could not be parsed.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unrecognized number format: %q", e.Input)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	var se *SectionError
	var fe *FormatError
	switch {
	case errors.As(err, &e):
		return e.Code
	case errors.As(err, &se):
		return EMISSING
	case errors.As(err, &fe):
		return EFORMAT
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	var se *SectionError
	var fe *FormatError
	switch {
	case errors.As(err, &e):
		return e.Message
	case errors.As(err, &se):
		return se.Error()
	case errors.As(err, &fe):
		return fe.Error()
	}
	return "Internal error"
}
