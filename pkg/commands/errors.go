package commands

import (
	"fmt"

	"github.com/go-errors/errors"
	"golang.org/x/xerrors"
)

const (
	// NotFound tells us that the path does not exist
	NotFound = iota
	// MetadataUnavailable tells us that the path exists but could not be stat'd
	MetadataUnavailable
	// DirectoryUnreadable tells us that we could not list a directory's entries
	DirectoryUnreadable
	// TerminalWidthUnavailable tells us that there is no terminal width to lay a grid out against
	TerminalWidthUnavailable
)

// WrapError wraps an error for the sake of showing a stack trace at the top level
// the go-errors package, for some reason, does not return nil when you try to wrap
// a non-error, so we're just doing it here
func WrapError(err error) error {
	if err == nil {
		return err
	}

	return errors.Wrap(err, 0)
}

// ComplexError an error which carries a code so that calling code has an easier job to do
// adapted from https://medium.com/yakka/better-go-error-handling-with-xerrors-1987650e0c79
type ComplexError struct {
	Message string
	Code    int
	// Path is the filesystem path the error is about, if any
	Path  string
	frame xerrors.Frame
}

// NewComplexError returns a ComplexError that remembers where it was created
func NewComplexError(code int, path string, message string) ComplexError {
	return ComplexError{
		Message: message,
		Code:    code,
		Path:    path,
		frame:   xerrors.Caller(1),
	}
}

// FormatError is a function
func (ce ComplexError) FormatError(p xerrors.Printer) error {
	p.Printf("%s", ce.Message)
	ce.frame.Format(p)
	return nil
}

// Format is a function
func (ce ComplexError) Format(f fmt.State, c rune) {
	xerrors.FormatError(ce, f, c)
}

func (ce ComplexError) Error() string {
	return fmt.Sprint(ce)
}

// HasErrorCode is a function
func HasErrorCode(err error, code int) bool {
	var originalErr ComplexError
	if xerrors.As(err, &originalErr) {
		return originalErr.Code == code
	}
	return false
}

// AsComplexError pulls a ComplexError out of an error chain
func AsComplexError(err error) (ComplexError, bool) {
	var originalErr ComplexError
	ok := xerrors.As(err, &originalErr)
	return originalErr, ok
}
