// Package errors defines the coded errors shared by the ringlayout packages.
//
// A [Code] classifies a failure once, where it happens. The CLI shows the
// [UserMessage] of an error and the HTTP server derives its status from
// [GetCode], so both surfaces agree on what went wrong:
//
//	if s.Sections[i].Count != len(s.Sections[i].Items) {
//	    return errors.New(errors.ErrCodeInvalidScene, "section %d: count and items disagree", i)
//	}
//
//	doc, err := decode(data)
//	if err != nil {
//	    return errors.Wrap(errors.ErrCodeInvalidScene, err, "decode %s", path)
//	}
//
// Codes nest: INVALID_* for rejected input, *NOT_FOUND for missing
// resources, and INTERNAL_ERROR for everything unexpected.
package errors

import (
	"errors"
	"fmt"
)

// Code is the machine-readable class of an [Error].
type Code string

const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidScene   Code = "INVALID_SCENE"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidVizType Code = "INVALID_VIZ_TYPE"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// ErrCodeUnavailable marks a backend (cache, converter) that could not
	// be reached.
	ErrCodeUnavailable Code = "UNAVAILABLE"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error carries a Code, a message and an optional cause. It prints as
// "CODE: message" or "CODE: message: cause".
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message and no cause.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// find returns the outermost *Error in err's chain.
func find(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := find(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e, ok := find(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage renders err for people: the code prefix of an *Error is
// dropped, any other error is returned unchanged.
func UserMessage(err error) string {
	e, ok := find(err)
	if !ok {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}
