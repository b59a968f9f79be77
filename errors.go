/* Copyright (c) 2021 David Bulkow */

package dateutil

import "fmt"

// ParseError is the only error returned by Parse. The message is either
// the fixed "Unable to create datetime" text, when a token is not a
// number, or the message of the calendar constructor that rejected the
// components.
type ParseError struct {
	msg        string
	input      string
	castFailed bool
	invalid    bool
}

func (e *ParseError) Error() string    { return e.msg }
func (e *ParseError) Input() string    { return e.input }
func (e *ParseError) CastFailed() bool { return e.castFailed }
func (e *ParseError) Invalid() bool    { return e.invalid }

func castError(input string) *ParseError {
	return &ParseError{
		msg:        fmt.Sprintf("Unable to create datetime from '%s'", input),
		input:      input,
		castFailed: true,
	}
}

func constructError(input string, err error) *ParseError {
	return &ParseError{
		msg:     err.Error(),
		input:   input,
		invalid: true,
	}
}
