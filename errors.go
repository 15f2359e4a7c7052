/*
 * errors.go, part of ipclattice.
 *
 * Copyright 2024 The ipclattice authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ipc

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of failure. Every CError wraps one of these, so callers can
// use errors.Is to tell them apart.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrFileWrite       = errors.New("unable to write file")
)

// CError is the general error type of ipclattice. It fulfills Error.
type CError struct {
	message  string
	filename string //the file involved, or empty string if none.
	deco     []string
	critical bool
	kind     error
	cause    error
}

// NewError returns a critical CError of the given kind. cause can be nil.
func NewError(kind error, message, filename string, cause error, deco ...string) CError {
	return CError{message: message, filename: filename, deco: deco, critical: true, kind: kind, cause: cause}
}

// InvalidArgumentf returns a CError of kind ErrInvalidArgument with a formatted message.
func InvalidArgumentf(caller, format string, a ...interface{}) CError {
	return NewError(ErrInvalidArgument, fmt.Sprintf(format, a...), "", nil, caller)
}

func (err CError) Error() string {
	b := new(strings.Builder)
	b.WriteString("ipclattice: ")
	if err.kind != nil {
		b.WriteString(err.kind.Error())
		b.WriteString(": ")
	}
	b.WriteString(err.message)
	if err.filename != "" {
		fmt.Fprintf(b, " (file %s)", err.filename)
	}
	if err.cause != nil {
		b.WriteString(": ")
		b.WriteString(err.cause.Error())
	}
	return b.String()
}

// Decorate adds new information to the error.
func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err CError) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err CError) Critical() bool { return err.critical }

// Unwrap gives access to both the kind and the underlying cause.
func (err CError) Unwrap() []error {
	ret := make([]error, 0, 2)
	if err.kind != nil {
		ret = append(ret, err.kind)
	}
	if err.cause != nil {
		ret = append(ret, err.cause)
	}
	return ret
}

// ErrDecorate decorates err with the caller's name if err implements Error,
// and returns it unchanged otherwise.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	//Decorate has a value receiver, so for our own type we
	//return the decorated copy.
	if e, ok := err.(CError); ok {
		e.deco = append(e.deco, caller)
		return e
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}
