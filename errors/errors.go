// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines the recoverable and fatal diagnostics the parser
// produces: an append-only list of recoverable eexprErrors and a single
// fatal slot, as described by spec section 7.
package errors

import (
	"fmt"
	"sort"

	"github.com/andrewthad/eexprs/token"
)

// Tag identifies the kind of diagnostic. There is exactly one fatal tag
// (UnbalancedWrap) and three recoverable ones.
type Tag int

const (
	// UnbalancedWrap is fatal: a close token didn't match the top of the
	// wrap stack, or arrived with nothing on it.
	UnbalancedWrap Tag = iota
	// ExpectingNewlineOrDedent is recoverable: inside a block, an
	// expression was followed by neither a newline nor a dedent.
	ExpectingNewlineOrDedent
	// MissingTemplateExpr is recoverable: a template middle/close arrived
	// without an embedded expression between it and the previous piece.
	MissingTemplateExpr
	// MissingCloseTemplate is recoverable: a template run ended without a
	// closing string splice.
	MissingCloseTemplate
)

func (t Tag) String() string {
	switch t {
	case UnbalancedWrap:
		return "UNBALANCED_WRAP"
	case ExpectingNewlineOrDedent:
		return "EXPECTING_NEWLINE_OR_DEDENT"
	case MissingTemplateExpr:
		return "MISSING_TEMPLATE_EXPR"
	case MissingCloseTemplate:
		return "MISSING_CLOSE_TEMPLATE"
	default:
		return "UNKNOWN"
	}
}

// Fatal reports whether t halts the line driver. UnbalancedWrap is the only
// fatal tag; everything else is recoverable.
func (t Tag) Fatal() bool { return t == UnbalancedWrap }

// Error is one diagnostic, recoverable or fatal.
type Error struct {
	Pos token.Pos
	Tag Tag
	Msg string

	// Opener is set for UnbalancedWrap errors that point at a specific
	// unmatched opener on the wrap stack; it is the zero Pos when the
	// stack was empty at detection time.
	Opener token.Pos
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Tag, e.Msg)
}

// Position reports the diagnostic's primary source position.
func (e *Error) Position() token.Pos { return e.Pos }

// List is an append-only, ordered collection of recoverable errors. The
// zero List is ready to use.
type List []*Error

// Add appends a new diagnostic with the given tag, position, and message.
func (l *List) Add(pos token.Pos, tag Tag, format string, args ...interface{}) *Error {
	e := &Error{Pos: pos, Tag: tag, Msg: fmt.Sprintf(format, args...)}
	*l = append(*l, e)
	return e
}

// Reset empties the list.
func (l *List) Reset() { *l = (*l)[:0] }

// Sort orders the list by source position, matching cue/errors.List.Sort.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Pos.Compare(l[j].Pos) < 0
	})
}

// Err returns the list as an error, or nil if the list is empty. This lets
// a caller fold "any recoverable errors occurred" into ordinary Go error
// handling without the parser itself deciding whether recoverable errors
// are warnings or failures (that policy belongs to the consumer, per
// spec section 7).
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
	}
}
