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

package token

import "github.com/cockroachdb/apd/v3"

// Kind identifies the lexical class of a Token, as produced by the
// post-lexer. This package only declares the enumeration; lexing and
// post-lexing (resolving context-sensitive dots, colons, and newlines into
// one of these kinds) happen upstream of this module.
type Kind int

const (
	ILLEGAL Kind = iota

	NUMBER    // mantissa/radix/fractionalDigits/exponent payload
	CODEPOINT // one Unicode scalar
	STRING    // text + splice role
	SYMBOL    // text

	WRAP // paren/brack/brace/block, open or close

	COLON
	ELLIPSIS
	CHAIN // '.'
	SEMICOLON
	COMMA
	PREDOT
	SPACE
	NEWLINE
	EOF
)

func (k Kind) String() string {
	switch k {
	case NUMBER:
		return "NUMBER"
	case CODEPOINT:
		return "CODEPOINT"
	case STRING:
		return "STRING"
	case SYMBOL:
		return "SYMBOL"
	case WRAP:
		return "WRAP"
	case COLON:
		return "COLON"
	case ELLIPSIS:
		return "ELLIPSIS"
	case CHAIN:
		return "CHAIN"
	case SEMICOLON:
		return "SEMICOLON"
	case COMMA:
		return "COMMA"
	case PREDOT:
		return "PREDOT"
	case SPACE:
		return "SPACE"
	case NEWLINE:
		return "NEWLINE"
	case EOF:
		return "EOF"
	default:
		return "ILLEGAL"
	}
}

// WrapKind identifies which of the four wrap flavors a WRAP token opens or
// closes.
type WrapKind int

const (
	Paren WrapKind = iota
	Brack
	Brace
	Block
)

func (k WrapKind) String() string {
	switch k {
	case Paren:
		return "paren"
	case Brack:
		return "brack"
	case Brace:
		return "brace"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// StringRole classifies a STRING token's place in a (possibly spliced)
// string template: a plain string has no splices; a templated string is
// segmented into exactly one open, zero or more middle, and one close
// token, unless the post-lexer hit an unterminated string, in which case
// the final segment carries the corrupt role.
type StringRole int

const (
	Plain StringRole = iota
	Open
	Middle
	Close
	Corrupt
)

// Token is one lexeme of the post-lexed input stream. Its Kind determines
// which payload fields are meaningful; the rest are left zero. This mirrors
// the post-lexer's tagged-union token, flattened into a struct because the
// parser never needs to hold a Token by interface value — it only ever
// copies the payload of the current token into a node and moves on.
type Token struct {
	Kind  Kind
	Start Pos
	End   Pos

	// Transparent tokens must be skipped by the cursor; they exist only
	// for downstream colorizers/formatters.
	Transparent bool

	// NUMBER
	Mantissa         *apd.BigInt
	Radix            int
	FractionalDigits int
	Exponent         *apd.BigInt

	// CODEPOINT
	Codepoint rune

	// STRING
	Text       []byte
	StringRole StringRole

	// SYMBOL
	Symbol []byte

	// WRAP
	WrapKind WrapKind
	IsOpen   bool
}

// IsEOF reports whether t is the end-of-stream token.
func (t *Token) IsEOF() bool { return t.Kind == EOF }

// Loc returns t's source range.
func (t *Token) Loc() Loc { return Loc{Start: t.Start, End: t.End} }

// Loc is a half-open-in-spirit source range: [Start, End]. Every eexpr node
// carries one, covering every token consumed to produce it, including
// separators that collapsed into the node.
type Loc struct {
	Start Pos
	End   Pos
}

// Covering returns the smallest Loc that spans both a and b.
func Covering(a, b Loc) Loc {
	start, end := a.Start, a.End
	if b.Start.IsValid() && (!start.IsValid() || b.Start.Before(start)) {
		start = b.Start
	}
	if b.End.IsValid() && (!end.IsValid() || end.Before(b.End)) {
		end = b.End
	}
	return Loc{Start: start, End: end}
}
