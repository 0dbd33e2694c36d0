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

// Package eexpr declares the generalized s-expression-like tree produced by
// the parser: a sum type with one case per variant in spec section 3.
package eexpr

import (
	"github.com/andrewthad/eexprs/token"
	"github.com/cockroachdb/apd/v3"
)

// A Node represents any node in an eexpr tree. Every node owns its
// children exclusively; there are no shared subtrees and no back
// references into the wrap stack.
type Node interface {
	// Loc returns the node's source range. loc.Start <= loc.End always,
	// and the range covers every token consumed to produce the node,
	// including separators that collapsed into it.
	Loc() token.Loc

	node() // marker: only types in this package implement Node
}

func (n *Symbol) node()    {}
func (n *Number) node()    {}
func (n *Codepoint) node() {}
func (n *String) node()    {}
func (n *Paren) node()     {}
func (n *Brack) node()     {}
func (n *Brace) node()     {}
func (n *Block) node()     {}
func (n *Chain) node()     {}
func (n *Predot) node()    {}
func (n *Space) node()     {}
func (n *Ellipsis) node()  {}
func (n *Colon) node()     {}
func (n *Comma) node()     {}
func (n *Semicolon) node() {}

// Symbol is a bare identifier-like token, copied verbatim from the
// post-lexer's SYMBOL token.
type Symbol struct {
	Range token.Loc
	Text  []byte
}

func (n *Symbol) Loc() token.Loc { return n.Range }

// Number holds a number literal payload, copied from the post-lexer's
// NUMBER token. The mantissa and exponent are arbitrary-precision integers
// (spec section 3 calls the bigint representation an external
// collaborator; apd.BigInt is that collaborator's concrete type here).
type Number struct {
	Range            token.Loc
	Mantissa         *apd.BigInt
	Radix            int
	FractionalDigits int
	Exponent         *apd.BigInt
}

func (n *Number) Loc() token.Loc { return n.Range }

// Codepoint is a single Unicode scalar literal.
type Codepoint struct {
	Range token.Loc
	Value rune
}

func (n *Codepoint) Loc() token.Loc { return n.Range }

// StringPart is one embedded expression inside a spliced string, along
// with the literal text that follows it up to the next splice or the
// string's close. Expr is nil when the parser recovered from a missing
// template expression (MISSING_TEMPLATE_EXPR). After a missing close
// (MISSING_CLOSE_TEMPLATE) the last part keeps whatever expression was
// parsed before it, possibly nil, and has an empty TextAfter.
type StringPart struct {
	Expr      Node
	TextAfter []byte
}

// String is a (possibly templated) string literal. A plain string has an
// empty Parts list; TextAfter on the last part is zero-length, never nil,
// when the template ended flush against its closing quote.
type String struct {
	Range token.Loc
	Head  []byte
	Parts []StringPart
}

func (n *String) Loc() token.Loc { return n.Range }

// Paren is a parenthesized wrap. X is nil for an empty `()`.
type Paren struct {
	Range token.Loc
	X     Node
}

func (n *Paren) Loc() token.Loc { return n.Range }

// Brack is a bracketed wrap. X is nil for an empty `[]`.
type Brack struct {
	Range token.Loc
	X     Node
}

func (n *Brack) Loc() token.Loc { return n.Range }

// Brace is a braced wrap. X is nil for an empty `{}`.
type Brace struct {
	Range token.Loc
	X     Node
}

func (n *Brace) Loc() token.Loc { return n.Range }

// Block is an indentation-delimited wrap. Elts holds one node per
// semicolon-expression line inside the block, in source order; an empty
// block has a nil Elts.
type Block struct {
	Range token.Loc
	Elts  []Node
}

func (n *Block) Loc() token.Loc { return n.Range }

// Chain is a juxtaposition/dot-joined sequence of atomic expressions,
// denoting field or method-style access or application. A single element
// with no dot after it collapses to that element directly; otherwise Elts
// has at least 2 elements, except after a trailing dot with nothing
// following it (`a.`), which yields a one-element Chain covering the dot.
type Chain struct {
	Range token.Loc
	Elts  []Node
}

func (n *Chain) Loc() token.Loc { return n.Range }

// Predot decorates a chain with a leading dot, used for self-relative
// references. X is nil when the dot was followed by nothing the grammar
// recognizes as an atomic or chain (spec section 9's open question on
// predot handling; the original C parser leaks the node in this case, so
// there's no behavior to match — this package picks the empty-child
// option the spec offers).
type Predot struct {
	Range token.Loc
	X     Node
}

func (n *Predot) Loc() token.Loc { return n.Range }

// Space is a whitespace-separated sequence of chains. Always has at least
// 2 elements; a single element collapses to that element directly.
type Space struct {
	Range token.Loc
	Elts  []Node
}

func (n *Space) Loc() token.Loc { return n.Range }

// Ellipsis has two optional sides; either or both may be nil.
type Ellipsis struct {
	Range  token.Loc
	Before Node
	After  Node
}

func (n *Ellipsis) Loc() token.Loc { return n.Range }

// Colon is a binary pair. Both sides are always present: a colon with no
// right-hand side degenerates to its left side unchanged (spec section
// 4.6) rather than producing a Colon node.
type Colon struct {
	Range token.Loc
	X, Y  Node
}

func (n *Colon) Loc() token.Loc { return n.Range }

// Comma is a comma-separated list. It exists only when at least one comma
// token was observed at this level; Elts may still be empty (a bare `,`).
type Comma struct {
	Range token.Loc
	Elts  []Node
}

func (n *Comma) Loc() token.Loc { return n.Range }

// Semicolon is a semicolon-separated list, with the same existence rule as
// Comma.
type Semicolon struct {
	Range token.Loc
	Elts  []Node
}

func (n *Semicolon) Loc() token.Loc { return n.Range }
