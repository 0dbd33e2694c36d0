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

package parser

import "github.com/andrewthad/eexprs/token"

// cursor exposes peek/pop over a fully buffered token stream. It is the
// parser's only point of contact with the input; everything else works in
// terms of the token it returns.
//
// The cursor transparently skips tokens flagged Transparent on both
// operations: those tokens exist in the stream only so a downstream
// colorizer can recover the original coloring, and the grammar never sees
// them.
type cursor struct {
	toks    []token.Token
	pos     int
	eof     token.Token
	prevEnd token.Pos
}

func newCursor(toks []token.Token) *cursor {
	c := &cursor{toks: toks}
	// Synthesize a sentinel EOF in case the caller's stream doesn't end
	// in one (it always should, per spec section 6, but peek must never
	// fail regardless).
	end := token.NoPos
	if n := len(toks); n > 0 {
		end = toks[n-1].End
	}
	c.eof = token.Token{Kind: token.EOF, Start: end, End: end}
	c.prevEnd = end
	c.skipTransparent()
	return c
}

func (c *cursor) skipTransparent() {
	for c.pos < len(c.toks) && c.toks[c.pos].Transparent {
		c.pos++
	}
}

// peek returns the current token without consuming it. It never fails:
// past the end of the stream it returns a sentinel EOF token.
func (c *cursor) peek() *token.Token {
	if c.pos >= len(c.toks) {
		return &c.eof
	}
	return &c.toks[c.pos]
}

// pop advances past the current token. It is a no-op at EOF.
func (c *cursor) pop() {
	if c.pos >= len(c.toks) {
		return
	}
	c.prevEnd = c.toks[c.pos].End
	c.pos++
	c.skipTransparent()
}

// lastEnd returns the end position of the most recently consumed token,
// used to give a partial node a sensible End when recovery cuts a
// production short before it found a proper closing token.
func (c *cursor) lastEnd() token.Pos { return c.prevEnd }

// at reports whether the current token has the given kind.
func (c *cursor) at(k token.Kind) bool { return c.peek().Kind == k }
