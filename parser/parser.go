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

// Package parser implements the eexpr recursive-descent parser: the
// precedence ladder, wrap/template handling, and the per-line error
// recovery described in spec sections 4 and 7.
package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/andrewthad/eexprs/eexpr"
	"github.com/andrewthad/eexprs/errors"
	"github.com/andrewthad/eexprs/token"
)

// Option configures a parse call, following the functional-options idiom
// cue/parser uses for its own mode flags.
type Option func(*parser)

// Trace turns on a call trace of the precedence ladder, written to w. It is
// a debugging knob, not a logging framework: this module has no CLI to
// expose it through (spec section 1 puts any driver surface out of
// scope), so a host program wires it in directly.
func Trace(w io.Writer) Option {
	return func(p *parser) {
		p.trace = true
		p.traceOut = w
	}
}

// parser holds all state threaded through the ladder: the cursor, the wrap
// stack, the recoverable error list, the fatal slot, and the accumulated
// output. There is exactly one parser per Parse call; nothing here is
// shared across calls or goroutines (spec section 5).
type parser struct {
	cur   *cursor
	wraps wrapStack
	errs  errors.List
	fatal *errors.Error
	out   []eexpr.Node

	// desynced is set when a nested production (currently parseBlock) has
	// already reported ExpectingNewlineOrDedent for the stray token the
	// cursor is still sitting on. run()'s own resync check consults it so
	// the same malformed line doesn't produce two identical diagnostics.
	desynced bool

	trace    bool
	traceOut io.Writer
	indent   int
}

func newParser(toks []token.Token, opts []Option) *parser {
	p := &parser{cur: newCursor(toks), traceOut: os.Stderr}
	for _, o := range opts {
		o(p)
	}
	return p
}

// setFatal installs the fatal error if none is set yet. Once fatal is set,
// it is first-writer-wins: later callers' attempts are no-ops, matching
// spec section 7's propagation policy.
func (p *parser) setFatal(pos token.Pos, tag errors.Tag, opener token.Pos, format string, args ...interface{}) {
	if p.fatal != nil {
		return
	}
	p.fatal = &errors.Error{Pos: pos, Tag: tag, Msg: fmt.Sprintf(format, args...), Opener: opener}
}

// recoverable appends a non-halting diagnostic.
func (p *parser) recoverable(pos token.Pos, tag errors.Tag, format string, args ...interface{}) {
	p.errs.Add(pos, tag, format, args...)
}

// Parse runs the parser to completion over toks, returning the top-level
// eexprs produced (one per line), the recoverable errors encountered in
// discovery order, and a fatal error if one halted the driver.
//
// Parse never panics on malformed input: even a completely unbalanced or
// empty stream yields a (possibly empty) node list plus diagnostics.
func Parse(toks []token.Token, opts ...Option) ([]eexpr.Node, errors.List, error) {
	p := newParser(toks, opts)
	p.run()
	var fatal error
	if p.fatal != nil {
		fatal = p.fatal
	}
	return p.out, p.errs, fatal
}

// run is the line driver (spec section 4.8): it consumes top-level lines
// separated by NEWLINE tokens, stopping as soon as the fatal slot is set.
func (p *parser) run() {
	for {
		if p.fatal != nil {
			return
		}
		if p.cur.peek().Kind == token.EOF {
			return
		}

		n := p.parseSemicolon()
		if n != nil {
			p.out = append(p.out, n)
		}
		if p.fatal != nil {
			return
		}

		tok := p.cur.peek()
		switch {
		case tok.Kind == token.NEWLINE:
			p.cur.pop()

		case tok.Kind == token.EOF:
			return

		case tok.Kind == token.WRAP && !tok.IsOpen:
			// A stray close-wrap at the top level: nothing on our stack
			// could have matched it.
			top, ok := p.wraps.top()
			opener := token.NoPos
			if ok {
				opener = top.pos
			}
			p.setFatal(tok.Start, errors.UnbalancedWrap, opener, "unexpected closing %s with nothing open", tok.WrapKind)
			return

		default:
			// Either the line produced nothing and a token we don't know
			// how to start an expression with remains (silent recovery:
			// no tag in spec section 6 covers "unexpected token"), or the
			// line produced a tree but something other than a newline,
			// EOF, or close-wrap trails it. The source asserts in the
			// latter case (spec section 9's open question); we instead
			// flag it and resynchronize so later lines still parse.
			//
			// If a nested parseBlock already reported this exact desync
			// (the cursor is still sitting on the token it flagged), don't
			// report it a second time here.
			if n != nil && !p.desynced {
				p.recoverable(tok.Start, errors.ExpectingNewlineOrDedent, "expected newline or end of input after expression")
			}
			p.desynced = false
			p.recoverLine()
		}
	}
}

// recoverLine resynchronizes after a line that left stray tokens behind,
// by re-balancing block-indent pairs and then skipping to the next
// newline (spec section 4.8). It relies on the post-lexer's guarantee that
// indent openers and dedent closers are already correctly paired.
func (p *parser) recoverLine() {
	depth := p.wraps.blockDepth()
	p.wraps.reset()

	for {
		for depth > 0 {
			tok := p.cur.peek()
			if tok.Kind == token.EOF {
				return
			}
			if tok.Kind == token.WRAP && tok.WrapKind == token.Block {
				if tok.IsOpen {
					depth++
				} else {
					depth--
				}
			}
			p.cur.pop()
		}

		reopened := false
		for {
			tok := p.cur.peek()
			if tok.Kind == token.NEWLINE || tok.Kind == token.EOF {
				return
			}
			if tok.Kind == token.WRAP && tok.WrapKind == token.Block && tok.IsOpen {
				depth++
				p.cur.pop()
				reopened = true
				break
			}
			p.cur.pop()
		}
		if !reopened {
			return
		}
	}
}
