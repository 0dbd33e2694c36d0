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

import (
	"github.com/andrewthad/eexprs/eexpr"
	"github.com/andrewthad/eexprs/errors"
	"github.com/andrewthad/eexprs/token"
)

// parseAtomic implements spec section 4.4: it dispatches on the current
// token and either produces a leaf/wrap/template node, or returns nil
// (absent) without consuming anything or recording an error.
func (p *parser) parseAtomic() eexpr.Node {
	defer un(trace(p, "parseAtomic"))
	tok := p.cur.peek()
	switch tok.Kind {
	case token.SYMBOL:
		n := &eexpr.Symbol{Range: tok.Loc(), Text: tok.Symbol}
		p.cur.pop()
		return n
	case token.NUMBER:
		n := &eexpr.Number{
			Range:            tok.Loc(),
			Mantissa:         tok.Mantissa,
			Radix:            tok.Radix,
			FractionalDigits: tok.FractionalDigits,
			Exponent:         tok.Exponent,
		}
		p.cur.pop()
		return n
	case token.CODEPOINT:
		n := &eexpr.Codepoint{Range: tok.Loc(), Value: tok.Codepoint}
		p.cur.pop()
		return n
	case token.STRING:
		// A Middle/Close/Corrupt segment never starts an expression: it
		// terminates an enclosing template. Arriving with no template frame
		// on top of the wrap stack, it is unbalanced and fatal. Only
		// Plain/Open begin something parseTemplate should build.
		if tok.StringRole != token.Plain && tok.StringRole != token.Open {
			if top, has := p.wraps.top(); !has || top.kind != frameTemplate {
				opener := token.NoPos
				if has {
					opener = top.pos
				}
				p.setFatal(tok.Start, errors.UnbalancedWrap, opener, "string template segment with no open template")
			}
			return nil
		}
		return p.parseTemplate()
	case token.WRAP:
		if tok.IsOpen {
			return p.parseWrap()
		}
		return nil
	default:
		return nil
	}
}

func wrapToFrame(wk token.WrapKind) frameKind {
	switch wk {
	case token.Paren:
		return frameParen
	case token.Brack:
		return frameBrack
	case token.Brace:
		return frameBrace
	case token.Block:
		return frameBlock
	default:
		panic("parser: unknown wrap kind")
	}
}

// parseWrap implements spec section 4.2: it is triggered when peek is an
// open WRAP token, pushes a frame, and dispatches by wrap kind.
func (p *parser) parseWrap() eexpr.Node {
	defer un(trace(p, "parseWrap"))
	open := p.cur.peek()
	openPos := open.Start
	wk := open.WrapKind
	fk := wrapToFrame(wk)
	p.wraps.push(fk, openPos)
	p.cur.pop()

	if wk == token.Block {
		return p.parseBlock(openPos, fk)
	}
	return p.parseBracket(openPos, wk, fk)
}

// isCloseOf reports whether tok is the closing WRAP token of kind wk.
func isCloseOf(tok *token.Token, wk token.WrapKind) bool {
	return tok.Kind == token.WRAP && !tok.IsOpen && tok.WrapKind == wk
}

// parseBracket handles paren, brack, and brace wraps: after the opener,
// parse exactly one optional semicolon-level expression, then require a
// matching close at the top of the wrap stack.
func (p *parser) parseBracket(openPos token.Pos, wk token.WrapKind, fk frameKind) eexpr.Node {
	defer un(trace(p, "parseBracket"))

	var x eexpr.Node
	if !isCloseOf(p.cur.peek(), wk) {
		x = p.parseSemicolon()
	}

	end := openPos
	if isCloseOf(p.cur.peek(), wk) {
		if top, has := p.wraps.top(); has && top.kind == fk {
			p.wraps.pop()
		}
		tok := p.cur.peek()
		end = tok.End
		p.cur.pop()
	} else {
		opener := token.NoPos
		if top, has := p.wraps.top(); has {
			opener = top.pos
			p.wraps.pop()
		}
		p.setFatal(p.cur.peek().Start, errors.UnbalancedWrap, opener, "unmatched opening %s", wk)
		end = p.cur.lastEnd()
		if !end.IsValid() {
			end = openPos
		}
	}

	loc := token.Loc{Start: openPos, End: end}
	switch wk {
	case token.Paren:
		return &eexpr.Paren{Range: loc, X: x}
	case token.Brack:
		return &eexpr.Brack{Range: loc, X: x}
	case token.Brace:
		return &eexpr.Brace{Range: loc, X: x}
	default:
		panic("parser: unreachable wrap kind")
	}
}

// parseBlock handles the indent-opened wrap: after the opener, repeatedly
// parse a semicolon-expression then expect either a matching dedent or a
// NEWLINE at the same level.
func (p *parser) parseBlock(openPos token.Pos, fk frameKind) eexpr.Node {
	defer un(trace(p, "parseBlock"))

	var elts []eexpr.Node
	end := openPos

	for {
		if isCloseOf(p.cur.peek(), token.Block) {
			if top, has := p.wraps.top(); has && top.kind == fk {
				p.wraps.pop()
			}
			tok := p.cur.peek()
			end = tok.End
			p.cur.pop()
			return &eexpr.Block{Range: token.Loc{Start: openPos, End: end}, Elts: elts}
		}

		n := p.parseSemicolon()
		if n != nil {
			elts = append(elts, n)
			end = n.Loc().End
		}

		tok := p.cur.peek()
		switch {
		case tok.Kind == token.NEWLINE:
			p.cur.pop()
		case isCloseOf(tok, token.Block):
			// handled at the top of the next iteration
		default:
			// The cursor is left sitting on tok, unconsumed. Enclosing
			// parseBlock calls and run() meet the same token, so desynced
			// tells them not to report this desync a second time. The block
			// frame stays on the wrap stack so recoverLine counts it and
			// consumes the matching dedent.
			if !p.desynced {
				p.recoverable(tok.Start, errors.ExpectingNewlineOrDedent, "expected newline or dedent inside block")
			}
			p.desynced = true
			end = p.cur.lastEnd()
			if !end.IsValid() {
				end = openPos
			}
			return &eexpr.Block{Range: token.Loc{Start: openPos, End: end}, Elts: elts}
		}
	}
}

// parseTemplate implements spec section 4.3.
func (p *parser) parseTemplate() eexpr.Node {
	defer un(trace(p, "parseTemplate"))

	tok := p.cur.peek()
	start, end := tok.Start, tok.End
	head := tok.Text

	switch tok.StringRole {
	case token.Plain:
		p.cur.pop()
		return &eexpr.String{Range: token.Loc{Start: start, End: end}, Head: head}

	case token.Open:
		p.cur.pop()
		p.wraps.push(frameTemplate, start)
		var parts []eexpr.StringPart
		for {
			expr := p.parseSpace()
			cur := p.cur.peek()
			atNextSegment := cur.Kind == token.STRING && (cur.StringRole == token.Middle || cur.StringRole == token.Close)

			if expr == nil && atNextSegment {
				p.recoverable(cur.Start, errors.MissingTemplateExpr, "missing expression in string template")
			}

			if !atNextSegment {
				p.recoverable(cur.Start, errors.MissingCloseTemplate, "missing closing string template segment")
				parts = append(parts, eexpr.StringPart{Expr: expr})
				end = p.cur.lastEnd()
				if !end.IsValid() {
					end = cur.Start
				}
				if top, has := p.wraps.top(); has && top.kind == frameTemplate {
					p.wraps.pop()
				}
				return &eexpr.String{Range: token.Loc{Start: start, End: end}, Head: head, Parts: parts}
			}

			segText, segEnd, role := cur.Text, cur.End, cur.StringRole
			p.cur.pop()
			parts = append(parts, eexpr.StringPart{Expr: expr, TextAfter: segText})
			end = segEnd

			if role == token.Close {
				if top, has := p.wraps.top(); has && top.kind == frameTemplate {
					p.wraps.pop()
				}
				return &eexpr.String{Range: token.Loc{Start: start, End: end}, Head: head, Parts: parts}
			}
			// role == Middle: loop for the next embedded expression.
		}

	default:
		// parseAtomic only ever dispatches here for Plain/Open; every other
		// role is filtered out before parseTemplate is called.
		panic("parser: parseTemplate called with non-Plain/Open role")
	}
}
