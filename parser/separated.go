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
	"github.com/andrewthad/eexprs/token"
)

// parseSeparated implements the shared comma/semicolon list pattern of
// spec section 4.7: optional leading and trailing separators, no doubled
// separators, and a list node that exists only once at least one
// separator has actually been observed.
func (p *parser) parseSeparated(sep token.Kind, next func() eexpr.Node, build func(token.Loc, []eexpr.Node) eexpr.Node) eexpr.Node {
	var elts []eexpr.Node
	hasList := false
	start, end := token.NoPos, token.NoPos

	if p.cur.peek().Kind == sep {
		hasList = true
		tok := p.cur.peek()
		start, end = tok.Start, tok.End
		p.cur.pop()
	}

	for {
		n := next()

		switch {
		case n == nil && hasList:
			return build(token.Loc{Start: start, End: end}, elts)

		case n == nil:
			return nil

		case hasList:
			elts = append(elts, n)
			end = n.Loc().End
			if p.cur.peek().Kind == sep {
				end = p.cur.peek().End
				p.cur.pop()
				continue
			}
			return build(token.Loc{Start: start, End: end}, elts)

		default: // n != nil, no list yet
			if p.cur.peek().Kind == sep {
				hasList = true
				start = n.Loc().Start
				elts = append(elts, n)
				end = p.cur.peek().End
				p.cur.pop()
				continue
			}
			return n
		}
	}
}

// parseComma implements spec section 4.7 at the comma level: its
// next-level-down producer is parseColon.
func (p *parser) parseComma() eexpr.Node {
	defer un(trace(p, "parseComma"))
	return p.parseSeparated(token.COMMA, p.parseColon, func(loc token.Loc, elts []eexpr.Node) eexpr.Node {
		return &eexpr.Comma{Range: loc, Elts: elts}
	})
}

// parseSemicolon implements spec section 4.7 at the semicolon level: its
// next-level-down producer is parseComma. This is also the entry point
// the line driver calls once per top-level line.
func (p *parser) parseSemicolon() eexpr.Node {
	defer un(trace(p, "parseSemicolon"))
	return p.parseSeparated(token.SEMICOLON, p.parseComma, func(loc token.Loc, elts []eexpr.Node) eexpr.Node {
		return &eexpr.Semicolon{Range: loc, Elts: elts}
	})
}
