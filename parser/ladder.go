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

// parseSpace implements spec section 4.6: a whitespace-separated sequence
// of chains, with leading whitespace ignored and the one-element case
// collapsed to the bare chain.
func (p *parser) parseSpace() eexpr.Node {
	defer un(trace(p, "parseSpace"))

	if p.cur.peek().Kind == token.SPACE {
		p.cur.pop()
	}

	first := p.parseChain()
	if first == nil {
		return nil
	}

	elts := []eexpr.Node{first}
	last := first.Loc()
	for p.cur.peek().Kind == token.SPACE {
		p.cur.pop()
		n := p.parseChain()
		if n == nil {
			break
		}
		elts = append(elts, n)
		last = n.Loc()
	}

	if len(elts) == 1 {
		return first
	}
	return &eexpr.Space{Range: token.Covering(elts[0].Loc(), last), Elts: elts}
}

// parseEllipsis implements spec section 4.6. Ellipsis is not
// left-recursive: at most one ".." is consumed per node.
func (p *parser) parseEllipsis() eexpr.Node {
	defer un(trace(p, "parseEllipsis"))

	before := p.parseSpace()
	if p.cur.peek().Kind != token.ELLIPSIS {
		return before
	}
	dots := p.cur.peek()
	p.cur.pop()
	after := p.parseSpace()

	start := dots.Start
	if before != nil {
		start = before.Loc().Start
	}
	end := dots.End
	if after != nil {
		end = after.Loc().End
	}
	// Both sides absent is permitted but unusual (spec section 9's open
	// question); we accept the degenerate node rather than inventing an
	// error tag outside the four the spec defines.
	return &eexpr.Ellipsis{Range: token.Loc{Start: start, End: end}, Before: before, After: after}
}

// parseColon implements spec section 4.6. A trailing colon with no
// right-hand side is not an error: the left operand's range is extended
// to include the colon and returned unchanged.
func (p *parser) parseColon() eexpr.Node {
	defer un(trace(p, "parseColon"))

	left := p.parseEllipsis()
	if left == nil {
		return nil
	}
	if p.cur.peek().Kind != token.COLON {
		return left
	}
	colon := p.cur.peek()
	p.cur.pop()

	right := p.parseEllipsis()
	if right == nil {
		return eexpr.ExtendEnd(left, colon.End)
	}
	return &eexpr.Colon{Range: token.Covering(left.Loc(), right.Loc()), X: left, Y: right}
}
