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

// isChainContinuation reports whether tok can extend a chain: a '.' dot, an
// open wrap (juxtaposition), or the start of a (possibly templated)
// string, also via juxtaposition. This single predicate drives both "does
// a chain start here at all" and "does the chain continue" in
// parseChain, per spec section 4.5.
func isChainContinuation(tok *token.Token) bool {
	switch {
	case tok.Kind == token.CHAIN:
		return true
	case tok.Kind == token.WRAP && tok.IsOpen:
		return true
	case tok.Kind == token.STRING && (tok.StringRole == token.Plain || tok.StringRole == token.Open):
		return true
	default:
		return false
	}
}

// parseChain implements spec section 4.5:
//
//	chain ::= PREDOT? atomic (chainTail)*
//	chainTail ::= CHAIN atomic | openWrap | stringOpen
func (p *parser) parseChain() eexpr.Node {
	defer un(trace(p, "parseChain"))

	hasPredot := false
	var predotPos token.Pos
	if p.cur.peek().Kind == token.PREDOT {
		predotPos = p.cur.peek().Start
		hasPredot = true
		p.cur.pop()
	}

	first := p.parseAtomic()
	if first == nil {
		if hasPredot {
			// Spec section 9's open question: a predot with nothing
			// following it. The original C parser dereferences a NULL
			// chain pointer here; we instead produce a PREDOT with an
			// empty child, one of the two options the spec names.
			return &eexpr.Predot{Range: token.Loc{Start: predotPos, End: predotPos}}
		}
		return nil
	}

	lookahead := p.cur.peek()
	if !isChainContinuation(lookahead) {
		if hasPredot {
			return &eexpr.Predot{Range: token.Loc{Start: predotPos, End: first.Loc().End}, X: first}
		}
		return first
	}

	elts := []eexpr.Node{first}
	last := first.Loc()
	if lookahead.Kind == token.CHAIN {
		last = lookahead.Loc()
		p.cur.pop()
	}

	for {
		n := p.parseAtomic()
		if n == nil {
			break
		}
		elts = append(elts, n)
		last = n.Loc()

		tok := p.cur.peek()
		if tok.Kind == token.CHAIN {
			last = tok.Loc()
			p.cur.pop()
			continue
		}
		if isChainContinuation(tok) {
			// Open wrap or string start: leave it for the next
			// iteration's parseAtomic (juxtaposition-chain).
			continue
		}
		break
	}

	chain := &eexpr.Chain{Range: token.Covering(elts[0].Loc(), last), Elts: elts}
	if hasPredot {
		return &eexpr.Predot{Range: token.Loc{Start: predotPos, End: last.End}, X: chain}
	}
	return chain
}
