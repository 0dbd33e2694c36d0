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

package eexpr

// Walk traverses an eexpr tree in depth-first order. It calls before(node)
// first; if before returns true (or is nil), Walk recurses into node's
// non-nil children, then calls after(node). Either callback may be nil.
//
// This isn't required by the core grammar; it's the same convenience the
// teacher ships as cue/ast.Walk and the pack's malphas-lang parser ships as
// ast.Walk, so downstream consumers (symbol resolution, linting,
// pretty-printers) don't each reinvent tree recursion.
func Walk(n Node, before func(Node) bool, after func(Node)) {
	if n == nil {
		return
	}
	if before != nil && !before(n) {
		return
	}
	switch x := n.(type) {
	case *Symbol, *Number, *Codepoint:
		// leaves
	case *String:
		for _, part := range x.Parts {
			Walk(part.Expr, before, after)
		}
	case *Paren:
		Walk(x.X, before, after)
	case *Brack:
		Walk(x.X, before, after)
	case *Brace:
		Walk(x.X, before, after)
	case *Block:
		for _, e := range x.Elts {
			Walk(e, before, after)
		}
	case *Chain:
		for _, e := range x.Elts {
			Walk(e, before, after)
		}
	case *Predot:
		Walk(x.X, before, after)
	case *Space:
		for _, e := range x.Elts {
			Walk(e, before, after)
		}
	case *Ellipsis:
		Walk(x.Before, before, after)
		Walk(x.After, before, after)
	case *Colon:
		Walk(x.X, before, after)
		Walk(x.Y, before, after)
	case *Comma:
		for _, e := range x.Elts {
			Walk(e, before, after)
		}
	case *Semicolon:
		for _, e := range x.Elts {
			Walk(e, before, after)
		}
	default:
		panic("eexpr.Walk: unknown node type")
	}
	if after != nil {
		after(n)
	}
}
