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

import "github.com/andrewthad/eexprs/token"

// ExtendEnd widens n's range to end at end, mutating n in place and
// returning it. The parser uses this for the one case where a node's
// range must grow after the node already exists: a trailing colon with no
// right-hand side (spec section 4.6) extends the left operand's range to
// include the colon rather than allocating a Colon node.
func ExtendEnd(n Node, end token.Pos) Node {
	switch x := n.(type) {
	case *Symbol:
		x.Range.End = end
	case *Number:
		x.Range.End = end
	case *Codepoint:
		x.Range.End = end
	case *String:
		x.Range.End = end
	case *Paren:
		x.Range.End = end
	case *Brack:
		x.Range.End = end
	case *Brace:
		x.Range.End = end
	case *Block:
		x.Range.End = end
	case *Chain:
		x.Range.End = end
	case *Predot:
		x.Range.End = end
	case *Space:
		x.Range.End = end
	case *Ellipsis:
		x.Range.End = end
	case *Colon:
		x.Range.End = end
	case *Comma:
		x.Range.End = end
	case *Semicolon:
		x.Range.End = end
	default:
		panic("eexpr: ExtendEnd: unknown node type")
	}
	return n
}
