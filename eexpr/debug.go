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

import (
	"fmt"
	"strings"
)

// Sprint renders n as a compact s-expression for tracing and test
// failures. It is not a formatter: pretty-printing eexprs back to source
// text is an explicit non-goal (spec section 1); this exists only so a
// human reading -trace output or a failed test diff can tell nodes apart.
func Sprint(n Node) string {
	var b strings.Builder
	sprint(&b, n)
	return b.String()
}

func sprint(b *strings.Builder, n Node) {
	if n == nil {
		b.WriteString("∅")
		return
	}
	switch x := n.(type) {
	case *Symbol:
		fmt.Fprintf(b, "%s", x.Text)
	case *Number:
		fmt.Fprintf(b, "NUMBER(%s)", x.Mantissa)
	case *Codepoint:
		fmt.Fprintf(b, "CODEPOINT(%q)", x.Value)
	case *String:
		b.WriteString("STRING(")
		fmt.Fprintf(b, "%q", x.Head)
		for _, part := range x.Parts {
			b.WriteString(" ")
			sprint(b, part.Expr)
			fmt.Fprintf(b, " %q", part.TextAfter)
		}
		b.WriteString(")")
	case *Paren:
		b.WriteString("PAREN(")
		sprint(b, x.X)
		b.WriteString(")")
	case *Brack:
		b.WriteString("BRACK(")
		sprint(b, x.X)
		b.WriteString(")")
	case *Brace:
		b.WriteString("BRACE(")
		sprint(b, x.X)
		b.WriteString(")")
	case *Block:
		sprintList(b, "BLOCK", x.Elts)
	case *Chain:
		sprintList(b, "CHAIN", x.Elts)
	case *Predot:
		b.WriteString("PREDOT(")
		sprint(b, x.X)
		b.WriteString(")")
	case *Space:
		sprintList(b, "SPACE", x.Elts)
	case *Ellipsis:
		b.WriteString("ELLIPSIS(")
		sprint(b, x.Before)
		b.WriteString(", ")
		sprint(b, x.After)
		b.WriteString(")")
	case *Colon:
		b.WriteString("COLON(")
		sprint(b, x.X)
		b.WriteString(", ")
		sprint(b, x.Y)
		b.WriteString(")")
	case *Comma:
		sprintList(b, "COMMA", x.Elts)
	case *Semicolon:
		sprintList(b, "SEMICOLON", x.Elts)
	default:
		fmt.Fprintf(b, "?%T", x)
	}
}

func sprintList(b *strings.Builder, tag string, elts []Node) {
	b.WriteString(tag)
	b.WriteString("[")
	for i, e := range elts {
		if i > 0 {
			b.WriteString(", ")
		}
		sprint(b, e)
	}
	b.WriteString("]")
}
