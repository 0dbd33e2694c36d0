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

import "fmt"

// printTrace writes one indented trace line, mirroring
// cue/parser.(*parser).printTrace: the indentation tracks the current
// ladder depth so a trace read top to bottom shows the recursion shape.
func (p *parser) printTrace(a ...interface{}) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	const n = len(dots)
	tok := p.cur.peek()
	fmt.Fprintf(p.traceOut, "%5d:%3d: ", tok.Start.Position().Line, tok.Start.Position().Column)
	i := 2 * p.indent
	for i > n {
		fmt.Fprint(p.traceOut, dots)
		i -= n
	}
	fmt.Fprint(p.traceOut, dots[0:i])
	fmt.Fprintln(p.traceOut, a...)
}

// trace prints a ladder function's entry and bumps the indent. Pair with
// un via: defer un(trace(p, "parseSpace")).
func trace(p *parser, msg string) *parser {
	if !p.trace {
		return p
	}
	p.printTrace(msg, "(")
	p.indent++
	return p
}

func un(p *parser) {
	if !p.trace {
		return
	}
	p.indent--
	p.printTrace(")")
}
