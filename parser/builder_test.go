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
	"math/big"

	"github.com/cockroachdb/apd/v3"

	"github.com/andrewthad/eexprs/token"
)

// tb builds a post-lexed token stream by hand, standing in for the
// post-lexer this module doesn't include. Every constructor advances the
// builder's offset by the width of the lexeme it describes, so the
// resulting Start/End positions are realistic even though no actual source
// text is scanned.
type tb struct {
	file   *token.File
	offset int
}

func newTB() *tb {
	return &tb{file: token.NewFile("test.eexpr", 1 << 20)}
}

func (b *tb) pos() token.Pos {
	return b.file.Pos(b.offset)
}

func (b *tb) advance(n int) (start, end token.Pos) {
	start = b.pos()
	b.offset += n
	end = b.pos()
	return start, end
}

func (b *tb) sym(text string) token.Token {
	start, end := b.advance(len(text))
	return token.Token{Kind: token.SYMBOL, Start: start, End: end, Symbol: []byte(text)}
}

func (b *tb) number(mantissa int64) token.Token {
	start, end := b.advance(1)
	m := new(apd.BigInt).SetMathBigInt(big.NewInt(mantissa))
	return token.Token{Kind: token.NUMBER, Start: start, End: end, Mantissa: m, Radix: 10}
}

func (b *tb) codepoint(r rune) token.Token {
	start, end := b.advance(3)
	return token.Token{Kind: token.CODEPOINT, Start: start, End: end, Codepoint: r}
}

func (b *tb) plainString(text string) token.Token {
	start, end := b.advance(len(text) + 2)
	return token.Token{Kind: token.STRING, Start: start, End: end, Text: []byte(text), StringRole: token.Plain}
}

func (b *tb) stringSeg(role token.StringRole, text string) token.Token {
	start, end := b.advance(len(text) + 1)
	return token.Token{Kind: token.STRING, Start: start, End: end, Text: []byte(text), StringRole: role}
}

func (b *tb) wrap(kind token.WrapKind, open bool) token.Token {
	start, end := b.advance(1)
	return token.Token{Kind: token.WRAP, Start: start, End: end, WrapKind: kind, IsOpen: open}
}

func (b *tb) space() token.Token {
	start, end := b.advance(1)
	return token.Token{Kind: token.SPACE, Start: start, End: end}
}

func (b *tb) newline() token.Token {
	start, end := b.advance(1)
	return token.Token{Kind: token.NEWLINE, Start: start, End: end}
}

func (b *tb) comma() token.Token {
	start, end := b.advance(1)
	return token.Token{Kind: token.COMMA, Start: start, End: end}
}

func (b *tb) semicolon() token.Token {
	start, end := b.advance(1)
	return token.Token{Kind: token.SEMICOLON, Start: start, End: end}
}

func (b *tb) colon() token.Token {
	start, end := b.advance(1)
	return token.Token{Kind: token.COLON, Start: start, End: end}
}

func (b *tb) ellipsis() token.Token {
	start, end := b.advance(2)
	return token.Token{Kind: token.ELLIPSIS, Start: start, End: end}
}

func (b *tb) chain() token.Token {
	start, end := b.advance(1)
	return token.Token{Kind: token.CHAIN, Start: start, End: end}
}

func (b *tb) predot() token.Token {
	start, end := b.advance(1)
	return token.Token{Kind: token.PREDOT, Start: start, End: end}
}

func (b *tb) eof() token.Token {
	p := b.pos()
	return token.Token{Kind: token.EOF, Start: p, End: p}
}
