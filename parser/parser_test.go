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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"

	"github.com/andrewthad/eexprs/eexpr"
	"github.com/andrewthad/eexprs/errors"
	"github.com/andrewthad/eexprs/token"
)

func parseOK(t *testing.T, toks []token.Token) []eexpr.Node {
	t.Helper()
	out, errs, fatal := Parse(toks)
	if fatal != nil {
		t.Fatalf("unexpected fatal error: %v\ndump: %s", fatal, pretty.Sprint(out))
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected recoverable errors: %v", errs)
	}
	return out
}

func TestParseCommaList(t *testing.T) {
	b := newTB()
	toks := []token.Token{
		b.sym("a"), b.comma(), b.space(),
		b.sym("b"), b.comma(), b.space(),
		b.sym("c"),
		b.newline(), b.eof(),
	}
	out := parseOK(t, toks)
	if len(out) != 1 {
		t.Fatalf("want 1 top-level node, got %d: %s", len(out), pretty.Sprint(out))
	}
	got := eexpr.Sprint(out[0])
	want := "COMMA[a, b, c]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseSemicolonInParen(t *testing.T) {
	b := newTB()
	toks := []token.Token{
		b.wrap(token.Paren, true),
		b.sym("a"), b.semicolon(), b.space(), b.sym("b"),
		b.wrap(token.Paren, false),
		b.newline(), b.eof(),
	}
	out := parseOK(t, toks)
	if len(out) != 1 {
		t.Fatalf("want 1 top-level node, got %d", len(out))
	}
	got := eexpr.Sprint(out[0])
	want := "PAREN(SEMICOLON[a, b])"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseChain(t *testing.T) {
	b := newTB()
	toks := []token.Token{
		b.sym("a"), b.chain(), b.sym("b"), b.chain(), b.sym("c"),
		b.newline(), b.eof(),
	}
	out := parseOK(t, toks)
	got := eexpr.Sprint(out[0])
	want := "CHAIN[a, b, c]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParsePredot(t *testing.T) {
	b := newTB()
	toks := []token.Token{
		b.predot(), b.sym("x"),
		b.newline(), b.eof(),
	}
	out := parseOK(t, toks)
	got := eexpr.Sprint(out[0])
	want := "PREDOT(x)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseTemplatedString(t *testing.T) {
	b := newTB()
	toks := []token.Token{
		b.stringSeg(token.Open, "pre"),
		b.sym("x"),
		b.stringSeg(token.Close, "post"),
		b.newline(), b.eof(),
	}
	out := parseOK(t, toks)
	got := eexpr.Sprint(out[0])
	want := `STRING("pre" x "post")`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseSpaceSeparated(t *testing.T) {
	b := newTB()
	toks := []token.Token{
		b.sym("a"), b.space(), b.sym("b"), b.space(), b.sym("c"),
		b.newline(), b.eof(),
	}
	out := parseOK(t, toks)
	got := eexpr.Sprint(out[0])
	want := "SPACE[a, b, c]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseColonEllipsis(t *testing.T) {
	b := newTB()
	toks := []token.Token{
		b.sym("a"), b.colon(), b.space(), b.sym("b"), b.space(), b.ellipsis(),
		b.newline(), b.eof(),
	}
	out := parseOK(t, toks)
	got := eexpr.Sprint(out[0])
	want := "COLON(a, ELLIPSIS(b, ∅))"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseUnclosedParenIsFatal(t *testing.T) {
	b := newTB()
	toks := []token.Token{
		b.wrap(token.Paren, true),
		b.sym("a"),
		b.eof(),
	}
	out, errs, fatal := Parse(toks)
	if fatal == nil {
		t.Fatalf("want a fatal error, got none; out=%s", pretty.Sprint(out))
	}
	fe, ok := fatal.(*errors.Error)
	if !ok {
		t.Fatalf("want *errors.Error, got %T", fatal)
	}
	if fe.Tag != errors.UnbalancedWrap {
		t.Fatalf("want UnbalancedWrap, got %v", fe.Tag)
	}
	if len(out) != 1 {
		t.Fatalf("want the partially-built paren node preserved, got %d nodes", len(out))
	}
	if got := eexpr.Sprint(out[0]); got != "PAREN(a)" {
		t.Fatalf("got %q", got)
	}
	_ = errs
}

func TestParseTwoLines(t *testing.T) {
	b := newTB()
	toks := []token.Token{
		b.sym("a"), b.newline(),
		b.sym("b"), b.newline(),
		b.eof(),
	}
	out := parseOK(t, toks)
	if len(out) != 2 {
		t.Fatalf("want 2 top-level lines, got %d", len(out))
	}
	if diff := cmp.Diff("a", eexpr.Sprint(out[0])); diff != "" {
		t.Fatalf("line 1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("b", eexpr.Sprint(out[1])); diff != "" {
		t.Fatalf("line 2 mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStrayTrailingTokensRecover(t *testing.T) {
	// "a : b : c": the colon level only ever consumes one colon, so the
	// second ": c" trails the line's expression. This exercises spec
	// section 9's resolved open question: a stray trailer is flagged
	// EXPECTING_NEWLINE_OR_DEDENT and the driver resynchronizes at the
	// next newline, rather than halting the whole parse.
	b := newTB()
	toks := []token.Token{
		b.sym("a"), b.colon(), b.space(), b.sym("b"),
		b.colon(), b.space(), b.sym("c"),
		b.newline(), b.eof(),
	}
	out, errs, fatal := Parse(toks)
	if fatal != nil {
		t.Fatalf("unexpected fatal: %v", fatal)
	}
	if len(errs) != 1 || errs[0].Tag != errors.ExpectingNewlineOrDedent {
		t.Fatalf("want exactly one ExpectingNewlineOrDedent, got %v", errs)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 top-level node, got %d: %s", len(out), pretty.Sprint(out))
	}
	if got := eexpr.Sprint(out[0]); got != "COLON(a, b)" {
		t.Fatalf("got %q", got)
	}
}

func TestParseBlock(t *testing.T) {
	// An indent-opened block closed by a matching dedent: "a" on its own
	// line, properly terminated by a NEWLINE before the dedent.
	b := newTB()
	toks := []token.Token{
		b.wrap(token.Block, true),
		b.sym("a"), b.newline(),
		b.wrap(token.Block, false),
		b.newline(), b.eof(),
	}
	out := parseOK(t, toks)
	if len(out) != 1 {
		t.Fatalf("want 1 top-level node, got %d: %s", len(out), pretty.Sprint(out))
	}
	if got := eexpr.Sprint(out[0]); got != "BLOCK[a]" {
		t.Fatalf("got %q", got)
	}
}

func TestParseBlockStrayTokenRecoversOnce(t *testing.T) {
	// Inside the block, "a" is followed by a stray "b" instead of a
	// newline or dedent. This is the desync spec section 4.2 describes
	// (EXPECTING_NEWLINE_OR_DEDENT); it must be reported exactly once, not
	// once by parseBlock and again by run() when the partial block bubbles
	// up with the cursor still sitting on the same stray token.
	b := newTB()
	toks := []token.Token{
		b.wrap(token.Block, true),
		b.sym("a"), b.sym("b"),
		b.newline(), b.eof(),
	}
	out, errs, fatal := Parse(toks)
	if fatal != nil {
		t.Fatalf("unexpected fatal: %v", fatal)
	}
	if len(errs) != 1 || errs[0].Tag != errors.ExpectingNewlineOrDedent {
		t.Fatalf("want exactly one ExpectingNewlineOrDedent, got %v", errs)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 top-level node, got %d: %s", len(out), pretty.Sprint(out))
	}
	if got := eexpr.Sprint(out[0]); got != "BLOCK[a]" {
		t.Fatalf("got %q", got)
	}
}

func TestParseMissingTemplateExprIsRecoverable(t *testing.T) {
	b := newTB()
	toks := []token.Token{
		b.stringSeg(token.Open, "pre"),
		b.stringSeg(token.Close, "post"),
		b.newline(), b.eof(),
	}
	out, errs, fatal := Parse(toks)
	if fatal != nil {
		t.Fatalf("unexpected fatal: %v", fatal)
	}
	if len(errs) != 1 || errs[0].Tag != errors.MissingTemplateExpr {
		t.Fatalf("want exactly one MissingTemplateExpr, got %v", errs)
	}
	if len(out) != 1 {
		t.Fatalf("want the string node still produced, got %d", len(out))
	}
}
