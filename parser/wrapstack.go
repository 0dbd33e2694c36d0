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

import "github.com/andrewthad/eexprs/token"

// frameKind distinguishes the five things that can be open on the wrap
// stack: the four bracket/indent wraps, plus a string template run, which
// is tracked the same way so that a stray template-middle/close token at
// the top level is detected by the same imbalance check as a stray `)`.
type frameKind int

const (
	frameParen frameKind = iota
	frameBrack
	frameBrace
	frameBlock
	frameTemplate
)

// frame records one open wrap's kind and the source location of its
// opener, so that an imbalance at any depth can point at exactly the
// opener that never got closed.
type frame struct {
	kind frameKind
	pos  token.Pos
}

// wrapStack is the parser's shared mutable stack of open-wrap frames. It
// holds only back-references (locations) into the source, never pointers
// into the tree being built.
type wrapStack struct {
	frames []frame
}

func (s *wrapStack) push(k frameKind, pos token.Pos) {
	s.frames = append(s.frames, frame{kind: k, pos: pos})
}

// pop removes and returns the top frame. It panics if the stack is empty;
// callers must check depth/empty first, since popping an empty wrap stack
// is always a parser bug, never a user-facing condition (that case is
// UNBALANCED_WRAP, detected by looking at the stack, not by popping it).
func (s *wrapStack) pop() frame {
	n := len(s.frames) - 1
	f := s.frames[n]
	s.frames = s.frames[:n]
	return f
}

func (s *wrapStack) top() (frame, bool) {
	if len(s.frames) == 0 {
		return frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

func (s *wrapStack) empty() bool { return len(s.frames) == 0 }

// blockDepth reports the number of open block frames currently on the stack,
// used by the line driver's per-line recovery (spec section 4.8) to decide
// how many dedents it must still consume while resynchronizing.
func (s *wrapStack) blockDepth() int {
	n := 0
	for _, f := range s.frames {
		if f.kind == frameBlock {
			n++
		}
	}
	return n
}

func (s *wrapStack) reset() { s.frames = s.frames[:0] }
