// Copyright 2026 Notedown Authors
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

// Package wtparse is the recursive-descent wikitext grammar: a stack of
// Context frames over a wtscan.Scanner cursor, one file per grammar
// production (heading, list item, paragraph, run, wikilink, ...).
package wtparse

import (
	"strings"

	"github.com/notedownorg/wikitext/pkg/wikilog"
	"github.com/notedownorg/wikitext/pkg/wtscan"
)

// frame is one entry of the context stack: the cursor snapshot taken when
// the frame was pushed, and the fully-merged terminator pattern in effect
// while it's on top (the frame's own pattern already OR'd with whatever
// was inherited from its parent, so the top frame always carries the
// complete set of active terminators).
type frame struct {
	snapshot wtscan.Position
	pattern  string // "" means no terminator is active
	label    string
}

// Parser drives the scanner through the grammar, maintaining the stack of
// backtracking context frames.
type Parser struct {
	scanner *wtscan.Scanner
	stack   []*frame
	log     *wikilog.Logger
	opts    *Options
}

func newParser(source string, opts *Options) *Parser {
	return &Parser{
		scanner: wtscan.New(source),
		log:     opts.logger(),
		opts:    opts,
	}
}

func (p *Parser) top() *frame {
	return p.stack[len(p.stack)-1]
}

// ParseStart pushes a new frame. When inheritTerminator is true the
// resulting terminator is pattern alternated with whatever the enclosing
// frame is already watching for; when false, pattern alone is active
// (the enclosing terminators are masked for the duration of this frame).
// An empty pattern with inheritTerminator true inherits the enclosing
// terminator completely unchanged.
func (p *Parser) ParseStart(pattern string, inheritTerminator bool) {
	p.parseStartLabeled(pattern, inheritTerminator, "")
}

// ParseStartDefault pushes a frame that inherits the enclosing terminator
// unchanged.
func (p *Parser) ParseStartDefault() {
	p.ParseStart("", true)
}

func (p *Parser) parseStartLabeled(pattern string, inheritTerminator bool, label string) {
	parent := ""
	if len(p.stack) > 0 {
		parent = p.top().pattern
	}

	merged := mergeTerminator(pattern, parent, inheritTerminator)
	f := &frame{snapshot: p.scanner.Pos(), pattern: merged, label: label}
	p.stack = append(p.stack, f)
	p.log.Debug("parse frame pushed", "label", label, "pattern", merged, "offset", f.snapshot.Offset)
}

func mergeTerminator(pattern, parent string, inherit bool) string {
	switch {
	case pattern == "":
		if inherit {
			return parent
		}
		return ""
	case !inherit || parent == "":
		return pattern
	default:
		return "(?:" + pattern + ")|(?:" + parent + ")"
	}
}

// ParseSuccessful pops the current frame. When accept is true the
// scanner's advanced position is kept (the frame's cursor state is
// committed); when false, the scanner rolls back to the frame's snapshot
// even though the call is still reporting success — used when a construct
// produced no new node because its effect was folded into an existing one.
func ParseSuccessful[T any](p *Parser, node T, accept bool) T {
	f := p.pop()
	if !accept {
		p.scanner.Restore(f.snapshot)
	}
	p.log.Debug("parse frame accepted", "label", f.label, "accept", accept)
	return node
}

// ParseFailed pops the current frame, restores the scanner to the frame's
// snapshot, and returns the zero value of T together with false.
func ParseFailed[T any](p *Parser) (T, bool) {
	f := p.pop()
	p.scanner.Restore(f.snapshot)
	p.log.Debug("parse frame rolled back", "label", f.label)
	var zero T
	return zero, false
}

func (p *Parser) pop() *frame {
	f := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	return f
}

// Fallback restores the scanner to the current frame's snapshot without
// popping it, for use inside a construct that wants to retry a sub-step
// from scratch.
func (p *Parser) Fallback() {
	p.scanner.Restore(p.top().snapshot)
}

// Accept advances the current frame's snapshot to the scanner's current
// position, so that a later Fallback() rolls back only to this point
// rather than all the way to where the frame was opened.
func (p *Parser) Accept() {
	p.top().snapshot = p.scanner.Pos()
}

// NeedsTerminate reports whether the scanner sits at end of input, or
// whether a terminator is active (the current frame's, or override when
// non-nil) and matches at the current position.
func (p *Parser) NeedsTerminate(override *string) bool {
	if p.scanner.AtEnd() {
		return true
	}
	pattern := p.top().pattern
	if override != nil {
		pattern = *override
	}
	if pattern == "" {
		return false
	}
	_, ok := p.scanner.LookAheadToken(pattern)
	return ok
}

// NeedsTerminateExceptNewline is the termination check ParseLineEnd uses
// after it has already consumed line breaks itself: end of input counts,
// and so does any active terminator match that is not just another "\n".
func (p *Parser) NeedsTerminateExceptNewline() bool {
	if p.scanner.AtEnd() {
		return true
	}
	pattern := p.top().pattern
	if pattern == "" {
		return false
	}
	m, ok := p.scanner.LookAheadToken(pattern)
	return ok && !strings.HasPrefix(m, "\n")
}

// SetTerminator swaps the current frame's terminator in place, for
// constructs whose delimiter set narrows partway through (a wikilink's
// pipe becomes literal once the first one is consumed).
func (p *Parser) SetTerminator(pattern string) {
	p.top().pattern = pattern
}

// FindTerminator returns the earliest offset >= current+minOffset at which
// the active terminator matches, or end of input if it never matches
// again, or there is no active terminator at all.
func (p *Parser) FindTerminator(minOffset int) int {
	pattern := p.top().pattern
	if pattern == "" {
		return p.scanner.Len()
	}
	from := p.scanner.Offset() + minOffset
	pos := p.scanner.FindFrom(pattern, from)
	if pos < 0 {
		return p.scanner.Len()
	}
	return pos
}

// ConsumeToken and LookAheadToken delegate straight to the scanner; they
// exist on Parser too so grammar files read uniformly as p.ConsumeToken(...).
func (p *Parser) ConsumeToken(pattern string) (string, bool) { return p.scanner.ConsumeToken(pattern) }
func (p *Parser) LookAheadToken(pattern string) (string, bool) {
	return p.scanner.LookAheadToken(pattern)
}

func (p *Parser) AtEnd() bool { return p.scanner.AtEnd() }

func (p *Parser) Pos() wtscan.Position { return p.scanner.Pos() }
