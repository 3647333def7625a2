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

package wtparse

import "github.com/notedownorg/wikitext/pkg/wtast"

// lineEndWhitespace matches the whitespace that may sit on an otherwise
// blank line: everything horizontal, but never '\n' itself.
const lineEndWhitespace = `[\f\r\t\v\x85\p{Z}]+`

// parseLineEnd consumes the line break(s) after lastLine and decides the
// fate of a still-open paragraph:
//
//	abc TERM           -> compact [abc]
//	abc \n TERM        -> closed [abc]
//	abc \n ws \n TERM  -> closed [abc], then a compact paragraph holding ws
//
// A single line break with more content after it keeps the paragraph open;
// the next parseLine merges into it (or starts a list item/heading).
//
// ok is false when no line break could be consumed, which means the
// enclosing terminator (or end of input) was reached. extra is non-nil
// when a new trailing compact paragraph is born: in the third case above,
// holding the blank line's whitespace, and when lastLine is a heading or
// list item whose line break is followed by the end of the scope, holding
// whatever whitespace came after that break.
func (p *Parser) parseLineEnd(lastLine wtast.LineNode) (extra wtast.LineNode, ok bool) {
	open, _ := lastLine.(*wtast.Paragraph)
	if open != nil && !open.Compact {
		open = nil
	}
	p.ParseStartDefault()
	if _, ok := p.ConsumeToken(`\n`); !ok {
		return ParseFailed[wtast.LineNode](p)
	}
	afterBreak := p.Pos()
	ws, _ := p.ConsumeToken(lineEndWhitespace)

	if open != nil {
		if _, ok := p.ConsumeToken(`\n`); ok {
			// Two line breaks: the paragraph is over.
			open.Compact = false
			if p.NeedsTerminateExceptNewline() {
				trailing := wtast.NewParagraph(true)
				trailing.AppendText(ws)
				return ParseSuccessful[wtast.LineNode](p, trailing, true), true
			}
			return ParseSuccessful[wtast.LineNode](p, nil, true), true
		}
		if p.NeedsTerminateExceptNewline() {
			// One line break then nothing more in this scope. Bare
			// trailing whitespace stays inside the paragraph, keeping it
			// open; with none, the paragraph closes.
			if ws == "" {
				open.Compact = false
			} else {
				open.AppendText("\n" + ws)
			}
			return ParseSuccessful[wtast.LineNode](p, nil, true), true
		}
		// The line break is consumed but the paragraph stays open: the
		// next line continues it unless a list item or heading takes over.
		p.scanner.Restore(afterBreak)
		return ParseSuccessful[wtast.LineNode](p, nil, true), true
	}

	// lastLine is a heading or list item; it never absorbs whitespace.
	if p.NeedsTerminateExceptNewline() {
		trailing := wtast.NewParagraph(true)
		trailing.AppendText(ws)
		return ParseSuccessful[wtast.LineNode](p, trailing, true), true
	}
	p.scanner.Restore(afterBreak)
	return ParseSuccessful[wtast.LineNode](p, nil, true), true
}
