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

// suspectableEnd marks positions where a higher-priority inline construct
// might begin: bracket openers, braces, tag or comment openers, format
// switches, and URL scheme prefixes. Plain text stops just before the
// earliest one so the run loop can give those parsers a chance.
const suspectableEnd = `\[|\{\{\{?|<(?:\s*\w|!--)|(?:'{5}|'''|'')(?!')|(?i:(?:\bhttps?:|\bftp:|\birc:|\bgopher:)//|//|\bnews:|\bmailto:)`

// parsePartialPlainText emits a chunk of literal text: always at least one
// rune, up to the next suspectable end or the active terminator, whichever
// comes first. Starting the suspect search one rune in is what lets a
// construct that just failed to parse fall through as text instead of
// looping forever.
func (p *Parser) parsePartialPlainText() (wtast.InlineNode, bool) {
	p.ParseStartDefault()
	if p.NeedsTerminate(nil) {
		return ParseFailed[wtast.InlineNode](p)
	}
	start := p.scanner.Offset()
	end := p.FindTerminator(1)
	if suspect := p.scanner.FindFrom(suspectableEnd, start+1); suspect >= 0 && suspect < end {
		end = suspect
	}
	text := p.scanner.Slice(start, end)
	p.scanner.MoveTo(end)
	return ParseSuccessful[wtast.InlineNode](p, wtast.NewPlainText(text), true), true
}
