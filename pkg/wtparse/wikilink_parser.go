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

// parseWikiLink matches [[target]] and [[target|text]]. The target must be
// non-empty and stops at pipes, newlines, and any [[ or ]]; the [[
// alternative is what keeps wikilinks from nesting within themselves. Once
// the first pipe is consumed it becomes a literal character for the rest
// of the link, so the terminator narrows.
func (p *Parser) parseWikiLink() (wtast.InlineNode, bool) {
	p.ParseStart(`\||\n|\[\[|\]\]`, true)
	if _, ok := p.ConsumeToken(`\[\[`); !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	target := wtast.NewRun()
	if !p.parseRun(modeExpandableText, target) {
		return ParseFailed[wtast.InlineNode](p)
	}
	var text *wtast.Run
	if _, ok := p.ConsumeToken(`\|`); ok {
		p.SetTerminator(`\n|\[\[|\]\]`)
		text = wtast.NewRun()
		p.parseRun(modeRun, text)
	}
	if _, ok := p.ConsumeToken(`\]\]`); !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	return ParseSuccessful[wtast.InlineNode](p, wtast.NewWikiLink(*target, text), true), true
}
