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

// parseLine parses one logical line: a list item, a heading, or (always as
// the fallback) a compact paragraph. produced is false when the content
// was merged into lastLine instead of yielding a new node.
func (p *Parser) parseLine(lastLine wtast.LineNode) (node wtast.LineNode, produced bool) {
	p.ParseStart(`\n`, true)
	if li, ok := p.parseListItem(); ok {
		return ParseSuccessful[wtast.LineNode](p, li, true), true
	}
	if h, ok := p.parseHeading(); ok {
		return ParseSuccessful[wtast.LineNode](p, h, true), true
	}
	para, merged := p.parseCompactParagraph(lastLine)
	if merged {
		return ParseSuccessful[wtast.LineNode](p, nil, true), false
	}
	return ParseSuccessful[wtast.LineNode](p, para, true), true
}
