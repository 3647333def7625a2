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

// parseFormatSwitch consumes a run of 2, 3, or 5 apostrophes. The trailing
// (?!') keeps a 4-apostrophe run from matching: the leading surplus
// apostrophe falls through as plain text and the remaining 3 toggle bold,
// which is MediaWiki's resolution of the ambiguity.
func (p *Parser) parseFormatSwitch() (wtast.InlineNode, bool) {
	p.ParseStartDefault()
	token, ok := p.ConsumeToken(`(?:'{5}|'''|'')(?!')`)
	if !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	var node *wtast.FormatSwitch
	switch len(token) {
	case 2:
		node = wtast.NewFormatSwitch(false, true)
	case 3:
		node = wtast.NewFormatSwitch(true, false)
	default:
		node = wtast.NewFormatSwitch(true, true)
	}
	return ParseSuccessful[wtast.InlineNode](p, node, true), true
}
