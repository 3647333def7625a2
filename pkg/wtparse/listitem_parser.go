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

// parseListItem matches lines whose prefix gives them block-level meaning:
// list markers ([*#:;]+ runs, possibly mixed for nesting), horizontal
// rules (four or more dashes), and the single leading space that marks a
// preformatted line. The inline run after the prefix may be empty.
func (p *Parser) parseListItem() (*wtast.ListItem, bool) {
	p.ParseStartDefault()
	prefix, ok := p.ConsumeToken(`[*#:;]+|-{4,}| `)
	if !ok {
		return ParseFailed[*wtast.ListItem](p)
	}
	node := wtast.NewListItem(prefix)
	p.parseRun(modeRun, node)
	return ParseSuccessful(p, node, true), true
}
