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

// parseComment matches <!-- ... -->. The content is opaque: no terminator
// or nested construct applies inside, only the literal closer. An
// unterminated comment fails so the "<" degrades to plain text.
func (p *Parser) parseComment() (wtast.InlineNode, bool) {
	p.ParseStartDefault()
	if _, ok := p.ConsumeToken(`<!--`); !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	start := p.scanner.Offset()
	end := p.scanner.FindFrom(`-->`, start)
	if end < 0 {
		return ParseFailed[wtast.InlineNode](p)
	}
	content := p.scanner.Slice(start, end)
	p.scanner.MoveTo(end + 3)
	return ParseSuccessful[wtast.InlineNode](p, wtast.NewComment(content), true), true
}
