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

// parseCompactParagraph is the fallback line production and cannot fail.
// When lastLine is a still-open paragraph the current line continues it:
// the line break parseLineEnd consumed is re-materialized as a "\n" text
// child and the new inline content flows into the same node, reported
// through merged instead of a new line node.
func (p *Parser) parseCompactParagraph(lastLine wtast.LineNode) (node *wtast.Paragraph, merged bool) {
	mergeTo, _ := lastLine.(*wtast.Paragraph)
	if mergeTo != nil && !mergeTo.Compact {
		mergeTo = nil
	}
	p.ParseStartDefault()
	if mergeTo != nil {
		mergeTo.AppendText("\n")
		p.parseRun(modeRun, mergeTo)
		return ParseSuccessful[*wtast.Paragraph](p, nil, true), true
	}
	node = wtast.NewParagraph(true)
	p.parseRun(modeRun, node)
	return ParseSuccessful(p, node, true), false
}
