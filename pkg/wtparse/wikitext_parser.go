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

// parseWikitext is the top of the grammar: a sequence of lines separated
// by line ends. It is also re-entered for every nested wikitext scope
// (template argument values, argument reference names and defaults, html
// tag content), which is why it leans entirely on the frame stack's
// terminator to know where to stop.
//
// parseWikitext never fails; at worst it returns an empty node.
func (p *Parser) parseWikitext() *wtast.Wikitext {
	p.ParseStartDefault()
	node := wtast.NewWikitext()
	var lastLine wtast.LineNode
	for !p.NeedsTerminate(nil) {
		line, produced := p.parseLine(lastLine)
		if produced {
			lastLine = line
			node.Lines = append(node.Lines, line)
		}
		extra, ok := p.parseLineEnd(lastLine)
		if !ok {
			break
		}
		if extra != nil {
			node.Lines = append(node.Lines, extra)
			lastLine = extra
		}
	}
	return ParseSuccessful(p, node, true)
}
