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

import (
	"strings"

	"github.com/notedownorg/wikitext/pkg/wtast"
)

// parseHeading matches "== title ==" style headings. Level matching is
// greedy but both sides must balance and end at the line end, so each
// candidate level from the longest leading run of '=' (capped at six)
// down to 1 gets its
// own attempt; surplus '=' runes become part of the title.
func (p *Parser) parseHeading() (*wtast.Heading, bool) {
	prefix, ok := p.LookAheadToken(`={1,6}`)
	if !ok {
		return nil, false
	}
	for level := len(prefix); level > 0; level-- {
		if h, ok := p.parseHeadingLevel(level); ok {
			return h, true
		}
	}
	return nil, false
}

func (p *Parser) parseHeadingLevel(level int) (*wtast.Heading, bool) {
	bar := strings.Repeat("=", level)
	p.ParseStart(`(?m)`+bar+`$`, true)
	if _, ok := p.ConsumeToken(bar); !ok {
		return ParseFailed[*wtast.Heading](p)
	}
	node := wtast.NewHeading(level)
	if !p.parseRun(modeRun, node) {
		return ParseFailed[*wtast.Heading](p)
	}
	if _, ok := p.ConsumeToken(`(?m)` + bar + `$`); !ok {
		return ParseFailed[*wtast.Heading](p)
	}
	return ParseSuccessful(p, node, true), true
}
