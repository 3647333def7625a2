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

// runMode selects which inline producers parseRun may use besides the
// expandables, which are legal everywhere.
type runMode int

const (
	// modeRun allows the full inline set.
	modeRun runMode = iota
	// modeExpandableText allows plain text only: link targets, template
	// names, attribute names.
	modeExpandableText
	// modeExpandableURL allows URL tokens only: bracketed external link
	// targets.
	modeExpandableURL
)

// inlineContainer is anything inline children can be appended to. Every
// implementation coalesces adjacent PlainText on Append.
type inlineContainer interface {
	Append(wtast.InlineNode)
}

// parseRun produces inline children into container until the active
// terminator matches or nothing more can be produced. It reports whether
// at least one child was added; callers that require non-empty content
// roll back on false.
func (p *Parser) parseRun(mode runMode, container inlineContainer) bool {
	parsed := false
	for !p.NeedsTerminate(nil) {
		if inline, ok := p.parseExpandable(); ok {
			container.Append(inline)
			parsed = true
			continue
		}
		var inline wtast.InlineNode
		var ok bool
		switch mode {
		case modeRun:
			inline, ok = p.parseInline()
		case modeExpandableText:
			inline, ok = p.parsePartialPlainText()
		case modeExpandableURL:
			inline, ok = p.parseURLText()
		}
		if !ok {
			break
		}
		container.Append(inline)
		parsed = true
	}
	return parsed
}

// parseInline tries the full inline set in priority order. PartialPlainText
// comes last and always consumes at least one rune, so a run only stops at
// a terminator.
func (p *Parser) parseInline() (wtast.InlineNode, bool) {
	if node, ok := p.parseTag(); ok {
		return node, true
	}
	if node, ok := p.parseWikiLink(); ok {
		return node, true
	}
	if node, ok := p.parseExternalLink(); ok {
		return node, true
	}
	if node, ok := p.parseFormatSwitch(); ok {
		return node, true
	}
	return p.parsePartialPlainText()
}

// parseExpandable tries the constructs MediaWiki substitutes at
// transclusion time; they may appear in any run mode.
func (p *Parser) parseExpandable() (wtast.InlineNode, bool) {
	if node, ok := p.parseBraces(); ok {
		return node, true
	}
	if node, ok := p.parseComment(); ok {
		return node, true
	}
	return nil, false
}
