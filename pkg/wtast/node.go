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

// Package wtast holds the wikitext abstract syntax tree: one tagged-variant
// family rooted at Node, with LineNode and InlineNode sub-families. Every
// node stringifies back to the wikitext it was parsed from.
package wtast

import "fmt"

// Node is the root of the AST taxonomy. Wikitext and every LineNode and
// InlineNode type implement it. Run, TemplateArgument and TagAttribute
// have String and Clone methods of their own, but their Clone returns
// their own type, so they do not satisfy Node.
type Node interface {
	fmt.Stringer
	// Clone returns a deep copy of the node's content. The clone starts
	// detached: no parent-link bookkeeping survives a clone.
	Clone() Node
}

// LineNode is a top-level line of a Wikitext: a Paragraph, a Heading, or a
// ListItem.
type LineNode interface {
	Node
	lineNode()
}

// InlineNode is anything that can appear inside a Run: plain text, a format
// switch, a link, an expandable, or a tag.
type InlineNode interface {
	Node
	inlineNode()
}
