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

// Parse parses source into a Wikitext AST. It never fails: malformed
// constructs degrade to plain text, so every input produces a tree.
// Whitespace on a blank line between paragraphs is normalized rather than
// kept, so such inputs do not stringify back byte for byte.
func Parse(source string, opts ...Option) *wtast.Wikitext {
	p := newParser(source, newOptions(opts...))
	return p.parseWikitext()
}
