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

package wtast

// PlainText is a run of literal text with no special wikitext meaning.
type PlainText struct {
	Content string
}

func NewPlainText(content string) *PlainText { return &PlainText{Content: content} }

func (p *PlainText) inlineNode() {}

func (p *PlainText) String() string { return p.Content }

func (p *PlainText) Clone() Node { return &PlainText{Content: p.Content} }
