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

// Comment is a "<!-- ... -->" construct. Content is the opaque text
// between the delimiters, never re-parsed.
type Comment struct {
	Content string
}

func NewComment(content string) *Comment { return &Comment{Content: content} }

func (c *Comment) inlineNode() {}

func (c *Comment) String() string { return "<!--" + c.Content + "-->" }

func (c *Comment) Clone() Node { return &Comment{Content: c.Content} }
