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

// FormatSwitch is a run of 2, 3, or 5 apostrophes toggling italics and/or
// bold. Four-apostrophe runs never produce one: the grammar always greedily
// matches 5, 3, or 2, leaving any leftover apostrophe as plain text.
type FormatSwitch struct {
	SwitchBold    bool
	SwitchItalics bool
}

func NewFormatSwitch(bold, italics bool) *FormatSwitch {
	return &FormatSwitch{SwitchBold: bold, SwitchItalics: italics}
}

func (f *FormatSwitch) inlineNode() {}

func (f *FormatSwitch) String() string {
	switch {
	case f.SwitchBold && f.SwitchItalics:
		return "'''''"
	case f.SwitchBold:
		return "'''"
	case f.SwitchItalics:
		return "''"
	default:
		return ""
	}
}

func (f *FormatSwitch) Clone() Node {
	return &FormatSwitch{SwitchBold: f.SwitchBold, SwitchItalics: f.SwitchItalics}
}
