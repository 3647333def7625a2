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

package cmd

import (
	"strings"

	"github.com/notedownorg/wikitext/pkg/wtast"
	"github.com/notedownorg/wikitext/pkg/wtparse"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a wikitext file and print its syntax tree",
	Long: `Parse a wikitext file (or stdin when no file or "-" is given) and print
an indented outline of the resulting syntax tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, source, err := readInput(args)
		if err != nil {
			return err
		}
		opts, err := parserOptions(path)
		if err != nil {
			return err
		}
		document := wtparse.Parse(source, opts...)
		for _, line := range document.Lines {
			dumpLine(cmd, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func dumpLine(cmd *cobra.Command, line wtast.LineNode) {
	switch n := line.(type) {
	case *wtast.Paragraph:
		state := "closed"
		if n.Compact {
			state = "compact"
		}
		cmd.Printf("Paragraph (%s)\n", state)
		dumpInlines(cmd, 1, n.Inlines)
	case *wtast.Heading:
		cmd.Printf("Heading (level %d)\n", n.Level)
		dumpInlines(cmd, 1, n.Inlines)
	case *wtast.ListItem:
		cmd.Printf("ListItem (prefix %q)\n", n.Prefix)
		dumpInlines(cmd, 1, n.Inlines)
	}
}

func dumpInlines(cmd *cobra.Command, depth int, inlines []wtast.InlineNode) {
	indent := strings.Repeat("  ", depth)
	for _, inline := range inlines {
		switch n := inline.(type) {
		case *wtast.PlainText:
			cmd.Printf("%sPlainText %q\n", indent, n.Content)
		case *wtast.FormatSwitch:
			cmd.Printf("%sFormatSwitch (bold %t, italics %t)\n", indent, n.SwitchBold, n.SwitchItalics)
		case *wtast.WikiLink:
			cmd.Printf("%sWikiLink target=%q\n", indent, n.Target.String())
			if n.Text != nil {
				cmd.Printf("%s  text=%q\n", indent, n.Text.String())
			}
		case *wtast.ExternalLink:
			cmd.Printf("%sExternalLink target=%q brackets=%t\n", indent, n.Target.String(), n.Brackets)
		case *wtast.Template:
			cmd.Printf("%sTemplate name=%q (%d arguments)\n", indent, n.Name.String(), len(n.Arguments))
		case *wtast.ArgumentReference:
			cmd.Printf("%sArgumentReference name=%q\n", indent, n.Name.String())
		case *wtast.Comment:
			cmd.Printf("%sComment %q\n", indent, n.Content)
		case *wtast.ParserTag:
			cmd.Printf("%sParserTag <%s>\n", indent, n.Name)
		case *wtast.HtmlTag:
			cmd.Printf("%sHtmlTag <%s>\n", indent, n.Name)
			if n.Content != nil {
				for _, line := range n.Content.Lines {
					cmd.Print(indent + "  ")
					dumpLine(cmd, line)
				}
			}
		default:
			cmd.Printf("%s%T\n", indent, inline)
		}
	}
}
