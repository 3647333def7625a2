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
	"fmt"

	"github.com/notedownorg/wikitext/pkg/wtparse"
	"github.com/spf13/cobra"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Round-trip a wikitext file through the parser",
	Long: `Parse a wikitext file (or stdin when no file or "-" is given), stringify
the syntax tree, and print the result. With --check, report whether the
round trip reproduced the input byte for byte instead of printing it.`,
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
		output := wtparse.Parse(source, opts...).String()
		if fmtCheck {
			if output != source {
				return fmt.Errorf("round trip diverged: parsed %d bytes back into %d bytes", len(source), len(output))
			}
			cmd.Println("round trip ok")
			return nil
		}
		cmd.Print(output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Verify the round trip instead of printing it")
}
