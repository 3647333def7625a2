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
	"io"
	"os"
	"strings"

	"github.com/notedownorg/wikitext/pkg/wikiconfig"
	"github.com/notedownorg/wikitext/pkg/wikilog"
	"github.com/notedownorg/wikitext/pkg/wtparse"
	"github.com/spf13/cobra"
)

var (
	Version    string
	CommitHash string
)

var (
	logLevel   string
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wikitext",
	Short: "Tools for parsing and round-tripping MediaWiki wikitext",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a settings.yaml (default: discovered from the input file's directory)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parserOptions assembles the wtparse options shared by all subcommands:
// workspace config discovered relative to the input path (or loaded from
// an explicit --config), plus a stderr logger at the requested level.
func parserOptions(inputPath string) ([]wtparse.Option, error) {
	var config *wikiconfig.Config
	var err error
	if configPath != "" {
		config, err = wikiconfig.LoadFromFile(configPath)
	} else {
		config, err = wikiconfig.Load(inputPath)
	}
	if err != nil {
		return nil, err
	}
	log := wikilog.New(os.Stderr, wikilog.ParseLevel(logLevel))
	return []wtparse.Option{wtparse.WithConfig(config), wtparse.WithLogger(log)}, nil
}

func readInput(args []string) (path string, source string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return ".", string(data), nil
	}
	data, err := os.ReadFile(args[0]) // #nosec G304 - path is an explicit CLI argument
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return args[0], string(data), nil
}

func version() string {
	var b strings.Builder

	if Version == "" {
		b.WriteString("dev")
	} else {
		b.WriteString(Version)
	}

	if CommitHash != "" {
		b.WriteString("-")
		b.WriteString(CommitHash)
	}

	return b.String()
}
