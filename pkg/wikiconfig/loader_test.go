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

package wikiconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, ".wikitext")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(content), 0o600))
}

func TestLoadFindsSettingsUpTheTree(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, "parserTags:\n  - nowiki\n  - score\ncaseFoldParserTags: false\n")
	nested := filepath.Join(root, "articles", "drafts")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	config, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, []string{"nowiki", "score"}, config.ParserTags)
	assert.False(t, config.CaseFoldParserTags)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	config, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoadFromFileRejectsInvalidConfig(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parserTags: []\n"), 0o600))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "settings.yaml")
	config := &Config{ParserTags: []string{"nowiki", "chem"}, CaseFoldParserTags: true}
	require.NoError(t, Save(config, path))

	reloaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config, reloaded)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{ParserTags: []string{"nowiki", ""}}).Validate())
	assert.Error(t, (&Config{ParserTags: []string{"a", "A"}, CaseFoldParserTags: true}).Validate())
	assert.NoError(t, (&Config{ParserTags: []string{"a", "A"}}).Validate())
}

func TestFindWorkspaceRoot(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, "parserTags: [nowiki]\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindWorkspaceRoot(nested)
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	foundResolved, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, resolved, foundResolved)

	none, err := FindWorkspaceRoot(string(filepath.Separator))
	require.NoError(t, err)
	assert.Equal(t, "", none)
}
