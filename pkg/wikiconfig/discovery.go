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
)

// FindWorkspaceRoot searches for a .wikitext directory starting from the
// given path and walking up the directory tree. Returns the path
// containing the .wikitext directory, or "" if none was found.
func FindWorkspaceRoot(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	currentPath := absPath
	for {
		settingsDir := filepath.Join(currentPath, ".wikitext")
		if info, err := os.Stat(settingsDir); err == nil && info.IsDir() {
			return currentPath, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return "", nil
}

// FindConfigFile searches for .wikitext/settings.yaml starting from the
// given path and walking up the directory tree. Returns the full path to
// the file, or "" if no workspace or config file was found.
func FindConfigFile(startPath string) (string, error) {
	workspaceRoot, err := FindWorkspaceRoot(startPath)
	if err != nil {
		return "", err
	}
	if workspaceRoot == "" {
		return "", nil
	}

	yamlPath := filepath.Join(workspaceRoot, ".wikitext", "settings.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath, nil
	}

	return "", nil
}
