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
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration starting from startPath's workspace. If no
// .wikitext/settings.yaml is found, it returns Default().
func Load(startPath string) (*Config, error) {
	configPath, err := FindConfigFile(startPath)
	if err != nil {
		return nil, fmt.Errorf("wikiconfig: find config file: %w", err)
	}
	if configPath == "" {
		return Default(), nil
	}
	return LoadFromFile(configPath)
}

// LoadFromFile loads and validates configuration from an explicit YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is from trusted config discovery or an explicit CLI flag
	if err != nil {
		return nil, fmt.Errorf("wikiconfig: read %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("wikiconfig: parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("wikiconfig: invalid config in %s: %w", path, err)
	}
	return config, nil
}

// Save writes config to path as YAML, creating parent directories as needed.
func Save(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("wikiconfig: invalid config: %w", err)
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("wikiconfig: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("wikiconfig: create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("wikiconfig: write %s: %w", path, err)
	}
	return nil
}
