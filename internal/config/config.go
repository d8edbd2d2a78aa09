// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config resolves run configuration. Precedence is command-line
// flag, then the repo's .gitweekly.yaml defaults file, then the
// environment (with a .env file honored when present).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultModel is the model used when neither flag nor file names one.
const DefaultModel = "openai/gpt-3.5-turbo"

// FileName is the optional per-repository defaults file.
const FileName = ".gitweekly.yaml"

// APIKeyEnv is the environment variable holding the OpenRouter credential.
const APIKeyEnv = "OPENROUTER_API_KEY"

// Settings is the fully resolved configuration of a report run.
type Settings struct {
	RepoPath string
	Output   string
	Enhance  bool
	APIKey   string
	Model    string
	Author   string
}

// File mirrors the YAML defaults file.
type File struct {
	Model   string `yaml:"model"`
	Author  string `yaml:"author"`
	Output  string `yaml:"output"`
	Enhance *bool  `yaml:"enhance"`
}

// LoadFile reads the repo's defaults file. A missing file is not an error.
func LoadFile(repoRoot string) (File, error) {
	data, err := os.ReadFile(filepath.Join(repoRoot, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return File{}, nil
	}
	if err != nil {
		return File{}, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return f, nil
}

// ResolveAPIKey prefers the flag value over the environment. The enhancer
// receives the resolved key at construction and never reads the
// environment itself.
func ResolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	// A .env next to the working directory is common in local setups.
	_ = godotenv.Load()
	return os.Getenv(APIKeyEnv)
}
