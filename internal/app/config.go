package app

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CompileFlags mirrors the CompileFlags block understood by clangd.
type CompileFlags struct {
	CompilationDatabase string `yaml:"CompilationDatabase"`
}

// EditorConfig is the in-memory form of a .clangd document: a single
// CompileFlags block naming the compilation database to load.
type EditorConfig struct {
	CompileFlags CompileFlags `yaml:"CompileFlags"`
}

// NewEditorConfig builds a config pointing clangd at databasePath.
func NewEditorConfig(databasePath string) *EditorConfig {
	return &EditorConfig{
		CompileFlags: CompileFlags{CompilationDatabase: databasePath},
	}
}

// Render serializes the config as a YAML document with an explicit
// document-start marker and two-space indent. Output is deterministic:
// rendering the same config twice yields identical bytes.
func (c *EditorConfig) Render() (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("close encoder: %w", err)
	}
	return buf.String(), nil
}

// ParseEditorConfig parses a rendered .clangd document back into its
// in-memory form.
func ParseEditorConfig(data []byte) (*EditorConfig, error) {
	var cfg EditorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Fingerprint returns the hex sha256 of a rendered document. Used to compare
// the on-disk file against the last recorded generation.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
