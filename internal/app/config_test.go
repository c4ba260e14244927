package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	cfg := NewEditorConfig("/repo/out/build/macos-debug/compile_commands.json")
	text, err := cfg.Render()
	require.NoError(t, err)

	want := "---\n" +
		"CompileFlags:\n" +
		"  CompilationDatabase: /repo/out/build/macos-debug/compile_commands.json\n"
	assert.Equal(t, want, text)
}

func TestRender_ExplicitDocumentStart(t *testing.T) {
	text, err := NewEditorConfig("/anywhere").Render()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "---\n"))
}

func TestRender_RoundTrip(t *testing.T) {
	cfg := NewEditorConfig("/repo/out/build/macos-debug")
	text, err := cfg.Render()
	require.NoError(t, err)

	parsed, err := ParseEditorConfig([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestRender_Deterministic(t *testing.T) {
	cfg := NewEditorConfig("/repo/out/build/macos-debug/compile_commands.json")
	a, err := cfg.Render()
	require.NoError(t, err)
	b, err := cfg.Render()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseEditorConfig_Invalid(t *testing.T) {
	_, err := ParseEditorConfig([]byte("CompileFlags: [unclosed"))
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("---\nCompileFlags:\n")
	b := Fingerprint("---\nCompileFlags:\n")
	c := Fingerprint("something else")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
