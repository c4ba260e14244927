// Package app holds the generation flow: resolve the platform's build
// preset, compose the compilation-database path, render the .clangd
// document, and write it atomically into the project root.
package app

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/google/renameio/v2"
)

// Options configure a single generation pass.
type Options struct {
	Root    string    // project root; all paths anchor here
	GOOS    string    // platform identifier; empty means runtime.GOOS
	Preset  string    // explicit preset; skips the platform lookup when set
	DirOnly bool      // record the build directory instead of the database file
	Stderr  io.Writer // diagnostic stream; nil means os.Stderr
}

// Result describes a completed plan or generation.
type Result struct {
	Preset       string // chosen build preset
	DatabasePath string // path recorded in the document
	ConfigFile   string // destination .clangd path
	Content      string // rendered document
}

// Plan resolves the preset and renders the document without touching disk.
// Diagnostics (the chosen preset) go to opts.Stderr.
func Plan(opts Options) (*Result, error) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	preset := opts.Preset
	if preset == "" {
		var err error
		preset, err = ResolvePreset(goos)
		if err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(stderr, "Use preset: %s\n", preset)

	paths := NewPaths(opts.Root)
	dbPath := paths.DatabaseFile(preset)
	if opts.DirOnly {
		dbPath = paths.PresetDir(preset)
	}

	text, err := NewEditorConfig(dbPath).Render()
	if err != nil {
		return nil, err
	}

	return &Result{
		Preset:       preset,
		DatabasePath: dbPath,
		ConfigFile:   paths.ConfigFile,
		Content:      text,
	}, nil
}

// Generate runs Plan and writes the result to <root>/.clangd, replacing any
// existing file. The write is atomic: a crash mid-write leaves either the
// old document or the new one, never a truncated mix.
func Generate(opts Options) (*Result, error) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	res, err := Plan(opts)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(stderr, "Writing %s\n", res.ConfigFile)
	if err := writeAtomic(res.ConfigFile, res.Content); err != nil {
		return nil, fmt.Errorf("write %s: %w", ConfigFileName, err)
	}
	return res, nil
}

// writeAtomic writes text via a pending temp file and an atomic rename.
func writeAtomic(path, text string) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		_ = pf.Cleanup()
	}()

	if _, err := io.WriteString(pf, text); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}
	return pf.CloseAtomicallyReplace()
}
