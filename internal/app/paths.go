package app

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the editor config written into the project root.
const ConfigFileName = ".clangd"

// DatabaseFileName is the compilation database CMake emits into a build tree.
const DatabaseFileName = "compile_commands.json"

// Paths holds all resolved filesystem paths for a project root.
// All fields are pre-computed strings — zero-alloc access after construction.
type Paths struct {
	Root       string // project root
	ConfigFile string // <root>/.clangd
	OutDir     string // <root>/out
	BuildDir   string // <root>/out/build
	StateDir   string // <root>/.clangdgen
	DB         string // <root>/.clangdgen/history.db
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	return &Paths{
		Root:       projectRoot,
		ConfigFile: filepath.Join(projectRoot, ConfigFileName),
		OutDir:     filepath.Join(projectRoot, "out"),
		BuildDir:   filepath.Join(projectRoot, "out", "build"),
		StateDir:   filepath.Join(projectRoot, ".clangdgen"),
		DB:         filepath.Join(projectRoot, ".clangdgen", "history.db"),
	}
}

// PresetDir returns the build tree for a preset: <root>/out/build/<preset>.
func (p *Paths) PresetDir(preset string) string {
	return filepath.Join(p.BuildDir, preset)
}

// DatabaseFile returns the compilation database path for a preset:
// <root>/out/build/<preset>/compile_commands.json.
func (p *Paths) DatabaseFile(preset string) string {
	return filepath.Join(p.BuildDir, preset, DatabaseFileName)
}

// EnsureStateDir creates the .clangdgen/ directory. Idempotent.
func (p *Paths) EnsureStateDir() error {
	return os.MkdirAll(p.StateDir, 0755)
}
