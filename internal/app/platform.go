package app

import (
	"fmt"
	"sort"
)

// presets maps runtime.GOOS values to the CMake build preset whose tree holds
// the compilation database. A single entry today; supporting a new host means
// adding a row here.
var presets = map[string]string{
	"darwin": "macos-debug",
}

// UnsupportedPlatformError is returned when the running platform has no
// preset mapping. Not recoverable — callers exit non-zero.
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported system: %q", e.OS)
}

// ResolvePreset returns the build preset for a GOOS value. The platform
// identifier is passed in rather than read from ambient state so the decision
// is testable on any host.
func ResolvePreset(goos string) (string, error) {
	preset, ok := presets[goos]
	if !ok {
		return "", &UnsupportedPlatformError{OS: goos}
	}
	return preset, nil
}

// Platform pairs a GOOS value with its build preset.
type Platform struct {
	GOOS   string
	Preset string
}

// Platforms returns all known platform rows, sorted by GOOS.
func Platforms() []Platform {
	rows := make([]Platform, 0, len(presets))
	for goos, preset := range presets {
		rows = append(rows, Platform{GOOS: goos, Preset: preset})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].GOOS < rows[j].GOOS })
	return rows
}
