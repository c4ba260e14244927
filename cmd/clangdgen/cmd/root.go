package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/corey/clangdgen/internal/adapters/bbolt"
	"github.com/corey/clangdgen/internal/app"
	"github.com/spf13/cobra"
)

// presetFlag overrides the platform→preset lookup.
var presetFlag string

// dirFlag records the build directory instead of compile_commands.json.
var dirFlag bool

var rootCmd = &cobra.Command{
	Use:   "clangdgen",
	Short: "clangdgen — .clangd generator for preset builds",
	Long: "Detects the host platform, picks the matching CMake build preset, " +
		"and writes a .clangd pointing clangd at that preset's compilation database.",
	RunE:         runGen,
	SilenceUsage: true,
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

func runGen(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	res, err := app.Generate(app.Options{
		Root:    root,
		Preset:  presetFlag,
		DirOnly: dirFlag,
	})
	if err != nil {
		return err
	}
	if err := recordGeneration(root, res); err != nil {
		// History only feeds the status command; the generation itself succeeded.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return nil
}

// recordGeneration appends the result to the project history store.
// Callers treat failures as non-fatal and report them in their own style.
func recordGeneration(root string, res *app.Result) error {
	paths := app.NewPaths(root)
	if err := paths.EnsureStateDir(); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	rec := bbolt.Record{
		Time:     time.Now().UTC(),
		Preset:   res.Preset,
		Database: res.DatabasePath,
		Config:   res.ConfigFile,
		SHA256:   app.Fingerprint(res.Content),
	}
	if err := store.Append(rec); err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&presetFlag, "preset", "", "Override the platform preset lookup")
	rootCmd.PersistentFlags().BoolVar(&dirFlag, "dir", false, "Record the build directory instead of "+app.DatabaseFileName)

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(wipeCmd)
}
