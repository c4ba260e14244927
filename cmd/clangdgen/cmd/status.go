package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/corey/clangdgen/internal/adapters/bbolt"
	"github.com/corey/clangdgen/internal/app"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config state",
	Long:  "Shows project root, config path, and whether the .clangd on disk matches the last generation.",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	paths := app.NewPaths(root)

	fmt.Printf("%s⚡ clangdgen status%s\n", colorBold, colorReset)
	fmt.Printf("  Project:  %s\n", filepath.Base(root))
	fmt.Printf("  Root:     %s\n", root)
	fmt.Printf("  Config:   %s\n", paths.ConfigFile)

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		fmt.Printf("  State:    %s✗ not generated%s\n", colorYellow, colorReset)
		return nil
	}

	recs := recentRecords(paths, 3)
	fmt.Printf("  State:    %s\n", configState(data, recs))

	if cfg, err := app.ParseEditorConfig(data); err == nil {
		fmt.Printf("  Database: %s\n", cfg.CompileFlags.CompilationDatabase)
	}

	if len(recs) > 0 {
		fmt.Println("  Recent:")
		for _, rec := range recs {
			fmt.Printf("    %s  %s%s%s → %s\n",
				rec.Time.Local().Format(time.RFC822), colorCyan, rec.Preset, colorReset, rec.Database)
		}
	}
	return nil
}

// configState classifies the on-disk document against the newest history
// record: fresh when fingerprints match, stale when they differ, no history
// when nothing was ever recorded.
func configState(data []byte, recs []bbolt.Record) string {
	if len(recs) == 0 {
		return "no history"
	}
	last := recs[0]
	if app.Fingerprint(string(data)) == last.SHA256 {
		return fmt.Sprintf("%s✓ fresh%s (preset %s, written %s)",
			colorGreen, colorReset, last.Preset, last.Time.Local().Format(time.RFC822))
	}
	return fmt.Sprintf("%s✗ stale%s (differs from last generation)", colorYellow, colorReset)
}

// recentRecords returns up to limit history records, newest first. Missing or
// unreadable history yields an empty slice; the database is never created here.
func recentRecords(paths *app.Paths, limit int) []bbolt.Record {
	if _, err := os.Stat(paths.DB); err != nil {
		return nil
	}
	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return nil
	}
	defer store.Close()

	recs, err := store.History(limit)
	if err != nil {
		return nil
	}
	return recs
}
