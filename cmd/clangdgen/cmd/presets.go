package cmd

import (
	"fmt"
	"runtime"

	"github.com/corey/clangdgen/internal/app"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List known platform presets",
	Long:  "Shows the platform→preset table, marking the current host.",
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s⚡ build presets%s\n", colorBold, colorReset)
	for _, row := range app.Platforms() {
		line := fmt.Sprintf("  %s%-10s%s %s", colorCyan, row.GOOS, colorReset, row.Preset)
		if row.GOOS == runtime.GOOS {
			line += fmt.Sprintf("  %s✓ current%s", colorGreen, colorReset)
		}
		fmt.Println(line)
	}
	return nil
}
