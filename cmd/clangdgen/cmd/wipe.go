package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/corey/clangdgen/internal/app"
	"github.com/spf13/cobra"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Remove the generated config and history",
	Long:  "Deletes the .clangd file and the .clangdgen/ state directory.",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "Skip confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	paths := app.NewPaths(root)

	if !wipeForce {
		fmt.Printf("⚠ This will delete %s and %s for %s. Continue? [y/N] ",
			app.ConfigFileName, filepath.Base(paths.StateDir), filepath.Base(root))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("cancelled")
			return nil
		}
	}

	removed := false

	if err := os.Remove(paths.ConfigFile); err == nil {
		removed = true
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", paths.ConfigFile, err)
	}

	if _, err := os.Stat(paths.StateDir); err == nil {
		if err := os.RemoveAll(paths.StateDir); err != nil {
			return fmt.Errorf("remove %s: %w", paths.StateDir, err)
		}
		removed = true
	}

	if !removed {
		fmt.Println("⚡ nothing to wipe")
		return nil
	}
	fmt.Println("⚡ project config wiped")
	return nil
}
