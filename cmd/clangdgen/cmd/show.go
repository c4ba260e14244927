package cmd

import (
	"fmt"

	"github.com/corey/clangdgen/internal/app"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config without writing it",
	Long:  "Renders the .clangd document for the current platform to stdout. Nothing is written to disk.",
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	res, err := app.Plan(app.Options{
		Root:    projectRoot(),
		Preset:  presetFlag,
		DirOnly: dirFlag,
	})
	if err != nil {
		return err
	}
	fmt.Print(res.Content)
	return nil
}
