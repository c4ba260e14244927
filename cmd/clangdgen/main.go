// clangdgen writes a .clangd file pointing clangd at the compilation
// database of the host platform's build preset. Single binary, zero config.
package main

import (
	"os"

	"github.com/corey/clangdgen/cmd/clangdgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
