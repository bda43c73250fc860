// Command bridge runs the bridge pattern demonstration.
package main

import (
	"os"

	"github.com/Iron-Ham/bridge/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
