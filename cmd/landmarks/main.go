// Command landmarks resolves buildings and landmarks from text
// queries, photographs, or coordinates.
package main

import (
	"fmt"
	"os"

	"github.com/mpfoley73/landmarks/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
