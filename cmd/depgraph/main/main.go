package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/depgraph/cmd/depgraph"
	"github.com/arthur-debert/depgraph/pkg/style"
)

func main() {
	rootCmd := depgraph.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.ExcludeStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
