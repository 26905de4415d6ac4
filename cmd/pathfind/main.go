// Command pathfind loads a spherical polygon mesh and a batch of start/end
// scenarios and writes one any-angle shortest path per scenario.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "pathfind",
		Short: "Any-angle shortest paths over a spherical polygon mesh",
	}
	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
