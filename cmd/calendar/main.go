package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "calendar",
		Short:        "Inspect the scheduling engine: month grids, time slots and requests",
		SilenceUsage: true,
	}

	root.AddCommand(newGridCmd())
	root.AddCommand(newImageCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newBuildCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
