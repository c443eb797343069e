package cmd

import (
	"fmt"

	"github.com/cristianoliveira/bubbletoast/internal/version"
	"github.com/spf13/cobra"
)

// Version is the version of bubbletoast shown in help output.
var Version = version.String()

// versionCmd prints the version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bubbletoast version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bubbletoast v%s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
