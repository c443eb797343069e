/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bubbletoast",
	Short: "Animated toast notifications for bubbletea programs.",
	Long: `Animated toast notifications for bubbletea programs.

bubbletoast manages a bounded queue of transient messages, each with an
animated enter/hold/exit lifecycle, and reconciles them against user
dismissal and asynchronous operation results. Run the demo to see it move.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Set version for use in help output
	rootCmd.Version = Version

	// Hide the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}
