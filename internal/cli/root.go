package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitInputError   = 1
	ExitUsageError   = 2
	ExitRuntimeError = 3
)

var rootCmd = &cobra.Command{
	Use:   "fsched",
	Short: "Reorganize Fountain screenplays by camera setup",
	Long:  "Fsched scans a Fountain screenplay for [[SETUP X: description]] markers and regroups its content by camera setup for efficient filming order.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print fsched version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "fsched version %s\n", version)
	},
}
