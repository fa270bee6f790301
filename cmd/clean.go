package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artilence/agentchat/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove agentchat log files",
	Long: `Removes the debug log files agentchat writes to /tmp.

It will prompt for confirmation before proceeding unless the --yes flag is used.
The config file is left alone.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin, os.Stdout)
}

// Swapped in tests
var (
	// logGlob matches every log file agentchat may have written
	logGlob    = "/tmp/agentchat-*.log"
	removeLogs = logger.ClearLogs
)

// runCleanWithReader allows injecting input and output for testing
func runCleanWithReader(input io.Reader, out io.Writer) error {
	logs, err := filepath.Glob(logGlob)
	if err != nil {
		return fmt.Errorf("error finding log files: %w", err)
	}

	if len(logs) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, path := range logs {
		fmt.Fprintf(out, "  - %s\n", path)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	// Release our own handle before deleting
	logger.Close()

	removed, err := removeLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}
	fmt.Fprintf(out, "Removed %d log file(s).\n", removed)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
