package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/chatgate/internal/config"
	"github.com/zhubert/chatgate/internal/logger"
)

var (
	skipConfirm bool
	cleanAll    bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove saved preferences and the log file",
	Long: `Removes the saved preferences (theme, palette, border, notifications and
send key) and the log file. With --all the launch settings file is removed
too. It will prompt for confirmation before proceeding unless the --yes flag
is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Also remove launch.yaml")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout())
}

// cleanTargets lists the files clean would remove that exist
func cleanTargets() ([]string, error) {
	prefs, err := config.PreferencesPath()
	if err != nil {
		return nil, err
	}
	candidates := []string{prefs, logFile}
	if cleanAll {
		launch := launchFile
		if launch == "" {
			if launch, err = config.LaunchPath(); err != nil {
				return nil, err
			}
		}
		candidates = append(candidates, launch)
	}

	var targets []string
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			targets = append(targets, path)
		}
	}
	return targets, nil
}

// runCleanWithReader allows injecting input and output for testing
func runCleanWithReader(input io.Reader, out io.Writer) error {
	targets, err := cleanTargets()
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, path := range targets {
		fmt.Fprintf(out, "  - %s\n", path)
	}

	if !skipConfirm && !confirm(input, out, "Continue?") {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	logger.Close()
	removed := 0
	for _, path := range targets {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: could not remove %s: %v\n", path, err)
			continue
		}
		removed++
	}
	fmt.Fprintf(out, "Removed %d file(s).\n", removed)
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
