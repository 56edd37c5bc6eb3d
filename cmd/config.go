package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/chatgate/internal/config"
)

var overwriteLaunch bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage launch settings",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write launch.yaml with the effective settings",
	Long: `Writes the launch settings currently in effect (defaults, environment and
any flags given) to launch.yaml so they can be edited. The chat API key is
never written; keep it in CHATGATE_CHAT_API_KEY or OPENAI_API_KEY.`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&overwriteLaunch, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := launchFile
	if path == "" {
		var err error
		if path, err = config.LaunchPath(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !overwriteLaunch {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	launch, err := config.LoadLaunch("", flagOverrides(cmd.Flags()))
	if err != nil {
		return err
	}
	if err := config.WriteLaunchTemplate(path, launch); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
