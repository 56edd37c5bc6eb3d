package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zhubert/chatgate/internal/app"
	"github.com/zhubert/chatgate/internal/config"
	"github.com/zhubert/chatgate/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	launchFile            string
	logFile               string
	version, commit, date string
)

// launchFlags maps command-line flags to Launch keys
var launchFlags = map[string]string{
	"location":           "location",
	"user-agent":         "user_agent",
	"auth-endpoint":      "auth_endpoint",
	"auth-timeout":       "auth_timeout",
	"compact-width":      "compact_width",
	"access-request-url": "access_request_url",
	"chat-base-url":      "chat_base_url",
	"chat-model":         "chat_model",
}

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "chatgate",
	Short: "Terminal chat client behind an access check",
	Long: `chatgate is a terminal chat client. It checks with the authorization
service whether you may use it, then opens a chat view with prompt templates
and a settings view. Narrow terminals get a one-pane layout.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to warnings and errors")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logger.DefaultLogPath, "Log file path")
	rootCmd.PersistentFlags().StringVar(&launchFile, "config", "", "Launch settings file (default ~/.chatgate/launch.yaml)")

	f := rootCmd.PersistentFlags()
	f.String("location", "", "Launch URL carrying ?signature= and an optional #/route")
	f.String("user-agent", "", "Client identity used for host detection")
	f.String("auth-endpoint", "", "Valid-user endpoint of the authorization service")
	f.Duration("auth-timeout", 0, "Timeout for the access check (0 waits forever)")
	f.Int("compact-width", 0, "Terminal width below which the compact layout is used")
	f.String("access-request-url", "", "Form opened by \"Apply for access\"")
	f.String("chat-base-url", "", "OpenAI-compatible API base URL")
	f.String("chat-model", "", "Chat model name")
}

func initConfig() {
	switch {
	case quietMode:
		logger.SetLevel(logger.LevelWarn)
	case debugMode:
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("chatgate %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("chatgate %s\n", version)
}

// flagOverrides returns the Launch values of the flags the user set. Unset
// flags leave lower layers alone.
func flagOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := make(map[string]any)
	flags.Visit(func(f *pflag.Flag) {
		key, ok := launchFlags[f.Name]
		if !ok {
			return
		}
		switch f.Value.Type() {
		case "duration":
			d, _ := flags.GetDuration(f.Name)
			overrides[key] = d
		case "int":
			n, _ := flags.GetInt(f.Name)
			overrides[key] = n
		default:
			overrides[key] = f.Value.String()
		}
	})
	return overrides
}

// loadLaunch reads .env, then layers launch.yaml, the environment and flags
func loadLaunch(flags *pflag.FlagSet) (*config.Launch, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.WithComponent("cmd").Warn("could not read .env", "error", err)
	}

	path := launchFile
	if path == "" {
		var err error
		if path, err = config.LaunchPath(); err != nil {
			return nil, err
		}
	}
	return config.LoadLaunch(path, flagOverrides(flags))
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logger.Close()

	launch, err := loadLaunch(cmd.Flags())
	if err != nil {
		return fmt.Errorf("error loading launch settings: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	m := app.New(app.Options{Launch: launch, Config: cfg})
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
