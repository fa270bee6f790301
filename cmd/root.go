package cmd

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/artilence/agentchat/internal/app"
	"github.com/artilence/agentchat/internal/chat"
	"github.com/artilence/agentchat/internal/config"
	pkgerrors "github.com/artilence/agentchat/internal/errors"
	"github.com/artilence/agentchat/internal/logger"
	"github.com/artilence/agentchat/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	endpointFlag          string
	timeoutFlag           int
	themeFlag             string
	logFileFlag           string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "agentchat",
	Short: "Terminal chat client for the Artilence Agent",
	Long: `agentchat is a terminal chat client for the Artilence Agent.
Type a message, press enter, and the reply appears in the transcript.
The transcript lives only for the current run.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	flags.BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	flags.StringVar(&endpointFlag, "endpoint", "", "Chat endpoint URL (default "+config.DefaultEndpoint+")")
	flags.IntVar(&timeoutFlag, "timeout", 0, "Request timeout in seconds (0 uses the configured value)")
	flags.StringVar(&themeFlag, "theme", "", "Color theme")
	flags.StringVar(&logFileFlag, "log-file", logger.DefaultLogPath, "Debug log file")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("agentchat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("agentchat %s\n", version)
}

// loadConfig is swapped in tests
var loadConfig = config.Load

// resolveConfig layers the config file, .env and AGENTCHAT_* variables, and
// explicitly set flags, in increasing precedence, then validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.SetEndpoint(endpointFlag)
	}
	if flags.Changed("timeout") {
		if timeoutFlag < 0 {
			return nil, pkgerrors.ConfigInvalid(fmt.Sprintf("--timeout must not be negative, got %d", timeoutFlag))
		}
		cfg.SetTimeoutSeconds(timeoutFlag)
	}
	if flags.Changed("theme") {
		cfg.SetTheme(themeFlag)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if theme := cfg.GetTheme(); theme != "" && !ui.IsKnownTheme(theme) {
		return nil, pkgerrors.ConfigInvalid(fmt.Sprintf("unknown theme %q (available: %s)", theme, themeList()))
	}
	return cfg, nil
}

func themeList() string {
	names := make([]string, 0, len(ui.ThemeNames()))
	for _, name := range ui.ThemeNames() {
		names = append(names, string(name))
	}
	return strings.Join(names, ", ")
}

// newClient builds the HTTP client for the resolved config
func newClient(cfg *config.Config) *chat.Client {
	return chat.NewClient(cfg.GetEndpoint(), cfg.GetTimeout())
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Open the log before anything can write to the default path
	if err := logger.Init(logFileFlag); err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		logger.Error("Invalid configuration: %v", err)
		return err
	}

	client := newClient(cfg)
	logger.Info("Starting agentchat %s endpoint=%s timeout=%s", version, client.Endpoint(), cfg.GetTimeout().Round(time.Second))

	m := app.New(cfg, client, version)
	// Cancels a request still in flight when the program exits
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
