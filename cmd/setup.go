package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/artilence/agentchat/internal/config"
	"github.com/artilence/agentchat/internal/ui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Edit the agentchat config interactively",
	Long: `Opens a short form for the chat endpoint, color theme, request timeout
and desktop notifications, then saves the result to ~/.agentchat/config.json.
Environment variables and flags still override the saved values at runtime.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues holds the form fields as the user edits them
type setupValues struct {
	Endpoint      string
	Theme         string
	Timeout       string
	Notifications bool
}

func setupValuesFrom(cfg *config.Config) *setupValues {
	theme := cfg.GetTheme()
	if theme == "" {
		theme = string(ui.DefaultTheme)
	}
	return &setupValues{
		Endpoint:      cfg.GetEndpoint(),
		Theme:         theme,
		Timeout:       strconv.Itoa(int(cfg.GetTimeout().Seconds())),
		Notifications: cfg.GetNotificationsEnabled(),
	}
}

func validateTimeout(s string) error {
	secs, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || secs <= 0 {
		return errors.New("enter a whole number of seconds greater than 0")
	}
	return nil
}

func newSetupForm(v *setupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(ui.ThemeNames()))
	for _, name := range ui.ThemeNames() {
		themes = append(themes, huh.NewOption(ui.GetTheme(name).Name, string(name)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Chat endpoint").
				Description("Where messages are POSTed").
				Placeholder(config.DefaultEndpoint).
				Value(&v.Endpoint).
				Validate(func(s string) error {
					return config.ValidateEndpoint(strings.TrimSpace(s))
				}),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&v.Theme),
			huh.NewInput().
				Title("Request timeout (seconds)").
				Value(&v.Timeout).
				Validate(validateTimeout),
			huh.NewConfirm().
				Title("Notify when a reply arrives in the background?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.Notifications),
		),
	).WithTheme(ui.FormTheme())
}

// apply copies validated form values into cfg
func (v *setupValues) apply(cfg *config.Config) error {
	endpoint := strings.TrimSpace(v.Endpoint)
	if err := config.ValidateEndpoint(endpoint); err != nil {
		return err
	}
	if err := validateTimeout(v.Timeout); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	if !ui.IsKnownTheme(v.Theme) {
		return fmt.Errorf("unknown theme %q", v.Theme)
	}

	secs, _ := strconv.Atoi(strings.TrimSpace(v.Timeout))
	cfg.SetEndpoint(endpoint)
	cfg.SetTimeoutSeconds(secs)
	cfg.SetTheme(v.Theme)
	cfg.SetNotificationsEnabled(v.Notifications)
	return nil
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	ui.SetThemeByName(cfg.GetTheme())

	values := setupValuesFrom(cfg)
	if err := newSetupForm(values).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("error running setup form: %w", err)
	}

	if err := values.apply(cfg); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Println("Saved config.")
	return nil
}
