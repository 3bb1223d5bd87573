package tui

import (
	"os"

	"gitamctl/pkg/app"
	"gitamctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// DefaultAccent is the GITAM teal
const DefaultAccent = "30"

var (
	// These act as fallbacks initially, but are refreshed by GetTheme()
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// AccentStyle returns the style for highlighted output, honoring the saved accent color
func AccentStyle() lipgloss.Style {
	if cfg, err := config.Load(); err == nil && cfg.AccentColor != "" {
		accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.AccentColor))
	}
	return accentStyle
}

// GetTheme loads the user's saved Accent Color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := DefaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global lipgloss accent so manual CLI print statements also receive the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
// This is used for live-previewing styles before they are saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// Spin runs action behind a spinner. Without a terminal (cron, CI) the
// spinner falls back to printing the title once.
func Spin(title string, action func()) {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stderr.Fd())

	_ = spinner.New().
		Title(title).
		Accessible(!interactive).
		Action(action).
		Run()
}

// RunTUI launches the main menu interactive form experience
func RunTUI(a *app.App, day string) error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📅 Show Today's Timetable", "today"),
					huh.NewOption("✉️ Email Today's Timetable", "send"),
					huh.NewOption("🗓️ Export Today's Timetable (.ics)", "export"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	switch action {
	case "send":
		return RunSendTUI(a, day)
	case "export":
		return RunExportTUI(a, day)
	case "config":
		return RunConfigTUI()
	}

	return RunTodayTUI(a, day)
}
