package tui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gitamctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Email Recipient", "recipient"),
						huh.NewOption("Set Portal Pages", "portal"),
						huh.NewOption("Set SMTP Server", "smtp"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "recipient":
			err = runSetRecipientTUI(cfg)
		case "portal":
			err = runSetPortalTUI(cfg)
		case "smtp":
			err = runSetSMTPTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.gitamctl.json) ---"))
			fmt.Println(DescribeConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// DescribeConfig lists the saved settings, showing defaults for unset ones
func DescribeConfig(cfg *config.AppConfig) string {
	orDefault := func(v string) string {
		if v == "" {
			return "(default)"
		}
		return v
	}

	port := "(default)"
	if cfg.SMTPPort != 0 {
		port = strconv.Itoa(cfg.SMTPPort)
	}

	lines := []string{
		"Recipient: " + orDefault(cfg.Recipient),
		"Login Page: " + orDefault(cfg.LoginURL),
		"Timetable Page: " + orDefault(cfg.BasicURL),
		"Registered Courses Page: " + orDefault(cfg.DetailedURL),
		"SMTP Host: " + orDefault(cfg.SMTPHost),
		"SMTP Port: " + port,
		"Accent Color: " + orDefault(cfg.AccentColor),
	}
	return strings.Join(lines, "\n") + "\n"
}

func runSetRecipientTUI(cfg *config.AppConfig) error {
	input := cfg.Recipient

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Who should receive the daily timetable?").
				Description("Leave empty to use RECIPIENT_EMAIL from the environment.").
				Placeholder("you@example.com").
				Value(&input).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					return config.ValidEmail(s)
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Recipient = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Recipient saved.\n"))
	return nil
}

func runSetPortalTUI(cfg *config.AppConfig) error {
	loginURL, basicURL, detailedURL := cfg.LoginURL, cfg.BasicURL, cfg.DetailedURL

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Login page").
				Placeholder("https://login.gitam.edu/Login.aspx").
				Value(&loginURL).
				Validate(validOptionalURL),
			huh.NewInput().
				Title("Today's timetable page").
				Description("Leave empty to read the page shown right after login.").
				Value(&basicURL).
				Validate(validOptionalURL),
			huh.NewInput().
				Title("Registered courses page").
				Placeholder("https://newgstudent.gitam.edu/Home").
				Value(&detailedURL).
				Validate(validOptionalURL),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.LoginURL = strings.TrimSpace(loginURL)
	cfg.BasicURL = strings.TrimSpace(basicURL)
	cfg.DetailedURL = strings.TrimSpace(detailedURL)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Portal pages saved.\n"))
	return nil
}

func runSetSMTPTUI(cfg *config.AppConfig) error {
	host := cfg.SMTPHost
	port := ""
	if cfg.SMTPPort != 0 {
		port = strconv.Itoa(cfg.SMTPPort)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("SMTP host").
				Placeholder("smtp.gmail.com").
				Value(&host),
			huh.NewInput().
				Title("SMTP port").
				Placeholder("587").
				Value(&port).
				Validate(validOptionalPort),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SMTPHost = strings.TrimSpace(host)
	cfg.SMTPPort = 0
	if p := strings.TrimSpace(port); p != "" {
		cfg.SMTPPort, _ = strconv.Atoi(p)
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ SMTP server saved.\n"))
	return nil
}

func validOptionalURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("must be an http(s) URL")
	}
	return nil
}

func validOptionalPort(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("must be a port number between 1 and 65535")
	}
	return nil
}

// ValidHex checks a "#RRGGBB" color code
func ValidHex(s string) error {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for gitamctl").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s GITAM Teal", colorBlock(DefaultAccent)), DefaultAccent),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(ValidHex),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
