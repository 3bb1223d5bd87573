package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"gitamctl/pkg/config"
	"gitamctl/pkg/daily"
	"gitamctl/pkg/exporter"
	"gitamctl/pkg/mailer"
	"gitamctl/pkg/portal"

	"github.com/charmbracelet/log"
)

// App wires configuration to the portal, the reconciler and the mailer.
// It is built once per process and handed to every command.
type App struct {
	cfg    *config.AppConfig
	env    config.Env
	logger *log.Logger
	clock  func() time.Time
	create func(path string) (io.WriteCloser, error)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// New loads the settings file and the environment
func New(logger *log.Logger) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:    cfg,
		env:    config.LoadEnv().WithRecipient(cfg),
		logger: logger,
		clock:  time.Now,
		create: createFile,
	}, nil
}

// Config returns the loaded settings
func (a *App) Config() *config.AppConfig {
	return a.cfg
}

// Now is the moment the run happens
func (a *App) Now() time.Time {
	return a.clock()
}

// PortalSettings builds the portal client settings from the config file
func (a *App) PortalSettings() portal.Settings {
	return portal.Settings{
		LoginURL:    a.cfg.LoginURL,
		BasicURL:    a.cfg.BasicURL,
		DetailedURL: a.cfg.DetailedURL,
	}
}

// MailConfig builds the SMTP settings from the environment and config file
func (a *App) MailConfig() mailer.Config {
	return mailer.Config{
		Host:     a.cfg.SMTPHost,
		Port:     a.cfg.SMTPPort,
		Username: a.env.EmailAddress,
		Password: a.env.EmailPassword,
		From:     a.env.EmailAddress,
		To:       a.env.RecipientEmail,
	}
}

// Collect logs into the portal and reconciles today's timetable.
// dayOverride replaces the weekday taken from the clock when non-empty.
func (a *App) Collect(ctx context.Context, dayOverride string) (*daily.Report, error) {
	if err := a.env.ValidatePortal(); err != nil {
		return nil, err
	}

	client := portal.NewClient(a.PortalSettings())
	defer client.Close()

	a.logger.Info("logging into portal")
	if err := client.Login(ctx, portal.Credentials{UserID: a.env.UserID, Password: a.env.Password}); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	day := daily.Today(a.Now(), dayOverride)
	report, err := daily.Build(ctx, client, day, a.logger)
	if err != nil {
		return nil, err
	}
	report.Date = daily.DateOf(a.Now(), day)
	return report, nil
}

// reportDate dates the email and the export after the reconciled day
func (a *App) reportDate(report *daily.Report) time.Time {
	if report.Date.IsZero() {
		return a.Now()
	}
	return report.Date
}

// CheckMail fails early when the email settings are incomplete
func (a *App) CheckMail() error {
	return a.env.ValidateMail()
}

// Send emails the report; an empty schedule is skipped and reports false
func (a *App) Send(ctx context.Context, report *daily.Report) (bool, error) {
	if err := a.CheckMail(); err != nil {
		return false, err
	}
	return daily.Deliver(ctx, mailer.New(a.MailConfig()), report, a.reportDate(report), a.logger)
}

// Export writes the report as an ICS calendar file
func (a *App) Export(report *daily.Report, path string) error {
	file, err := a.create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := exporter.GenerateICS(report.Entries, a.reportDate(report), file); err != nil {
		file.Close()
		return fmt.Errorf("failed to generate ICS: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
