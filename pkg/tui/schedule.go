package tui

import (
	"context"
	"fmt"
	"strings"

	"gitamctl/pkg/app"
	"gitamctl/pkg/daily"
	"gitamctl/pkg/render"

	"github.com/charmbracelet/huh"
)

// Collect logs in, reconciles the day's timetable and prints it. With spin
// set the fetch runs behind a spinner.
func Collect(ctx context.Context, a *app.App, day string, spin bool) (*daily.Report, error) {
	var report *daily.Report
	var err error

	fetch := func() {
		report, err = a.Collect(ctx, day)
	}
	if spin {
		Spin("Logging into GITAM and collecting today's timetable...", fetch)
	} else {
		fetch()
	}
	if err != nil {
		return nil, err
	}

	fmt.Println(AccentStyle().Render(fmt.Sprintf("\nTimetable for %s:", report.Day)))
	fmt.Println(render.Text(report.Entries))
	return report, nil
}

// RunTodayTUI shows today's reconciled timetable
func RunTodayTUI(a *app.App, day string) error {
	_, err := Collect(context.Background(), a, day, true)
	return err
}

// RunSendTUI shows today's timetable and emails it after confirmation
func RunSendTUI(a *app.App, day string) error {
	if err := a.CheckMail(); err != nil {
		return err
	}

	report, err := Collect(context.Background(), a, day, true)
	if err != nil {
		return err
	}
	if len(report.Entries) == 0 {
		fmt.Println(errorStyle.Render("No classes today, nothing to send."))
		return nil
	}

	confirm := true
	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Email %d classes to %s?", len(report.Entries), a.MailConfig().To)).
				Value(&confirm),
		),
	).WithTheme(GetTheme())

	if err := confirmForm.Run(); err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	var sendErr error
	Spin("Sending email...", func() {
		_, sendErr = a.Send(context.Background(), report)
	})
	if sendErr != nil {
		return sendErr
	}

	fmt.Println(accentStyle.Render("\nSuccess! Today's timetable is in your inbox."))
	return nil
}

// RunExportTUI shows today's timetable and saves it as an .ics file
func RunExportTUI(a *app.App, day string) error {
	report, err := Collect(context.Background(), a, day, true)
	if err != nil {
		return err
	}
	if len(report.Entries) == 0 {
		fmt.Println(errorStyle.Render("No classes today, nothing to export."))
		return nil
	}

	outputFile := "today.ics"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	if err := a.Export(report, outputFile); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d classes to %s", len(report.Entries), outputFile)))
	return nil
}
