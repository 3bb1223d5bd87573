package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitamctl/pkg/config"
	"gitamctl/pkg/daily"
	"gitamctl/pkg/timetable"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(env config.Env, cfg *config.AppConfig) *App {
	return &App{
		cfg:    cfg,
		env:    env,
		logger: log.New(io.Discard),
		clock:  func() time.Time { return time.Date(2026, time.March, 2, 7, 0, 0, 0, time.UTC) },
		create: createFile,
	}
}

func TestNew_ReadsConfigAndRecipientOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	chdir(t, t.TempDir())
	t.Setenv("RECIPIENT_EMAIL", "env@example.com")

	require.NoError(t, config.Save(&config.AppConfig{Recipient: "saved@example.com", SMTPPort: 2525}))

	a, err := New(log.New(io.Discard))
	require.NoError(t, err)

	mc := a.MailConfig()
	assert.Equal(t, "saved@example.com", mc.To)
	assert.Equal(t, 2525, mc.Port)
}

func TestCollect_MissingCredentials(t *testing.T) {
	a := newTestApp(config.Env{}, &config.AppConfig{})

	_, err := a.Collect(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "USER_ID")
}

func TestSend_MissingMailSettings(t *testing.T) {
	a := newTestApp(config.Env{UserID: "x", Password: "y"}, &config.AppConfig{})

	sent, err := a.Send(context.Background(), &daily.Report{})
	assert.False(t, sent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_ADDRESS")
}

func TestExport(t *testing.T) {
	a := newTestApp(config.Env{}, &config.AppConfig{})
	path := filepath.Join(t.TempDir(), "today.ics")

	report := &daily.Report{Entries: []timetable.ScheduleEntry{
		{Time: "9:00-9:50", Subject: "Physics", Room: "ICT-101", Teacher: "Dr. Rao", Day: "Monday"},
	}}
	require.NoError(t, a.Export(report, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "SUMMARY:Physics"))
	assert.Contains(t, string(data), "DTSTART:20260302T090000Z")
}

func TestExport_UsesReportDate(t *testing.T) {
	a := newTestApp(config.Env{}, &config.AppConfig{})
	path := filepath.Join(t.TempDir(), "tuesday.ics")

	report := &daily.Report{
		Day:  "Tuesday",
		Date: time.Date(2026, time.March, 3, 7, 0, 0, 0, time.UTC),
		Entries: []timetable.ScheduleEntry{
			{Time: "9:00-9:50", Subject: "Physics", Room: "ICT-101", Teacher: "Dr. Rao", Day: "Tuesday"},
		},
	}
	require.NoError(t, a.Export(report, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DTSTART:20260303T090000Z")
}

type failingFile struct {
	strings.Builder
}

func (f *failingFile) Close() error {
	return errors.New("disk full")
}

func TestExport_ReportsCloseError(t *testing.T) {
	a := newTestApp(config.Env{}, &config.AppConfig{})
	a.create = func(string) (io.WriteCloser, error) { return &failingFile{}, nil }

	report := &daily.Report{Entries: []timetable.ScheduleEntry{
		{Time: "9:00-9:50", Subject: "Physics", Room: "ICT-101", Teacher: "Dr. Rao", Day: "Monday"},
	}}

	err := a.Export(report, "today.ics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
