package portal

import (
	"errors"
	"time"
)

const (
	DefaultLoginURL    = "https://login.gitam.edu/Login.aspx"
	DefaultDetailedURL = "https://newgstudent.gitam.edu/Home"
	DefaultTimeout     = 60 * time.Second
)

var (
	ErrCaptcha              = errors.New("could not solve login captcha")
	ErrLoginFailed          = errors.New("login rejected by portal")
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrBasicListMissing     = errors.New("timetable list (ul#ullist) not found")
	ErrDetailedTableMissing = errors.New("registered courses table not found")
)

// Settings points the client at the portal pages
type Settings struct {
	LoginURL    string
	// BasicURL is the page holding today's ul#ullist. Empty means the page
	// the login form redirects to.
	BasicURL    string
	DetailedURL string
	Timeout     time.Duration
}

// Credentials are the student's portal login
type Credentials struct {
	UserID   string
	Password string
}

func (s Settings) withDefaults() Settings {
	if s.LoginURL == "" {
		s.LoginURL = DefaultLoginURL
	}
	if s.DetailedURL == "" {
		s.DetailedURL = DefaultDetailedURL
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	return s
}
