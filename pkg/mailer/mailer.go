package mailer

import (
	"context"
	"fmt"
	"time"

	"gitamctl/pkg/daily"

	"github.com/wneessen/go-mail"
)

const (
	DefaultHost = "smtp.gmail.com"
	DefaultPort = 587
)

// Config holds everything needed to reach the SMTP server and the recipient
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
	Timeout  time.Duration
}

// Sender delivers emails over SMTP with STARTTLS
type Sender struct {
	cfg Config
}

// New creates a Sender, filling in Gmail defaults for host and port
func New(cfg Config) *Sender {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Sender{cfg: cfg}
}

// Message builds the email. With a text rendering it is multipart/alternative
// with the plain part first, so clients prefer the trailing HTML part.
func (s *Sender) Message(email daily.Email) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(s.cfg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(email.Subject)
	m.SetDate()
	if email.Text == "" {
		m.SetBodyString(mail.TypeTextHTML, email.HTML)
		return m, nil
	}
	m.SetBodyString(mail.TypeTextPlain, email.Text)
	m.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	return m, nil
}

// Send dials the SMTP server and delivers the email
func (s *Sender) Send(ctx context.Context, email daily.Email) error {
	m, err := s.Message(email)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTimeout(s.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to deliver to %s: %w", s.cfg.To, err)
	}
	return nil
}
