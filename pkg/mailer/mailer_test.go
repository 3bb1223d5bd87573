package mailer

import (
	"bytes"
	"strings"
	"testing"

	"gitamctl/pkg/daily"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s := New(Config{Username: "me@example.com", Password: "pw", To: "you@example.com"})

	assert.Equal(t, DefaultHost, s.cfg.Host)
	assert.Equal(t, DefaultPort, s.cfg.Port)
	assert.Equal(t, "me@example.com", s.cfg.From)
}

func TestMessage(t *testing.T) {
	s := New(Config{Username: "me@example.com", To: "you@example.com"})

	m, err := s.Message(daily.Email{
		Subject: daily.Subject,
		HTML:    "<p>Physics</p>",
		Text:    "Physics",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Your Daily Class Schedule")
	assert.Contains(t, out, "me@example.com")
	assert.Contains(t, out, "you@example.com")
	assert.Contains(t, out, "multipart/alternative")
	assert.Contains(t, out, "text/html")
	assert.Contains(t, out, "text/plain")

	plain := strings.Index(out, "Content-Type: text/plain")
	html := strings.Index(out, "Content-Type: text/html")
	require.NotEqual(t, -1, plain)
	require.NotEqual(t, -1, html)
	assert.Less(t, plain, html, "HTML must be the last, preferred alternative")
}

func TestMessage_HTMLOnly(t *testing.T) {
	s := New(Config{Username: "me@example.com", To: "you@example.com"})

	m, err := s.Message(daily.Email{Subject: daily.Subject, HTML: "<p>Physics</p>"})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "multipart/alternative")
	assert.NotContains(t, out, "text/plain")
	assert.Contains(t, out, "Content-Type: text/html")
}

func TestMessage_InvalidRecipient(t *testing.T) {
	s := New(Config{Username: "me@example.com", To: "not an address"})

	_, err := s.Message(daily.Email{Subject: "x", HTML: "<p>x</p>"})
	assert.Error(t, err)
}
