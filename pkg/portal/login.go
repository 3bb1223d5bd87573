package portal

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Element ids on the login page
const (
	userField     = "txtusername"
	passwordField = "password"
	captchaField  = "captcha_form"
)

// SolveCaptcha answers the arithmetic captcha: the operands are the first
// and fifth span inside div.preview.
func SolveCaptcha(doc *goquery.Document) (int, error) {
	spans := doc.Find("div.preview span")
	if spans.Length() < 5 {
		return 0, fmt.Errorf("%w: found %d spans", ErrCaptcha, spans.Length())
	}

	first, err := strconv.Atoi(strings.TrimSpace(spans.Eq(0).Text()))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCaptcha, err)
	}
	second, err := strconv.Atoi(strings.TrimSpace(spans.Eq(4).Text()))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCaptcha, err)
	}

	return first + second, nil
}

// Login submits the portal login form, keeping the ASP.NET hidden state
func (c *Client) Login(ctx context.Context, creds Credentials) error {
	body, pageURL, err := c.get(ctx, c.settings.LoginURL)
	if err != nil {
		return err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to parse login page: %w", err)
	}

	answer, err := SolveCaptcha(doc)
	if err != nil {
		return err
	}

	form := hiddenFields(doc)
	form[fieldName(doc, userField)] = creds.UserID
	form[fieldName(doc, passwordField)] = creds.Password
	form[fieldName(doc, captchaField)] = strconv.Itoa(answer)

	// ASP.NET only runs the click handler when the button is posted too
	if button := doc.Find("input[type=submit]").First(); button.Length() > 0 {
		if name, ok := button.Attr("name"); ok && name != "" {
			form[name] = button.AttrOr("value", "")
		}
	}

	action, err := formAction(doc, pageURL)
	if err != nil {
		return err
	}

	landing, err := c.postForm(ctx, action, form)
	if err != nil {
		return err
	}

	result, err := goquery.NewDocumentFromReader(bytes.NewReader(landing))
	if err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	if result.Find("#"+userField).Length() > 0 {
		return ErrLoginFailed
	}

	c.landing = landing
	return nil
}

func hiddenFields(doc *goquery.Document) map[string]string {
	fields := make(map[string]string)
	doc.Find("input[type=hidden]").Each(func(i int, sel *goquery.Selection) {
		if name, ok := sel.Attr("name"); ok && name != "" {
			fields[name] = sel.AttrOr("value", "")
		}
	})
	return fields
}

// fieldName maps an element id to the name the form posts it under
func fieldName(doc *goquery.Document, id string) string {
	if name, ok := doc.Find("#" + id).Attr("name"); ok && name != "" {
		return name
	}
	return id
}

func formAction(doc *goquery.Document, pageURL string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid login url %q: %w", pageURL, err)
	}

	action := doc.Find("form").First().AttrOr("action", "")
	if action == "" {
		return base.String(), nil
	}

	ref, err := url.Parse(action)
	if err != nil {
		return "", fmt.Errorf("invalid form action %q: %w", action, err)
	}
	return base.ResolveReference(ref).String(), nil
}
