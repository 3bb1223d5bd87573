package portal

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"resty.dev/v3"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Client holds one logged in session with the student portal
type Client struct {
	settings Settings
	http     *resty.Client

	// landing is the page served right after a successful login
	landing []byte
}

// NewClient creates a portal client with its own cookie jar
func NewClient(settings Settings) *Client {
	settings = settings.withDefaults()

	jar, _ := cookiejar.New(nil)

	client := resty.New().
		SetCookieJar(jar).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10)).
		SetTimeout(settings.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(5*time.Second).
		AddRetryConditions(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("User-Agent", userAgent)

	return &Client{settings: settings, http: client}
}

// Close releases the underlying HTTP client
func (c *Client) Close() error {
	return c.http.Close()
}

// get fetches url and returns the body together with the URL it ended up on
func (c *Client) get(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode() >= 400 {
		return nil, "", fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode(), url)
	}
	return resp.Bytes(), finalURL(resp, url), nil
}

func (c *Client) postForm(ctx context.Context, url string, form map[string]string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("failed to post %s: %w", url, err)
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("unexpected status code %d when posting %s", resp.StatusCode(), url)
	}
	return resp.Bytes(), nil
}

func finalURL(resp *resty.Response, fallback string) string {
	if resp.RawResponse != nil && resp.RawResponse.Request != nil && resp.RawResponse.Request.URL != nil {
		return resp.RawResponse.Request.URL.String()
	}
	return fallback
}

// FetchBasicLines returns the raw lines of today's class list
func (c *Client) FetchBasicLines(ctx context.Context) ([]string, error) {
	if c.settings.BasicURL == "" {
		if c.landing == nil {
			return nil, ErrNotLoggedIn
		}
		return ExtractBasicLines(bytes.NewReader(c.landing))
	}

	body, _, err := c.get(ctx, c.settings.BasicURL)
	if err != nil {
		return nil, err
	}
	return ExtractBasicLines(bytes.NewReader(body))
}

// FetchDetailedRows returns the cells of every registered course row
func (c *Client) FetchDetailedRows(ctx context.Context) ([][]string, error) {
	body, _, err := c.get(ctx, c.settings.DetailedURL)
	if err != nil {
		return nil, err
	}
	return ExtractDetailedRows(bytes.NewReader(body))
}
