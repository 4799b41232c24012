// Package fetch implements the Fetcher and Downloader interfaces.
// Page fetches carry language-targeted headers and retry a bounded number
// of times with a fixed delay; failures surface as warnings, never errors.
// Asset downloads are single-shot streamed transfers.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

const (
	defaultTimeout  = 30 * time.Second
	maxRedirectHops = 15

	// A browser-like User-Agent: the target site serves reduced pages to
	// obvious bots.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// HTTPFetcher fetches story pages and image assets over HTTP. The embedded
// client (and its connection pool) is shared by both kinds of transfer.
type HTTPFetcher struct {
	client     *http.Client
	maxRetries int
	backoff    time.Duration
}

// New creates an HTTPFetcher. maxRetries <= 0 defaults to 3 attempts;
// backoff is the fixed sleep after each failed attempt.
func New(maxRetries int, backoff time.Duration) *HTTPFetcher {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirectHops {
					return fmt.Errorf("stopped after %d redirects", maxRedirectHops)
				}
				return nil
			},
		},
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// AcceptLanguage returns the Accept-Language header value for a language
// code. Chinese variants ask for Chinese with an English fallback so the
// server never answers 406; everything else asks for English.
func AcceptLanguage(lang string) string {
	if strings.HasPrefix(strings.ToLower(lang), "zh") {
		return "zh-CN,zh;q=0.9,en;q=0.6"
	}
	return "en-US,en;q=0.8"
}

// FetchPage retrieves the HTML of url, retrying on non-200 status, empty
// body, or transport failure. On success it returns immediately; after the
// last attempt it returns "" with one warning per failed attempt.
func (f *HTTPFetcher) FetchPage(ctx context.Context, url, lang string) (string, []string) {
	var warnings []string
	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		body, status, err := f.get(ctx, url, lang)
		switch {
		case err != nil:
			warnings = append(warnings, fmt.Sprintf("request failed: %s: %v (attempt %d/%d)", url, err, attempt, f.maxRetries))
		case status != http.StatusOK:
			warnings = append(warnings, fmt.Sprintf("HTTP %d: %s (attempt %d/%d)", status, url, attempt, f.maxRetries))
		case body == "":
			warnings = append(warnings, fmt.Sprintf("empty body: %s (attempt %d/%d)", url, attempt, f.maxRetries))
		default:
			return body, warnings
		}
		time.Sleep(f.backoff)
	}
	return "", warnings
}

// get performs one GET attempt and decodes the body to UTF-8 based on the
// response Content-Type.
func (f *HTTPFetcher) get(ctx context.Context, url, lang string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", AcceptLanguage(lang))

	resp, err := f.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		reader = resp.Body
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}

// Download opens a streamed transfer for an image asset. Single attempt,
// base headers only. The caller owns the returned body.
func (f *HTTPFetcher) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}
	return resp.Body, nil
}
