// Package api holds the HTTP client for the board site.
package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html/charset"
)

const (
	defaultUserAgent = "parkview/1.0"
	requestTimeout   = 10 * time.Second
)

// Client fetches listing pages from one site origin. The fetch is a plain
// blocking GET; callers own any in-flight bookkeeping.
type Client struct {
	origin     string
	userAgent  string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a client for the given origin, e.g. "https://www.clien.net".
// logger may be nil; all logging call sites are guarded.
func NewClient(origin string, logger *log.Logger) *Client {
	return &Client{
		origin:    strings.TrimRight(origin, "/"),
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// NewFileLogger opens the shared application log under dir. Returns nil when
// the file cannot be opened; callers treat a nil logger as "logging off".
func NewFileLogger(dir string) *log.Logger {
	logFile := filepath.Join(dir, "parkview.log")

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil
	}

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "parkview",
	})
}

// SetUserAgent overrides the User-Agent header sent with every request.
func (c *Client) SetUserAgent(ua string) {
	if strings.TrimSpace(ua) != "" {
		c.userAgent = ua
	}
}

// Board fetches the listing page at path (e.g. "/service/board/park") and
// returns the body decoded to UTF-8. The site serves localized pages whose
// declared charset has varied over the years, so the decode honors the
// response Content-Type instead of assuming UTF-8.
func (c *Client) Board(path string) (string, error) {
	endpoint := c.AbsoluteURL(path)

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Failed to create request", "url", endpoint, "error", err)
		}
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	if c.logger != nil {
		c.logger.Info("GET", "endpoint", endpoint)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Request failed", "url", endpoint, "error", err)
		}
		return "", fmt.Errorf("failed to fetch board page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if c.logger != nil {
			c.logger.Error("Site error", "status", resp.StatusCode, "url", endpoint)
		}
		return "", fmt.Errorf("site error (status %d) for %s", resp.StatusCode, endpoint)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to decode response charset: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("Fetched", "url", endpoint, "bytes", len(body), "status", resp.StatusCode)
	}

	return string(body), nil
}

// AbsoluteURL resolves a site-relative reference (a row URL or board path)
// against the client's origin.
func (c *Client) AbsoluteURL(ref string) string {
	base, err := url.Parse(c.origin)
	if err != nil {
		return c.origin + ref
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return c.origin + ref
	}
	return base.ResolveReference(rel).String()
}
