// Package transport implements the cache purger over HTTP, speaking the
// PURGE/BAN dialect of Varnish-style caches.
package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// requestTimeout bounds each purge call. Purges are best-effort; a slow
// cache server must not stall the host's unit of work indefinitely.
const requestTimeout = 10 * time.Second

const (
	headerPurgeRegex  = "X-Purge-Regex"
	headerPurgeMethod = "X-Purge-Method"
	headerSurrogate   = "Surrogate-Key"
)

// Client implements ports.CachePurger against an HTTP cache. Requests go to
// the target URL itself, or to a dedicated cache endpoint with the original
// Host preserved when settings.Endpoint is set.
type Client struct {
	settings domain.Settings
	http     *http.Client
}

// NewClient creates a Client.
func NewClient(settings domain.Settings) *Client {
	return &Client{
		settings: settings,
		http: &http.Client{
			Timeout: requestTimeout,
			// A cache answering a purge with a redirect must not be
			// followed; the response status is the verdict.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Enabled reports whether purging is configured and switched on.
func (c *Client) Enabled() bool {
	return c.settings.Enabled && c.settings.BaseURL != ""
}

// PurgeURL invalidates one cached URL.
func (c *Client) PurgeURL(ctx context.Context, raw string) error {
	target, hostHeader, err := c.rewrite(raw)
	if err != nil {
		return err
	}
	return c.send(ctx, target, hostHeader, nil)
}

// PurgeHost invalidates every cached object for a hostname via a regex ban
// against the host root.
func (c *Client) PurgeHost(ctx context.Context, host string) error {
	scheme := c.scheme()
	target, hostHeader, err := c.rewrite(scheme + "://" + host + "/")
	if err != nil {
		return err
	}
	return c.send(ctx, target, hostHeader, map[string]string{
		headerPurgeMethod: "regex",
		headerPurgeRegex:  ".*",
	})
}

// PurgeTag invalidates every cached object carrying a surrogate-key tag.
func (c *Client) PurgeTag(ctx context.Context, tag string) error {
	target, hostHeader, err := c.rewrite(c.settings.BaseURL + "/")
	if err != nil {
		return err
	}
	return c.send(ctx, target, hostHeader, map[string]string{
		headerSurrogate: tag,
	})
}

// rewrite maps a public URL to the request target. With a dedicated cache
// endpoint the request goes there instead, carrying the public host in the
// Host header so the cache can match the banned object.
func (c *Client) rewrite(raw string) (target, hostHeader string, err error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", "", zerr.With(domain.ErrPurgeRequestFailed, "url", raw)
	}

	if c.settings.Endpoint == "" {
		return u.String(), "", nil
	}

	ep, err := url.Parse(c.settings.Endpoint)
	if err != nil || ep.Scheme == "" || ep.Host == "" {
		return "", "", zerr.With(domain.ErrPurgeRequestFailed, "endpoint", c.settings.Endpoint)
	}

	hostHeader = u.Host
	u.Scheme = ep.Scheme
	u.Host = ep.Host
	return u.String(), hostHeader, nil
}

func (c *Client) send(ctx context.Context, target, hostHeader string, headers map[string]string) error {
	req, err := http.NewRequestWithContext(ctx, c.method(), target, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrPurgeRequestFailed.Error())
	}
	if hostHeader != "" {
		req.Host = hostHeader
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zerr.Wrap(err, domain.ErrPurgeRequestFailed.Error())
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zerr.With(zerr.With(domain.ErrPurgeRequestFailed,
			"status", resp.StatusCode), "target", target)
	}
	return nil
}

func (c *Client) method() string {
	if c.settings.Method != "" {
		return c.settings.Method
	}
	return "PURGE"
}

func (c *Client) scheme() string {
	if u, err := url.Parse(c.settings.BaseURL); err == nil && u.Scheme != "" {
		return u.Scheme
	}
	return "https"
}
