// Package transport performs single HTTP request/response cycles for the
// query client and the page loader.
//
// Constraints:
//   - no retries: a failure surfaces immediately as *Error
//   - Do never follows redirects; Get follows them by re-issuing the GET
//   - the timeout is a fixed per-client constant
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	maxRedirects     = 10
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
)

// Request describes one outgoing HTTP request.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// URL is the address that produced this response, after redirects.
	URL string
}

// Error is a network-level failure reaching the remote service. DNS, connect
// and TLS failures are not distinguished.
type Error struct {
	Method string
	URL    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrTooManyRedirects is wrapped in *Error when a redirect chain exceeds the hop limit.
var ErrTooManyRedirects = errors.New("too many redirects")

// Client sends requests through an *http.Client that never follows redirects
// on its own.
type Client struct {
	http      *http.Client
	userAgent string
}

// New creates a client with the given timeout; zero means the default.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return NewWithHTTPClient(&http.Client{Timeout: timeout})
}

// NewWithHTTPClient wraps hc. The client is copied so its redirect policy can
// be replaced without touching the caller's value.
func NewWithHTTPClient(hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	c2 := *hc
	c2.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &Client{http: &c2, userAgent: defaultUserAgent}
}

// Do performs exactly one request/response cycle.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader = http.NoBody
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, body)
	if err != nil {
		return nil, &Error{Method: method, URL: r.URL, Err: err}
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Method: method, URL: r.URL, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Method: method, URL: r.URL, Err: err}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       b,
		URL:        r.URL,
	}, nil
}

// Get issues a GET and transparently follows redirects. Relative Location
// values are resolved against the original request's scheme and host.
func (c *Client) Get(ctx context.Context, rawURL string, header http.Header) (*Response, error) {
	origin, err := url.Parse(rawURL)
	if err != nil {
		return nil, &Error{Method: http.MethodGet, URL: rawURL, Err: err}
	}

	current := rawURL
	for hop := 0; hop <= maxRedirects; hop++ {
		resp, err := c.Do(ctx, Request{Method: http.MethodGet, URL: current, Header: header})
		if err != nil {
			return nil, err
		}
		if !IsRedirect(resp.StatusCode) {
			return resp, nil
		}
		loc := strings.TrimSpace(resp.Header.Get("Location"))
		if loc == "" {
			return resp, nil
		}
		current = ResolveLocation(origin, loc)
	}
	return nil, &Error{Method: http.MethodGet, URL: rawURL, Err: ErrTooManyRedirects}
}

// IsRedirect reports whether status is one of the followed redirect codes.
func IsRedirect(status int) bool {
	switch status {
	case http.StatusMultipleChoices,
		http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	}
	return false
}

// ResolveLocation turns a Location header value into an absolute URL.
func ResolveLocation(origin *url.URL, loc string) string {
	if strings.HasPrefix(loc, "//") {
		return origin.Scheme + ":" + loc
	}
	u, err := url.Parse(loc)
	if err != nil || u.IsAbs() {
		return loc
	}
	if !strings.HasPrefix(loc, "/") {
		loc = "/" + loc
	}
	return origin.Scheme + "://" + origin.Host + loc
}
