// Package page fetches IMDb HTML pages by logical name and keeps each parsed
// document for the lifetime of the Loader.
package page

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Digital-Shane/imdbkit/internal/config"
	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/log"
	"github.com/Digital-Shane/imdbkit/internal/transport"
)

// Name identifies a page template.
type Name string

const (
	TitleMain     Name = "title-main"
	Taglines      Name = "taglines"
	ParentalGuide Name = "parental-guide"
	Locations     Name = "locations"
	PersonBio     Name = "person-bio"
	Find          Name = "find"
	BoxOffice     Name = "box-office"
)

// templates maps page names to path templates. {id} is path-escaped, every
// other placeholder is query-escaped.
var templates = map[Name]string{
	TitleMain:     "/title/{id}/",
	Taglines:      "/title/{id}/taglines/",
	ParentalGuide: "/title/{id}/parentalguide/",
	Locations:     "/title/{id}/locations/",
	PersonBio:     "/name/{id}/bio/",
	Find:          "/find/?q={q}&s={kind}",
	BoxOffice:     "/chart/boxoffice/",
}

// Params fills template placeholders.
type Params map[string]string

// Getter issues a GET that follows redirects.
type Getter interface {
	Get(ctx context.Context, rawURL string, header http.Header) (*transport.Response, error)
}

// HTTPStatusError reports a non-2xx answer for a page after redirects.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Location   string
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	loc := strings.TrimSpace(e.Location)
	if loc == "" {
		return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP %d for %s location=%s", e.StatusCode, e.URL, loc)
}

// Path expands the template for name.
func Path(name Name, params Params) (string, error) {
	tmpl, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("page: unknown page %q", name)
	}
	out := tmpl
	for k, v := range params {
		ph := "{" + k + "}"
		if !strings.Contains(out, ph) {
			continue
		}
		if k == "id" {
			v = url.PathEscape(v)
		} else {
			v = url.QueryEscape(v)
		}
		out = strings.ReplaceAll(out, ph, v)
	}
	if strings.Contains(out, "{") {
		return "", fmt.Errorf("page: %s: missing parameter in %q", name, out)
	}
	return out, nil
}

// Loader loads and parses pages. It is meant to be owned by one lookup
// object; the cache never evicts.
type Loader struct {
	cfg    *config.Config
	getter Getter
	cache  *cache.Cache
	logger *slog.Logger
}

// NewLoader creates a loader. A nil cfg uses defaults and a nil logger
// discards output.
func NewLoader(cfg *config.Config, getter Getter, logger *slog.Logger) *Loader {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Loader{
		cfg:    cfg,
		getter: getter,
		cache:  cache.New(cache.NoExpiration, 0),
		logger: log.OrDiscard(logger),
	}
}

// URL returns the absolute address for name.
func (l *Loader) URL(name Name, params Params) (string, error) {
	p, err := Path(name, params)
	if err != nil {
		return "", err
	}
	return l.cfg.BaseURL() + p, nil
}

// Load fetches and parses name, serving repeated requests from the cache.
// Failures are not cached.
func (l *Loader) Load(ctx context.Context, name Name, params Params) (*extract.Node, error) {
	u, err := l.URL(name, params)
	if err != nil {
		return nil, err
	}
	if v, ok := l.cache.Get(u); ok {
		if doc, ok := v.(*extract.Node); ok {
			l.logger.Debug("page cache hit", slog.String("page", string(name)), slog.String("url", u))
			return doc, nil
		}
	}

	start := time.Now()
	resp, err := l.getter.Get(ctx, u, l.headers())
	if err != nil {
		return nil, err
	}
	l.logger.Debug("page fetch",
		slog.String("page", string(name)),
		slog.String("url", resp.URL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{URL: resp.URL, StatusCode: resp.StatusCode, Location: resp.Header.Get("Location")}
	}

	doc, err := extract.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("page: parse %s: %w", u, err)
	}
	l.cache.Set(u, doc, cache.NoExpiration)
	return doc, nil
}

func (l *Loader) headers() http.Header {
	lang, _ := l.cfg.Locale()
	h := http.Header{}
	h.Set("Accept-Language", lang)
	return h
}
