// Package imdb normalizes IMDb titles, people, companies, search results,
// keywords, news, videos and the box-office chart into stable records.
//
// Each lookup object (TitleLookup, PersonLookup, CompanyLookup, VideoLookup,
// Search, Lists) owns its own result memo and page cache and is meant for one
// logical lookup. Concurrent use of one object is unsupported; create a fresh
// one per request.
package imdb

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Digital-Shane/imdbkit/internal/config"
	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/graphql"
	"github.com/Digital-Shane/imdbkit/internal/log"
	"github.com/Digital-Shane/imdbkit/internal/page"
	"github.com/Digital-Shane/imdbkit/internal/provider"
	"github.com/Digital-Shane/imdbkit/internal/transport"
)

const providerName = "imdb"

// Transport is what the client needs from the network: a single cycle for
// queries and a redirect-following GET for pages.
type Transport interface {
	Do(ctx context.Context, r transport.Request) (*transport.Response, error)
	Get(ctx context.Context, rawURL string, header http.Header) (*transport.Response, error)
}

// Client creates lookup objects sharing one configuration and transport.
type Client struct {
	cfg       *config.Config
	transport Transport
	gql       *graphql.Client
	logger    *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTransport replaces the default net/http transport.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithHTTPClient routes requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.transport = transport.NewWithHTTPClient(hc) }
}

// WithLogger sets the logger. Without it output is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client. A nil cfg uses defaults.
func New(cfg *config.Config, opts ...Option) *Client {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = transport.New(cfg.Timeout())
	}
	c.logger = log.OrDiscard(c.logger)
	c.gql = graphql.NewClient(cfg, c.transport, c.logger)
	return c
}

// base is the state every lookup object carries.
type base struct {
	cfg    *config.Config
	gql    *graphql.Client
	pages  *page.Loader
	memo   *memo
	logger *slog.Logger
}

func (c *Client) newBase(kind, id string) base {
	logger := c.logger
	if id != "" {
		logger = logger.With(slog.String(kind, id))
	}
	return base{
		cfg:    c.cfg,
		gql:    c.gql,
		pages:  page.NewLoader(c.cfg, c.transport, logger),
		memo:   newMemo(),
		logger: logger,
	}
}

// Title starts a lookup of title id.
func (c *Client) Title(id string) *TitleLookup {
	return &TitleLookup{base: c.newBase("title", id), id: id}
}

// Person starts a lookup of person id.
func (c *Client) Person(id string) *PersonLookup {
	return &PersonLookup{base: c.newBase("person", id), id: id}
}

// Company starts a lookup of company id.
func (c *Client) Company(id string) *CompanyLookup {
	return &CompanyLookup{base: c.newBase("company", id), id: id}
}

// Video starts a lookup of video id.
func (c *Client) Video(id string) *VideoLookup {
	return &VideoLookup{base: c.newBase("video", id), id: id}
}

// Search starts a search session.
func (c *Client) Search() *Search {
	return &Search{base: c.newBase("", "")}
}

// Lists starts a lookup of the site-wide lists: keyword titles, news and
// the box-office chart.
func (c *Client) Lists() *Lists {
	return &Lists{base: c.newBase("", "")}
}

func requireID(id string, kind extract.IDKind) error {
	if got := extract.ExtractID(id, kind); got == nil || *got != id {
		return &provider.ProviderError{
			Provider: providerName,
			Code:     provider.CodeInvalidRequest,
			Message:  fmt.Sprintf("invalid %s id %q", kind, id),
		}
	}
	return nil
}

// scrape loads page name once and runs themes over it, memoizing the result
// under key. A page where no theme matches yields the zero value.
func scrape[T any](ctx context.Context, b *base, key string, name page.Name, params page.Params, themes ...extract.Theme[T]) (T, error) {
	return remember(b.memo, key, func() (T, error) {
		var zero T
		doc, err := b.pages.Load(ctx, name, params)
		if err != nil {
			return zero, err
		}
		v, theme, ok := extract.FirstTheme(doc, themes...)
		if !ok {
			b.logger.Debug("no theme matched", slog.String("section", key))
			return zero, nil
		}
		b.logger.Debug("theme matched", slog.String("section", key), slog.String("theme", theme))
		return v, nil
	})
}
