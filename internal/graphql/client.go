// Package graphql sends named queries to the IMDb GraphQL endpoint and
// unwraps the response envelope.
package graphql

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/Digital-Shane/imdbkit/internal/config"
	"github.com/Digital-Shane/imdbkit/internal/log"
	"github.com/Digital-Shane/imdbkit/internal/transport"
)

// Doer performs one HTTP request/response cycle.
type Doer interface {
	Do(ctx context.Context, r transport.Request) (*transport.Response, error)
}

// Variables are the query variables. A nil map is sent as {}.
type Variables map[string]any

// Client is the query-API client. It does not know the shape of individual
// queries; callers destructure the returned data payload.
type Client struct {
	cfg    *config.Config
	doer   Doer
	logger *slog.Logger
}

// NewClient creates a query client. A nil logger discards output.
func NewClient(cfg *config.Config, doer Doer, logger *slog.Logger) *Client {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Client{cfg: cfg, doer: doer, logger: log.OrDiscard(logger)}
}

type requestBody struct {
	OperationName string    `json:"operationName"`
	Query         string    `json:"query"`
	Variables     Variables `json:"variables"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Query sends query under operation with variables and returns the raw data
// payload. Transport failures, non-200 status and a missing data key all
// become *RequestFailedError.
func (c *Client) Query(ctx context.Context, query, operation string, variables Variables) (json.RawMessage, error) {
	if variables == nil {
		variables = Variables{}
	}
	id := idOf(variables)

	body, err := json.Marshal(requestBody{
		OperationName: operation,
		Query:         NormalizeQuery(query),
		Variables:     variables,
	})
	if err != nil {
		return nil, &RequestFailedError{Operation: operation, ID: id, Err: err}
	}

	start := time.Now()
	resp, err := c.doer.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    c.cfg.GraphQLEndpoint,
		Header: c.headers(),
		Body:   body,
	})
	if err != nil {
		return nil, &RequestFailedError{Operation: operation, ID: id, Err: err}
	}

	c.logger.Debug("graphql query",
		slog.String("operation", operation),
		slog.String("id", id),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestFailedError{Operation: operation, ID: id, StatusCode: resp.StatusCode}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, &RequestFailedError{Operation: operation, ID: id, StatusCode: resp.StatusCode, Err: err}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		var cause error = errMissingData
		if len(env.Errors) > 0 {
			cause = fmt.Errorf("%w: %s", errMissingData, env.Errors[0].Message)
		}
		return nil, &RequestFailedError{Operation: operation, ID: id, StatusCode: resp.StatusCode, Err: cause}
	}
	return env.Data, nil
}

// QueryInto runs Query and decodes the data payload into out.
func (c *Client) QueryInto(ctx context.Context, query, operation string, variables Variables, out any) error {
	data, err := c.Query(ctx, query, operation, variables)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RequestFailedError{Operation: operation, ID: idOf(variables), StatusCode: http.StatusOK, Err: err}
	}
	return nil
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if c.cfg.UseLocalization {
		lang, country := c.cfg.Locale()
		h.Set("X-User-Country", country)
		h.Set("X-User-Language", lang)
	}
	return h
}

// NormalizeQuery trims every line of a query and drops blank lines.
func NormalizeQuery(query string) string {
	lines := strings.Split(query, "\n")
	out := lines[:0]
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

// idOf reports the id variable for diagnostics. Missing, nil and blank ids
// all read as "n/a".
func idOf(v Variables) string {
	id, ok := v["id"]
	if !ok || id == nil {
		return "n/a"
	}
	if s := strings.TrimSpace(fmt.Sprint(id)); s != "" {
		return s
	}
	return "n/a"
}
