package imdb

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/Digital-Shane/imdbkit/internal/config"
	"github.com/Digital-Shane/imdbkit/internal/transport"
)

// fakeTransport answers queries by operation name and pages by path.
type fakeTransport struct {
	t          *testing.T
	queries    map[string]string
	status     map[string]int
	pages      map[string]string
	queryCalls map[string]int
	pageCalls  map[string]int
	variables  map[string]map[string]any
	netErr     error
}

func newFakeTransport(t *testing.T) *fakeTransport {
	t.Helper()
	return &fakeTransport{
		t:          t,
		queries:    map[string]string{},
		status:     map[string]int{},
		pages:      map[string]string{},
		queryCalls: map[string]int{},
		pageCalls:  map[string]int{},
		variables:  map[string]map[string]any{},
	}
}

// query registers a testdata JSON file for operation.
func (f *fakeTransport) query(operation, file string) *fakeTransport {
	f.queries[operation] = fixture(f.t, file)
	return f
}

// page registers a testdata HTML file for path.
func (f *fakeTransport) page(path, file string) *fakeTransport {
	f.pages[path] = fixture(f.t, file)
	return f
}

func (f *fakeTransport) Do(_ context.Context, r transport.Request) (*transport.Response, error) {
	if f.netErr != nil {
		return nil, &transport.Error{Method: r.Method, URL: r.URL, Err: f.netErr}
	}
	var body struct {
		OperationName string         `json:"operationName"`
		Variables     map[string]any `json:"variables"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		f.t.Fatalf("request body is not JSON: %v", err)
	}
	op := body.OperationName
	f.queryCalls[op]++
	f.variables[op] = body.Variables

	status := http.StatusOK
	if s, ok := f.status[op]; ok {
		status = s
	}
	data, ok := f.queries[op]
	if !ok {
		return &transport.Response{StatusCode: http.StatusNotFound, Header: http.Header{}, Body: []byte(`{}`), URL: r.URL}, nil
	}
	return &transport.Response{StatusCode: status, Header: http.Header{}, Body: []byte(data), URL: r.URL}, nil
}

func (f *fakeTransport) Get(_ context.Context, rawURL string, _ http.Header) (*transport.Response, error) {
	if f.netErr != nil {
		return nil, &transport.Error{Method: http.MethodGet, URL: rawURL, Err: f.netErr}
	}
	path := strings.TrimPrefix(rawURL, "https://www.imdb.com")
	f.pageCalls[path]++
	body, ok := f.pages[path]
	if !ok {
		return &transport.Response{StatusCode: http.StatusNotFound, Header: http.Header{}, Body: []byte("<html></html>"), URL: rawURL}, nil
	}
	return &transport.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: []byte(body), URL: rawURL}, nil
}

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return string(b)
}

func newTestClient(f *fakeTransport) *Client {
	return New(config.DefaultConfig(), WithTransport(f))
}

func ptr[T any](v T) *T { return &v }

func mustNoErr(t *testing.T, err error, what string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s error = %v", what, err)
	}
}
