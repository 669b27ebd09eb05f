// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/pdiddy/recsys-data/internal/httputil"
	"github.com/pdiddy/recsys-data/internal/tabular"
	"github.com/pdiddy/recsys-data/pkg/types"
)

// Loader fetches datasets over HTTP. The zero value uses http.DefaultClient
// and the fixed repository endpoints. A Loader holds no mutable state and
// is safe for concurrent use.
type Loader struct {
	// Client performs the requests. Nil means http.DefaultClient, whose
	// lack of a timeout then applies.
	Client *http.Client

	// BaseURL replaces DefaultBaseURL, keeping each dataset's file name.
	BaseURL string

	// UserAgent is sent when non-empty.
	UserAgent string

	// Token is sent as a bearer token when non-empty.
	Token string
}

// NewLoader builds a Loader from cfg. A non-zero cfg.Timeout gets its own
// client; otherwise http.DefaultClient is used.
func NewLoader(cfg types.LoaderConfig) *Loader {
	l := &Loader{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Token:     cfg.Token,
	}
	if cfg.Timeout > 0 {
		l.Client = &http.Client{Timeout: cfg.Timeout}
	}
	return l
}

// URL returns the endpoint the loader fetches d from.
func (l *Loader) URL(d Dataset) string {
	if l.BaseURL == "" {
		return d.URL()
	}
	return urlFor(l.BaseURL, d)
}

// Extract fetches dataset d and parses it into a table whose columns follow
// the CSV header order. It blocks until the body is fully read. The
// connection is released on every path.
func (l *Loader) Extract(ctx context.Context, d Dataset) (*types.Table, error) {
	url := l.URL(d)

	body, err := httputil.Get(ctx, l.Client, url, httputil.Options{
		UserAgent: l.UserAgent,
		Token:     l.Token,
	})
	if err != nil {
		ne := &NetworkError{Dataset: d, URL: url, Err: err}
		var se *httputil.StatusError
		if errors.As(err, &se) {
			ne.StatusCode = se.StatusCode
		}
		return nil, ne
	}
	defer body.Close()

	br := &bodyReader{r: body}
	table, err := tabular.Read(br)
	if err != nil {
		// A failure while streaming the body is a transport failure, not a
		// malformed document.
		if br.err != nil {
			return nil, &NetworkError{Dataset: d, URL: url, Err: br.err}
		}
		return nil, &ParseError{Dataset: d, URL: url, Err: err}
	}
	return table, nil
}

// ExtractArticles loads the articles dataset.
func (l *Loader) ExtractArticles(ctx context.Context) (*types.Table, error) {
	return l.Extract(ctx, Articles)
}

// ExtractCustomers loads the customers dataset.
func (l *Loader) ExtractCustomers(ctx context.Context) (*types.Table, error) {
	return l.Extract(ctx, Customers)
}

// ExtractTransactions loads the transactions dataset.
func (l *Loader) ExtractTransactions(ctx context.Context) (*types.Table, error) {
	return l.Extract(ctx, Transactions)
}

var defaultLoader Loader

// ExtractArticles loads the articles dataset from its fixed endpoint.
func ExtractArticles(ctx context.Context) (*types.Table, error) {
	return defaultLoader.ExtractArticles(ctx)
}

// ExtractCustomers loads the customers dataset from its fixed endpoint.
func ExtractCustomers(ctx context.Context) (*types.Table, error) {
	return defaultLoader.ExtractCustomers(ctx)
}

// ExtractTransactions loads the transactions dataset from its fixed endpoint.
func ExtractTransactions(ctx context.Context) (*types.Table, error) {
	return defaultLoader.ExtractTransactions(ctx)
}

// bodyReader remembers the first non-EOF read error of the response body.
type bodyReader struct {
	r   io.Reader
	err error
}

func (b *bodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && err != io.EOF && b.err == nil {
		b.err = err
	}
	return n, err
}
