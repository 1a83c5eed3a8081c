package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultListLimit   = 500
	DefaultEgonetLimit = 10
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go
type Client interface {
	Fetch(ctx context.Context, resource string, currency Currency, params url.Values, out interface{}) error

	Address(ctx context.Context, currency Currency, address string) (*Address, error)
	AddressTransactions(ctx context.Context, currency Currency, address string, limit int) ([]AddressTransaction, error)
	ExplicitTags(ctx context.Context, currency Currency, address string) ([]Tag, error)
	ImplicitTags(ctx context.Context, currency Currency, address string) ([]Tag, error)
	AddressTags(ctx context.Context, currency Currency, address string) ([]Tag, error)
	AddressCluster(ctx context.Context, currency Currency, address string) (*Cluster, error)
	AddressEgonet(ctx context.Context, currency Currency, address string, direction Direction, limit int) (*EgoNetwork, error)

	Transaction(ctx context.Context, currency Currency, hash string) (*Transaction, error)

	Block(ctx context.Context, currency Currency, heightOrHash string) (*Block, error)
	BlockTransactions(ctx context.Context, currency Currency, height string) (*BlockTransactions, error)

	Cluster(ctx context.Context, currency Currency, id string) (*Cluster, error)
	ClusterAddresses(ctx context.Context, currency Currency, id string, limit int) ([]Address, error)
	ClusterTags(ctx context.Context, currency Currency, id string) ([]Tag, error)
	ClusterEgonet(ctx context.Context, currency Currency, id string, direction Direction, limit int) (*EgoNetwork, error)

	QueryTermSuggestions(ctx context.Context, currency Currency, fragment string, limit int) (*SearchResult, error)
	Statistics(ctx context.Context) (Statistics, error)
}

// maxResponseBody caps how much of a backend answer is read into memory.
const maxResponseBody = 32 << 20

type client struct {
	baseURL string
	hc      *http.Client
	maxBody int64
	metrics *Metrics
	logger  *zap.SugaredLogger
}

// NewClient returns a Client for the backend at baseURL. Every call is bounded by
// timeout; there are no retries.
func NewClient(baseURL string, timeout time.Duration, metrics *Metrics, logger *zap.SugaredLogger) (Client, error) {
	if baseURL == "" {
		return nil, errors.New("[storage_client] invalid base url")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errors.New("[storage_client] invalid base url")
	}
	if timeout <= 0 {
		return nil, errors.New("[storage_client] invalid timeout")
	}
	if logger == nil {
		return nil, errors.New("[storage_client] invalid logger")
	}

	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		maxBody: maxResponseBody,
		metrics: metrics,
		logger:  logger,
	}, nil
}

func (c *client) url(resource string, currency Currency, params url.Values) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteByte('/')
	if currency != "" {
		b.WriteString(string(currency))
		b.WriteByte('/')
	}
	b.WriteString(strings.TrimLeft(resource, "/"))
	if len(params) > 0 {
		b.WriteByte('?')
		b.WriteString(params.Encode())
	}
	return b.String()
}

// Fetch GETs resource below the currency keyspace and decodes the JSON answer into out.
// 404 and JSON null answers yield ErrNotFound, every other failure a *RemoteError.
func (c *client) Fetch(ctx context.Context, resource string, currency Currency, params url.Values, out interface{}) error {
	u := c.url(resource, currency, params)
	label := resourceLabel(resource)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &RemoteError{URL: u, Err: err}
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.metrics.observe(label, 0, time.Since(start))
		c.logger.Warnw("storage request failed", "url", u, "error", err)
		return &RemoteError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	c.metrics.observe(label, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return &RemoteError{URL: u, Status: resp.StatusCode, Err: err}
	}
	if int64(len(body)) > c.maxBody {
		c.logger.Warnw("storage answer too large", "url", u, "limit", c.maxBody)
		return &RemoteError{URL: u, Status: resp.StatusCode, Err: ErrResponseTooLarge}
	}

	c.logger.Debugw("storage request", "url", u, "status", resp.StatusCode, "latency", time.Since(start))

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warnw("storage answered with error", "url", u, "status", resp.StatusCode)
		return &RemoteError{URL: u, Status: resp.StatusCode, Body: string(body)}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrNotFound
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return &RemoteError{URL: u, Status: resp.StatusCode, Body: string(body), Err: err}
	}

	return nil
}
