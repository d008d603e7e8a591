package introspection

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/n9te9/graphql-operation-generator/introspection"

// RequestIDHeader carries a fresh id for every fetch attempt.
const RequestIDHeader = "X-Request-Id"

// RetryOption defines the retry configuration for introspection fetching.
type RetryOption struct {
	Attempts int    `yaml:"attempts"`
	Timeout  string `yaml:"timeout"`
}

// FetchOption configures a Fetcher.
type FetchOption struct {
	Headers map[string]string
	Retry   RetryOption
}

// Fetcher sends the introspection query to a GraphQL endpoint.
type Fetcher struct {
	httpClient *http.Client
	opts       FetchOption
}

// NewFetcher creates a Fetcher. A nil client means http.DefaultClient.
func NewFetcher(httpClient *http.Client, opts FetchOption) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Fetcher{
		httpClient: httpClient,
		opts:       opts,
	}
}

// Fetch posts the introspection query to endpoint. It retries up to the
// configured attempts, each with a per-attempt timeout. GraphQL errors in the
// response are not retried.
func (f *Fetcher) Fetch(ctx context.Context, endpoint string) (*Schema, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "introspection.Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("graphql.endpoint", endpoint))

	attempts := f.opts.Retry.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	timeoutDuration := 5 * time.Second
	if f.opts.Retry.Timeout != "" {
		if d, err := time.ParseDuration(f.opts.Retry.Timeout); err == nil {
			timeoutDuration = d
		}
	}

	body, err := json.Marshal(map[string]string{"query": Query})
	if err != nil {
		return nil, err
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		s, err := f.doFetch(ctx, endpoint, body, timeoutDuration)
		if err == nil {
			return s, nil
		}
		lastErr = err

		// A GraphQL level failure will not change on retry.
		var respErr *ResponseError
		if errors.As(err, &respErr) {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	span.RecordError(lastErr)
	span.SetStatus(codes.Error, lastErr.Error())
	return nil, fmt.Errorf("failed to fetch schema from %s after %d attempt(s): %w", endpoint, attempts, lastErr)
}

// doFetch performs a single attempt with the given timeout.
func (f *Fetcher) doFetch(ctx context.Context, endpoint string, body []byte, timeout time.Duration) (*Schema, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range f.opts.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, endpoint)
	}

	return Decode(resp.Body)
}
