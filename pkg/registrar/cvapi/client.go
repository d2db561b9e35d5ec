// Package cvapi provides a registrar.Client backed by the .cv registrar REST
// API.
//
// Every call is authenticated with a bearer token, sent and accepted as JSON
// with caching disabled, and retried with exponential backoff. Successful
// responses are decoded from the documented {"data": ...} envelope; anything
// else is reported as serrors.ErrBadData. Non-2xx responses surface as
// *registrar.APIError carrying the server's body.
package cvapi

import (
	"brandkit/pkg/logger"
	"brandkit/pkg/metrics"
	"brandkit/pkg/registrar"
	"brandkit/pkg/retry"
	"brandkit/pkg/serrors"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const upstreamName = "registrar"

// ErrNoToken is the configuration error returned by every call when no token
// is configured.
var ErrNoToken = serrors.With(serrors.ErrNotConfigured, "Registrar API token not configured") //nolint: gochecknoglobals

// Options configure a Client.
type Options struct {
	// BaseURL is the API root, e.g. "https://api.cv.domains/v1".
	BaseURL string
	// Token is the bearer token. An empty token makes every call fail with
	// ErrNoToken.
	Token string
	// HTTPClient performs requests. Its Timeout bounds each attempt.
	HTTPClient *http.Client
	// Retry tunes the retry loop wrapped around each call.
	Retry retry.Options
}

// Client talks to the registrar REST API and fulfills registrar.Client. It is
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	retry      retry.Options
	tracer     trace.Tracer
}

// Ensure Client conforms to the registrar.Client interface at compile time.
var _ registrar.Client = (*Client)(nil)

// New constructs a Client from opts.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		token:      opts.Token,
		retry:      opts.Retry,
		tracer:     otel.Tracer("brandkit/pkg/registrar/cvapi"),
	}
}

// Ready implements registrar.Client.
func (c *Client) Ready() error {
	if strings.TrimSpace(c.token) == "" {
		return ErrNoToken
	}

	return nil
}

// call describes one logical request. endpoint is the path template used for
// metrics and spans; path is the concrete path.
type call struct {
	method   string
	endpoint string
	path     string
	body     any
	out      any
}

// do runs c through the retry loop. out, when set, receives the decoded
// "data" member of the response.
func (c *Client) do(ctx context.Context, cl call) error {
	if err := c.Ready(); err != nil {
		return err
	}

	var payload []byte
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		payload = b
	}

	opts := c.retry
	next := opts.OnRetry
	opts.OnRetry = func(err error, wait time.Duration) {
		metrics.UpstreamRetries.WithLabelValues(upstreamName, cl.endpoint).Inc()
		logger.Warn(ctx, "retrying registrar request",
			zap.String("method", cl.method),
			zap.String("endpoint", cl.endpoint),
			zap.Duration("wait", wait),
			zap.Error(err))
		if next != nil {
			next(err, wait)
		}
	}

	_, err := retry.Do(ctx, opts, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.send(ctx, cl, payload)
	})

	return err //nolint: wrapcheck
}

// send performs a single attempt.
func (c *Client) send(ctx context.Context, cl call, payload []byte) (err error) {
	ctx, span := c.tracer.Start(ctx, upstreamName+" "+cl.method+" "+cl.endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", cl.method),
			attribute.String("url.template", cl.endpoint),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(upstreamName, cl.endpoint, 0, started)

		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	metrics.ObserveUpstream(upstreamName, cl.endpoint, resp.StatusCode, started)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &registrar.APIError{StatusCode: resp.StatusCode, Body: bytes.TrimSpace(b)}
	}

	if cl.out == nil {
		return nil
	}

	return decodeData(b, cl.out)
}

// decodeData decodes the {"data": ...} envelope of a successful response
// into out.
func decodeData(b []byte, out any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return serrors.Wrap(serrors.ErrBadData, err, "could not decode response")
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return serrors.With(serrors.ErrBadData, "response has no data member")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return serrors.Wrap(serrors.ErrBadData, err, "could not decode response data")
	}

	return nil
}
