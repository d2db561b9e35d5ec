// Package gemini implements llm.Generator with the Gemini generateContent
// REST endpoint.
package gemini

import (
	"brandkit/pkg/llm"
	"brandkit/pkg/logger"
	"brandkit/pkg/metrics"
	"brandkit/pkg/retry"
	"brandkit/pkg/serrors"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public Gemini API root.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// DefaultModel is used when Options.Model is empty.
	DefaultModel = "gemini-2.0-flash"

	upstreamName = "gemini"
	endpoint     = "/models/{model}:generateContent"
)

// ErrNoAPIKey is returned by every call when no API key is configured.
var ErrNoAPIKey = serrors.With(serrors.ErrNotConfigured, "Gemini API key not configured") //nolint: gochecknoglobals

// Options configure a Client.
type Options struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Retry      retry.Options
}

// Client calls the Gemini API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	retry      retry.Options
	tracer     trace.Tracer
}

var _ llm.Generator = (*Client)(nil)

// New constructs a Client from opts.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}

	return &Client{
		httpClient: opts.HTTPClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		model:      opts.Model,
		retry:      opts.Retry,
		tracer:     otel.Tracer("brandkit/pkg/llm/gemini"),
	}
}

// Ready implements llm.Generator.
func (c *Client) Ready() error {
	if strings.TrimSpace(c.apiKey) == "" {
		return ErrNoAPIKey
	}

	return nil
}

// Generate implements llm.Generator. It returns the concatenated text parts
// of the first candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if err := c.Ready(); err != nil {
		return "", err
	}

	opts := c.retry
	next := opts.OnRetry
	opts.OnRetry = func(err error, wait time.Duration) {
		metrics.UpstreamRetries.WithLabelValues(upstreamName, endpoint).Inc()
		logger.Warn(ctx, "retrying generation request", zap.Duration("wait", wait), zap.Error(err))
		if next != nil {
			next(err, wait)
		}
	}

	body := encodeRequest(prompt)

	return retry.Do(ctx, opts, func(ctx context.Context) (string, error) {
		return c.send(ctx, body)
	})
}

func (c *Client) send(ctx context.Context, payload []byte) (text string, err error) {
	ctx, span := c.tracer.Start(ctx, upstreamName+" POST "+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("gen_ai.request.model", c.model)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	u := c.baseURL + "/models/" + url.PathEscape(c.model) + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(upstreamName, endpoint, 0, started)

		return "", errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	metrics.ObserveUpstream(upstreamName, endpoint, resp.StatusCode, started)

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &llm.APIError{StatusCode: resp.StatusCode, Body: bytes.TrimSpace(b)}
	}

	text, err = decodeResponse(b)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadData, err, "could not decode generation response")
	}

	return text, nil
}

// encodeRequest builds {"contents":[{"parts":[{"text":prompt}]}]}.
func encodeRequest(prompt string) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("contents")
	e.ArrStart()
	e.ObjStart()
	e.FieldStart("role")
	e.Str("user")
	e.FieldStart("parts")
	e.ArrStart()
	e.ObjStart()
	e.FieldStart("text")
	e.Str(prompt)
	e.ObjEnd()
	e.ArrEnd()
	e.ObjEnd()
	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes()
}

// decodeResponse extracts candidates[0].content.parts[*].text.
func decodeResponse(b []byte) (string, error) {
	var (
		sb    strings.Builder
		found bool
	)

	d := jx.DecodeBytes(b)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "candidates" {
			return d.Skip()
		}

		first := true

		return d.Arr(func(d *jx.Decoder) error {
			if !first {
				return d.Skip()
			}
			first = false
			found = true

			return d.Obj(func(d *jx.Decoder, key string) error {
				if key != "content" {
					return d.Skip()
				}

				return decodeContent(d, &sb)
			})
		})
	})
	if err != nil {
		return "", errors.Wrap(err, "decode")
	}
	if !found {
		return "", errors.New("response has no candidates")
	}

	return sb.String(), nil
}

func decodeContent(d *jx.Decoder, sb *strings.Builder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		if key != "parts" {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			return d.Obj(func(d *jx.Decoder, key string) error {
				if key != "text" || d.Next() != jx.String {
					return d.Skip()
				}
				s, err := d.Str()
				if err != nil {
					return err
				}
				sb.WriteString(s)

				return nil
			})
		})
	})
}
