package cvapi_test

import (
	"brandkit/pkg/domain"
	"brandkit/pkg/registrar"
	"brandkit/pkg/registrar/cvapi"
	"brandkit/pkg/retry"
	"brandkit/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// instantTimer fires immediately so retry tests do not sleep.
type instantTimer struct{ c chan time.Time }

func (t *instantTimer) Start(time.Duration) {
	t.c = make(chan time.Time, 1)
	t.c <- time.Now()
}
func (t *instantTimer) Stop()               {}
func (t *instantTimer) C() <-chan time.Time { return t.c }

func newTestClient(fn rtFunc) *cvapi.Client {
	return cvapi.New(cvapi.Options{
		BaseURL:    "https://api.example.cv/v1/",
		Token:      "test-token",
		HTTPClient: &http.Client{Transport: fn},
		Retry:      retry.Options{Retries: 2, Timer: &instantTimer{}},
	})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func requireCommonHeaders(t *testing.T, r *http.Request) {
	t.Helper()
	require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
	require.Equal(t, "application/json", r.Header.Get("Content-Type"))
	require.Equal(t, "application/json", r.Header.Get("Accept"))
	require.Contains(t, r.Header.Get("Cache-Control"), "no-cache")
}

func TestClient_Ready(t *testing.T) {
	c := cvapi.New(cvapi.Options{BaseURL: "https://api.example.cv", Token: "  "})
	require.ErrorIs(t, c.Ready(), serrors.ErrNotConfigured)

	require.NoError(t, newTestClient(nil).Ready())
}

func TestClient_NoTokenSkipsNetwork(t *testing.T) {
	c := cvapi.New(cvapi.Options{
		BaseURL: "https://api.example.cv",
		HTTPClient: &http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
			t.Fatal("no request expected")

			return nil, nil
		})},
	})

	_, err := c.CheckDomains(context.Background(), []string{"foo.cv"})
	require.ErrorIs(t, err, serrors.ErrNotConfigured)
	require.Equal(t, "Registrar API token not configured", err.Error())
}

func TestClient_CheckDomains_Success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "api.example.cv", r.URL.Host)
		require.Equal(t, "/v1/domains/check", r.URL.Path)
		require.Equal(t, "all", r.URL.Query().Get("fees"))
		requireCommonHeaders(t, r)

		var body struct {
			Domains []string `json:"domains"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, []string{"foo.cv", "bar.cv"}, body.Domains)

		return jsonResponse(http.StatusOK, `{"data":[
			{"domain":"foo.cv","available":true,"premium":false,
			 "fees":{"registration":"12.50","renewal":15,"currency":"EUR"}},
			{"domain":"bar.cv","available":false,"premium":true}
		]}`), nil
	})

	res, err := c.CheckDomains(context.Background(), []string{"foo.cv", "bar.cv"})
	require.NoError(t, err)
	require.Len(t, res, 2)

	require.Equal(t, "foo.cv", res[0].Domain)
	require.True(t, res[0].Available)
	require.NotNil(t, res[0].RegistrationFee)
	require.InDelta(t, 12.5, *res[0].RegistrationFee, 0.0001)
	require.NotNil(t, res[0].RenewalFee)
	require.InDelta(t, 15.0, *res[0].RenewalFee, 0.0001)
	require.Equal(t, "EUR", res[0].Currency)

	require.Equal(t, "bar.cv", res[1].Domain)
	require.True(t, res[1].Premium)
	require.Nil(t, res[1].RegistrationFee)
	require.Equal(t, domain.DefaultCurrency, res[1].Currency)
}

func TestClient_RetriesTransportFailures(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		if calls.Add(1) < 3 {
			return nil, errors.New("connection reset")
		}

		return jsonResponse(http.StatusOK, `{"data":{"id":42,"name":"John"}}`), nil
	})

	contact, err := c.GetContact(context.Background(), "42")
	require.NoError(t, err)
	require.Equal(t, "42", contact.ID)
	require.EqualValues(t, 3, calls.Load())
}

func TestClient_Non2xxPreservesBodyAfterRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)

		return jsonResponse(http.StatusUnprocessableEntity, `{"error":"contact invalid"}`), nil
	})

	_, err := c.CreateContact(context.Background(), domain.Contact{Name: "John"})
	require.Error(t, err)
	require.EqualValues(t, 3, calls.Load(), "one attempt plus two retries")

	var apiErr *registrar.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.JSONEq(t, `{"error":"contact invalid"}`, string(apiErr.ResponseBody()))
}

func TestClient_MissingDataMemberIsBadData(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"id":"1","domain":"foo.cv"}`), nil
	})

	_, err := c.GetDomain(context.Background(), "1")
	require.ErrorIs(t, err, serrors.ErrBadData)
}

func TestClient_RegisterDomain(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/domains", r.URL.Path)
		requireCommonHeaders(t, r)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "foo.cv", body["domain"])
		require.Equal(t, "c-1", body["contact_id"])
		require.Equal(t, true, body["auto_renew"])
		require.Equal(t, []any{"ns1.example", "ns2.example"}, body["nameservers"])

		return jsonResponse(http.StatusCreated, `{"data":{"id":"d-1","domain":"foo.cv","status":"active",
			"registered_at":"2026-01-02T03:04:05Z","expires_at":"2027-01-02T03:04:05Z"}}`), nil
	})

	reg, err := c.RegisterDomain(context.Background(), registrar.RegisterRequest{
		Domain:      "foo.cv",
		ContactID:   "c-1",
		Nameservers: []string{"ns1.example", "ns2.example"},
		AutoRenew:   true,
	})
	require.NoError(t, err)
	require.Equal(t, "d-1", reg.ID)
	require.Equal(t, "active", reg.Status)
	require.Equal(t, 2027, reg.ExpiresAt.Year())
}

func TestClient_Zones(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		requireCommonHeaders(t, r)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/domains/d%2F1/zone",
			r.Method == http.MethodGet && r.URL.RawPath == "/v1/domains/d%2F1/zone":
			return jsonResponse(http.StatusOK, `{"data":{"id":7,"domain_id":"d/1","name":"foo.cv",
				"records":[{"id":1,"type":"A","name":"@","content":"1.2.3.4","ttl":300}]}}`), nil
		case r.Method == http.MethodGet && r.URL.Path == "/v1/zones/7/records":
			return jsonResponse(http.StatusOK, `{"data":[{"id":"r1","type":"MX","name":"@",
				"content":"mx.foo.cv","ttl":3600,"priority":10,"comment":""}]}`), nil
		case r.Method == http.MethodPut && r.URL.Path == "/v1/zones/7/records/r1":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "TXT", body["type"])

			return jsonResponse(http.StatusOK, `{"data":{"id":"r1","type":"TXT","name":"@","content":"v=spf1","ttl":3600}}`), nil
		case r.Method == http.MethodDelete && r.URL.Path == "/v1/zones/7/records/r1":
			return &http.Response{StatusCode: http.StatusNoContent, Body: io.NopCloser(strings.NewReader(""))}, nil
		}
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.String())

		return nil, nil
	})
	ctx := context.Background()

	z, err := c.GetZone(ctx, "d/1")
	require.NoError(t, err)
	require.Equal(t, "7", z.ID)
	require.Equal(t, "d/1", z.DomainID)
	require.Len(t, z.Records, 1)
	require.Equal(t, domain.RecordTypeA, z.Records[0].Type)

	recs, err := c.ListRecords(ctx, "7")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].Priority)
	require.Equal(t, 10, *recs[0].Priority)

	updated, err := c.UpdateRecord(ctx, "7", "r1", domain.DNSRecord{Type: domain.RecordTypeTXT, Name: "@", Content: "v=spf1"})
	require.NoError(t, err)
	require.Equal(t, "v=spf1", updated.Content)

	require.NoError(t, c.DeleteRecord(ctx, "7", "r1"))
}

func TestClient_CreateRecordSendsPriority(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/zones/z1/records", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.EqualValues(t, 5, body["priority"])
		require.EqualValues(t, 3600, body["ttl"])
		require.Equal(t, "", body["comment"])

		return jsonResponse(http.StatusCreated, `{"data":{"id":"r9","type":"MX","name":"@",
			"content":"alt1.aspmx.l.google.com","ttl":3600,"priority":5}}`), nil
	})

	prio := 5
	rec, err := c.CreateRecord(context.Background(), "z1", domain.DNSRecord{
		Type: domain.RecordTypeMX, Name: "@", Content: "alt1.aspmx.l.google.com", TTL: 3600, Priority: &prio,
	})
	require.NoError(t, err)
	require.Equal(t, "r9", rec.ID)
}

func TestClient_ContextCancelStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		cancel()

		return nil, errors.New("unreachable")
	})

	_, err := c.ListRecords(ctx, "z1")
	require.ErrorIs(t, err, context.Canceled)
	require.EqualValues(t, 1, calls.Load())
}
