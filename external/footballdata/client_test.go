package footballdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/scorehub/scorehub/internal/platform/logging"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Token:      "test-token",
		Logger:     logging.NewNop(),
	})
	return client, server
}

func TestClientRetriesOnceAfterRateLimit(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"message":"You reached your request limit. Wait 3 seconds."}`))
			return
		}
		w.Write([]byte(`{"areas":[{"id":2267,"name":"World"}]}`))
	}))

	var slept []time.Duration
	client.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	areas, err := client.Areas(context.Background())
	if err != nil {
		t.Fatalf("Areas() error = %v", err)
	}
	if len(areas) != 1 || areas[0].ID != 2267 {
		t.Fatalf("Areas() = %+v, want one area id=2267", areas)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("upstream calls = %d, want 2", got)
	}
	if len(slept) != 1 || slept[0] != 4*time.Second {
		t.Fatalf("slept = %v, want one sleep of 4s", slept)
	}
}

func TestClientGivesUpAfterSecondRateLimit(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"You reached your request limit. Wait 5 seconds."}`))
	}))
	client.sleep = func(context.Context, time.Duration) error { return nil }

	_, err := client.Areas(context.Background())
	if err == nil {
		t.Fatal("Areas() error = nil, want rate limit error")
	}
	if !IsRateLimited(err) {
		t.Fatalf("IsRateLimited(%v) = false, want true", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("upstream calls = %d, want exactly one retry", got)
	}
}

func TestClientDoesNotRetryWithoutWaitHint(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"slow down"}`))
	}))
	client.sleep = func(context.Context, time.Duration) error {
		t.Fatal("sleep called without a wait hint")
		return nil
	}

	_, err := client.Areas(context.Background())
	var apiErr *APIError
	if !crerr.As(err, &apiErr) || apiErr.Status != http.StatusTooManyRequests {
		t.Fatalf("Areas() error = %v, want APIError with status 429", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("upstream calls = %d, want 1", got)
	}
}

func TestStandingsMapsNotFoundToEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"The resource you are looking for does not exist."}`))
	}))

	standings, err := client.Standings(context.Background(), 2001)
	if err != nil {
		t.Fatalf("Standings() error = %v", err)
	}
	if standings == nil || len(standings) != 0 {
		t.Fatalf("Standings() = %v, want empty non-nil slice", standings)
	}

	teams, err := client.CompetitionTeams(context.Background(), 2001)
	if err != nil {
		t.Fatalf("CompetitionTeams() error = %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("CompetitionTeams() = %v, want empty", teams)
	}

	scorers, err := client.Scorers(context.Background(), 2001)
	if err != nil {
		t.Fatalf("Scorers() error = %v", err)
	}
	if len(scorers) != 0 {
		t.Fatalf("Scorers() = %v, want empty", scorers)
	}
}

func TestTeamSurfacesNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.Team(context.Background(), 99999)
	if err == nil {
		t.Fatal("Team() error = nil, want not found")
	}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound(%v) = false, want true", err)
	}
}

func TestClientMarksNetworkFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		Logger:  logging.NewNop(),
		Timeout: time.Second,
	})

	_, err := client.Areas(context.Background())
	if err == nil {
		t.Fatal("Areas() error = nil, want network error")
	}
	if !IsNetwork(err) {
		t.Fatalf("IsNetwork(%v) = false, want true", err)
	}
}

func TestClientSendsAuthToken(t *testing.T) {
	var gotToken string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Auth-Token")
		w.Write([]byte(`{"areas":[]}`))
	}))

	if _, err := client.Areas(context.Background()); err != nil {
		t.Fatalf("Areas() error = %v", err)
	}
	if gotToken != "test-token" {
		t.Fatalf("X-Auth-Token = %q, want %q", gotToken, "test-token")
	}
}

func TestParseWaitSeconds(t *testing.T) {
	tests := []struct {
		message string
		want    int
		ok      bool
	}{
		{"You reached your request limit. Wait 3 seconds.", 3, true},
		{"Wait 60 seconds", 60, true},
		{"too many requests", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseWaitSeconds(tc.message)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseWaitSeconds(%q) = (%d, %v), want (%d, %v)", tc.message, got, ok, tc.want, tc.ok)
		}
	}
}
