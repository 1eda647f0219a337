package summarizer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scorehub/scorehub/internal/domain/match"
	"github.com/scorehub/scorehub/internal/platform/logging"
)

func sampleMatch() match.Match {
	home, away := 2, 1
	return match.Match{
		ID:        77,
		HomeTeam:  match.TeamRef{ID: 1, Name: "Arsenal"},
		AwayTeam:  match.TeamRef{ID: 2, Name: "Chelsea"},
		HomeScore: &home,
		AwayScore: &away,
		Status:    match.StatusFullTime,
		League:    "Premier League",
		Events: []match.Event{
			{Minute: 23, Type: match.EventGoal, Player: "Saka", TeamID: 1, Detail: "Penalty"},
			{Minute: 61, Type: match.EventYellowCard, Player: "Palmer", TeamID: 2},
		},
	}
}

func TestSummarizeReturnsUpstreamText(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"text":"A tense London derby."}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     "key",
		Logger:     logging.NewNop(),
	})

	got := client.Summarize(context.Background(), sampleMatch())
	if got != "A tense London derby." {
		t.Fatalf("Summarize() = %q, want upstream text", got)
	}
	if !strings.Contains(gotBody, "Arsenal 2 - 1 Chelsea") {
		t.Fatalf("prompt missing score line, body = %s", gotBody)
	}
	if !strings.Contains(gotBody, "Minute 23: GOAL for Arsenal by Saka (Penalty).") {
		t.Fatalf("prompt missing event line, body = %s", gotBody)
	}
}

func TestSummarizeFallsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     "key",
		Logger:     logging.NewNop(),
	})

	if got := client.Summarize(context.Background(), sampleMatch()); got != Fallback {
		t.Fatalf("Summarize() = %q, want fallback", got)
	}
}

func TestSummarizeDisabledWithoutCredentials(t *testing.T) {
	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	if client.Enabled() {
		t.Fatal("Enabled() = true without base URL and key")
	}
	if got := client.Summarize(context.Background(), sampleMatch()); got != Fallback {
		t.Fatalf("Summarize() = %q, want fallback", got)
	}
}

func TestBuildPromptWithoutScoreOrEvents(t *testing.T) {
	prompt := buildPrompt(match.Match{
		HomeTeam: match.TeamRef{ID: 1, Name: "Lyon"},
		AwayTeam: match.TeamRef{ID: 2, Name: "Lille"},
		Status:   match.StatusUpcoming,
		League:   "Ligue 1",
	})
	if !strings.Contains(prompt, "The match has not started or is in progress.") {
		t.Fatalf("prompt missing pre-match score line:\n%s", prompt)
	}
	if strings.Contains(prompt, "Minute ") {
		t.Fatalf("prompt lists events for an eventless match:\n%s", prompt)
	}
}
