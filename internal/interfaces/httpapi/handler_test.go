package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/scorehub/scorehub/internal/domain/area"
	"github.com/scorehub/scorehub/internal/domain/competition"
	"github.com/scorehub/scorehub/internal/domain/match"
	"github.com/scorehub/scorehub/internal/domain/standing"
	"github.com/scorehub/scorehub/internal/domain/team"
	"github.com/scorehub/scorehub/internal/platform/logging"
	"github.com/scorehub/scorehub/internal/usecase"
)

type fakeSource struct{}

func (fakeSource) Areas(context.Context) ([]area.Area, error) {
	return []area.Area{
		{ID: 2267, Name: "World"},
		{ID: 2077, Name: "Europe", ParentAreaID: 2267},
		{ID: 2072, Name: "England", ParentAreaID: 2077},
	}, nil
}

func (fakeSource) Area(_ context.Context, id int64) (area.Area, error) {
	return area.Area{ID: id}, nil
}

func (fakeSource) AllCompetitions(context.Context) ([]competition.Competition, error) {
	return []competition.Competition{
		{ID: 2021, Name: "Premier League", Emblem: "pl.png", Area: competition.AreaRef{ID: 2072, Name: "England"}},
	}, nil
}

func (fakeSource) Competitions(context.Context, int64) ([]competition.Competition, error) {
	return nil, nil
}

func (fakeSource) CompetitionMatches(context.Context, int64) ([]match.Match, error) {
	return nil, nil
}

func (fakeSource) MatchesByDate(context.Context, string) ([]match.Match, error) {
	return nil, nil
}

func (fakeSource) Match(_ context.Context, id int64) (match.Match, bool, error) {
	return match.Match{ID: id, Status: match.StatusUpcoming}, false, nil
}

func (fakeSource) Head2Head(context.Context, int64) (team.Head2Head, error) {
	return team.Head2Head{}, nil
}

func (fakeSource) Standings(context.Context, int64) ([]standing.Standing, error) {
	return []standing.Standing{}, nil
}

func (fakeSource) CompetitionTeams(context.Context, int64) ([]team.CompetitionTeam, error) {
	return []team.CompetitionTeam{}, nil
}

func (fakeSource) Scorers(context.Context, int64) ([]standing.Scorer, error) {
	return []standing.Scorer{}, nil
}

func (fakeSource) Team(_ context.Context, id int64) (team.Detail, error) {
	return team.Detail{}, nil
}

func (fakeSource) TeamMatches(context.Context, int64) ([]match.Match, error) {
	return nil, nil
}

func (fakeSource) Person(_ context.Context, id int64) (team.Person, error) {
	return team.Person{ID: id}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	scheduler, err := usecase.NewScheduler(usecase.SchedulerConfig{Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	session, err := usecase.NewSession(usecase.SessionConfig{
		Source:    fakeSource{},
		Scheduler: scheduler,
		Logger:    logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(session.Close)

	if err := session.Start(context.Background()); err != nil {
		t.Fatalf("start session: %v", err)
	}

	return NewRouter(NewHandler(session, logging.NewNop()), logging.NewNop(), []string{"*"})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["status"].(string); got != "ok" {
		t.Fatalf("unexpected health payload: %v", body["data"])
	}
}

func TestRouter_SnapshotOpensOnDayView(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["activeView"].(string); got != "matches_by_date" {
		t.Fatalf("expected activeView=matches_by_date, got %v", data["activeView"])
	}
	nav, _ := data["navigation"].(map[string]any)
	if date, _ := nav["date"].(string); date == "" {
		t.Fatalf("expected navigation.date to default to today, got %v", nav)
	}
}

func TestRouter_SelectCompetitionIntent(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/intents/competition", strings.NewReader(`{"id":2021}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["activeView"].(string); got != "competition" {
		t.Fatalf("expected activeView=competition, got %v", data["activeView"])
	}
}

func TestRouter_InvalidIntentPayload(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/intents/competition", strings.NewReader(`{"id":0}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_UnknownCompetitionIs404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/intents/competition", strings.NewReader(`{"id":999}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_MatchSummaryInvalidID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/not-a-number/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
