package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/scorehub/scorehub/internal/platform/logging"
	"github.com/scorehub/scorehub/internal/usecase"
)

type Handler struct {
	session   *usecase.Session
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(session *usecase.Session, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		session:   session,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

type idRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type tabRequest struct {
	Tab string `json:"tab" validate:"required,oneof=matches standings teams scorers"`
}

type searchRequest struct {
	Query string `json:"query" validate:"max=100"`
}

type dateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSnapshot")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.session.Snapshot(ctx))
}

func (h *Handler) GetMatchSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchSummary")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue("matchID"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: invalid match id %q", usecase.ErrInvalidInput, raw))
		return
	}

	summary, err := h.session.MatchSummary(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "match summary failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"summary": summary})
}

// applyIntent runs one navigation intent and responds with the resulting
// snapshot, so the caller never needs a follow-up GET to re-render.
func (h *Handler) applyIntent(ctx context.Context, w http.ResponseWriter, name string, intent func(context.Context) error) {
	if err := intent(ctx); err != nil {
		h.logger.ErrorContext(ctx, "intent failed", "intent", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.session.Snapshot(ctx))
}

func (h *Handler) SelectContinent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectContinent")
	defer span.End()

	var req idRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "continent", func(ctx context.Context) error {
		return h.session.SelectContinent(ctx, req.ID)
	})
}

func (h *Handler) SelectTopCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectTopCountry")
	defer span.End()

	var req idRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "top-country", func(ctx context.Context) error {
		return h.session.SelectTopCountry(ctx, req.ID)
	})
}

func (h *Handler) SelectCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectCountry")
	defer span.End()

	var req idRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "country", func(ctx context.Context) error {
		return h.session.SelectCountry(ctx, req.ID)
	})
}

func (h *Handler) SelectCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectCompetition")
	defer span.End()

	var req idRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "competition", func(ctx context.Context) error {
		return h.session.SelectCompetition(ctx, req.ID)
	})
}

func (h *Handler) SelectFeaturedCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectFeaturedCompetition")
	defer span.End()

	var req idRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "featured-competition", func(ctx context.Context) error {
		return h.session.SelectFeaturedCompetition(ctx, req.ID)
	})
}

func (h *Handler) SelectCompetitionTab(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectCompetitionTab")
	defer span.End()

	var req tabRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "competition-tab", func(ctx context.Context) error {
		return h.session.SelectCompetitionTab(ctx, usecase.CompetitionTab(req.Tab))
	})
}

func (h *Handler) SelectMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectMatch")
	defer span.End()

	var req idRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "match", func(ctx context.Context) error {
		return h.session.SelectMatch(ctx, req.ID)
	})
}

func (h *Handler) LoadHead2Head(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadHead2Head")
	defer span.End()

	h.applyIntent(ctx, w, "head-to-head", h.session.LoadHead2Head)
}

func (h *Handler) SelectTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectTeam")
	defer span.End()

	var req idRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "team", func(ctx context.Context) error {
		return h.session.SelectTeam(ctx, req.ID)
	})
}

func (h *Handler) SelectPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectPlayer")
	defer span.End()

	var req idRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "player", func(ctx context.Context) error {
		return h.session.SelectPlayer(ctx, req.ID)
	})
}

func (h *Handler) SetSearchQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetSearchQuery")
	defer span.End()

	var req searchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "search", func(context.Context) error {
		return h.session.SetSearchQuery(req.Query)
	})
}

func (h *Handler) SelectMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectMatches")
	defer span.End()

	h.applyIntent(ctx, w, "matches", h.session.SelectMatches)
}

func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectDate")
	defer span.End()

	var req dateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.applyIntent(ctx, w, "date", func(ctx context.Context) error {
		return h.session.SelectDate(ctx, req.Date)
	})
}

func (h *Handler) GoBack(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GoBack")
	defer span.End()

	h.applyIntent(ctx, w, "back", h.session.GoBack)
}

func (h *Handler) GoHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GoHome")
	defer span.End()

	h.applyIntent(ctx, w, "home", h.session.GoHome)
}
