package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/scorehub/scorehub/external/footballdata"
	"github.com/scorehub/scorehub/external/summarizer"
	"github.com/scorehub/scorehub/internal/config"
	"github.com/scorehub/scorehub/internal/interfaces/httpapi"
	"github.com/scorehub/scorehub/internal/platform/cache"
	"github.com/scorehub/scorehub/internal/platform/logging"
	"github.com/scorehub/scorehub/internal/platform/resilience"
	"github.com/scorehub/scorehub/internal/usecase"
)

// App owns the assembled service: the HTTP server plus the session whose
// polling loops must be torn down on shutdown.
type App struct {
	Server  *http.Server
	session *usecase.Session
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	source := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:  cfg.FootballDataBaseURL,
		ProxyURL: cfg.FootballDataProxyURL,
		Token:    cfg.FootballDataToken,
		Timeout:  cfg.FootballDataTimeout,
		Logger:   logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailureCount,
			OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
			HalfOpenLimit:    cfg.FootballDataCircuitHalfOpenMaxReq,
		},
	})

	summaryCfg := summarizer.ClientConfig{
		Model:   cfg.SummaryModel,
		Timeout: cfg.SummaryTimeout,
		Logger:  logger,
	}
	if cfg.SummaryEnabled {
		summaryCfg.BaseURL = cfg.SummaryBaseURL
		summaryCfg.APIKey = cfg.SummaryAPIKey
	}
	summaries := summarizer.NewClient(summaryCfg)

	scheduler, err := usecase.NewScheduler(usecase.SchedulerConfig{
		Logger:  logger,
		Workers: cfg.SchedulerWorkers,
	})
	if err != nil {
		return nil, fmt.Errorf("build scheduler: %w", err)
	}

	session, err := usecase.NewSession(usecase.SessionConfig{
		Source:    source,
		Summaries: summaries,
		Scheduler: scheduler,
		Logger:    logger,
		Store:     cache.NewStore(cfg.CacheTTL),
		Intervals: usecase.PollIntervals{
			CompetitionMatches: cfg.CompetitionPollInterval,
			MatchDetail:        cfg.MatchDetailPollInterval,
			DayMatches:         cfg.DayPollInterval,
			MinuteTick:         cfg.MinuteTickInterval,
			MinuteEstimate:     cfg.MinuteEstimateInterval,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build session: %w", err)
	}

	handler := httpapi.NewHandler(session, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		session: session,
	}, nil
}

// Start performs the startup load. The server can still serve afterwards
// when this fails; the session stays in its blocking error state and the
// snapshot carries the message.
func (a *App) Start(ctx context.Context) error {
	return a.session.Start(ctx)
}

// Close stops every polling loop. Call after the HTTP server has drained.
func (a *App) Close() {
	a.session.Close()
}
