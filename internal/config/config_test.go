package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FOOTBALL_DATA_TOKEN", "token-123")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_FootballDataTokenRequired(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_DATA_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when FOOTBALL_DATA_TOKEN is unset")
	}
}

func TestLoad_FootballDataConfigParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_DATA_BASE_URL", "https://upstream.test/v4")
	t.Setenv("FOOTBALL_DATA_PROXY_URL", "https://proxy.test/?u=")
	t.Setenv("FOOTBALL_DATA_TIMEOUT", "12s")
	t.Setenv("FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FootballDataBaseURL != "https://upstream.test/v4" {
		t.Fatalf("unexpected FootballDataBaseURL: %q", cfg.FootballDataBaseURL)
	}
	if cfg.FootballDataProxyURL != "https://proxy.test/?u=" {
		t.Fatalf("unexpected FootballDataProxyURL: %q", cfg.FootballDataProxyURL)
	}
	if cfg.FootballDataToken != "token-123" {
		t.Fatalf("unexpected FootballDataToken")
	}
	if cfg.FootballDataTimeout != 12*time.Second {
		t.Fatalf("unexpected FootballDataTimeout: %s", cfg.FootballDataTimeout)
	}
	if !cfg.FootballDataCircuitEnabled {
		t.Fatalf("expected circuit breaker enabled by default")
	}
	if cfg.FootballDataCircuitFailureCount != 7 {
		t.Fatalf("unexpected FootballDataCircuitFailureCount: %d", cfg.FootballDataCircuitFailureCount)
	}
}

func TestLoad_SummaryConfigParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)

	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("SUMMARY_ENABLED", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SummaryEnabled {
			t.Fatalf("expected SummaryEnabled=false by default")
		}
		if cfg.SummaryModel != "gemini-2.5-flash" {
			t.Fatalf("unexpected default summary model: %q", cfg.SummaryModel)
		}
	})

	t.Run("enabled requires base url and api key", func(t *testing.T) {
		t.Setenv("SUMMARY_ENABLED", "true")
		t.Setenv("SUMMARY_BASE_URL", "")
		t.Setenv("SUMMARY_API_KEY", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when SUMMARY_ENABLED=true without required env")
		}
	})

	t.Run("enabled with required values", func(t *testing.T) {
		t.Setenv("SUMMARY_ENABLED", "true")
		t.Setenv("SUMMARY_BASE_URL", "https://generativelanguage.googleapis.com")
		t.Setenv("SUMMARY_API_KEY", "api-key")
		t.Setenv("SUMMARY_TIMEOUT", "8s")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SummaryEnabled {
			t.Fatalf("expected SummaryEnabled=true")
		}
		if cfg.SummaryTimeout != 8*time.Second {
			t.Fatalf("unexpected SummaryTimeout: %s", cfg.SummaryTimeout)
		}
	})
}

func TestLoad_PollIntervalDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CompetitionPollInterval != 60*time.Second {
		t.Fatalf("unexpected default competition poll interval: %s", cfg.CompetitionPollInterval)
	}
	if cfg.MatchDetailPollInterval != 15*time.Second {
		t.Fatalf("unexpected default match detail poll interval: %s", cfg.MatchDetailPollInterval)
	}
	if cfg.DayPollInterval != 60*time.Second {
		t.Fatalf("unexpected default day poll interval: %s", cfg.DayPollInterval)
	}
	if cfg.MinuteTickInterval != 60*time.Second {
		t.Fatalf("unexpected default minute tick interval: %s", cfg.MinuteTickInterval)
	}
	if cfg.MinuteEstimateInterval != 30*time.Second {
		t.Fatalf("unexpected default minute estimate interval: %s", cfg.MinuteEstimateInterval)
	}
}

func TestLoad_PollIntervalValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("MATCH_DETAIL_POLL_INTERVAL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid MATCH_DETAIL_POLL_INTERVAL")
		}
	})

	t.Run("non positive duration", func(t *testing.T) {
		t.Setenv("MATCH_DETAIL_POLL_INTERVAL", "0s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for zero MATCH_DETAIL_POLL_INTERVAL")
		}
	})
}

func TestLoad_CacheTTLParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults to no expiry", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.CacheTTL != 0 {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})

	t.Run("negative ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "-5s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative CACHE_TTL")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_SchedulerWorkersValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SCHEDULER_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SCHEDULER_WORKERS=0")
	}
}
