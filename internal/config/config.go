package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/scorehub/scorehub/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	PprofEnabled       bool
	PprofAddr          string
	LogLevel           logging.Level

	FootballDataBaseURL               string
	FootballDataProxyURL              string
	FootballDataToken                 string
	FootballDataTimeout               time.Duration
	FootballDataCircuitEnabled        bool
	FootballDataCircuitFailureCount   int
	FootballDataCircuitOpenTimeout    time.Duration
	FootballDataCircuitHalfOpenMaxReq int

	SummaryEnabled bool
	SummaryBaseURL string
	SummaryAPIKey  string
	SummaryModel   string
	SummaryTimeout time.Duration

	CompetitionPollInterval time.Duration
	MatchDetailPollInterval time.Duration
	DayPollInterval         time.Duration
	MinuteTickInterval      time.Duration
	MinuteEstimateInterval  time.Duration
	CacheTTL                time.Duration
	SchedulerWorkers        int
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	footballDataToken := strings.TrimSpace(getEnv("FOOTBALL_DATA_TOKEN", ""))
	if footballDataToken == "" {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_TOKEN is required")
	}
	footballDataTimeout, err := time.ParseDuration(getEnv("FOOTBALL_DATA_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_TIMEOUT: %w", err)
	}
	if footballDataTimeout <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_TIMEOUT must be > 0")
	}
	footballDataCircuitEnabled, err := strconv.ParseBool(getEnv("FOOTBALL_DATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_ENABLED: %w", err)
	}
	footballDataCircuitFailureCount, err := getEnvAsInt("FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if footballDataCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	footballDataCircuitOpenTimeout, err := time.ParseDuration(getEnv("FOOTBALL_DATA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if footballDataCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	footballDataCircuitHalfOpenMaxReq, err := getEnvAsInt("FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if footballDataCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	summaryEnabled, err := strconv.ParseBool(getEnv("SUMMARY_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUMMARY_ENABLED: %w", err)
	}
	summaryBaseURL := strings.TrimSpace(getEnv("SUMMARY_BASE_URL", ""))
	summaryAPIKey := strings.TrimSpace(getEnv("SUMMARY_API_KEY", ""))
	if summaryEnabled {
		if summaryBaseURL == "" {
			return Config{}, fmt.Errorf("SUMMARY_BASE_URL is required when SUMMARY_ENABLED=true")
		}
		if summaryAPIKey == "" {
			return Config{}, fmt.Errorf("SUMMARY_API_KEY is required when SUMMARY_ENABLED=true")
		}
	}
	summaryTimeout, err := time.ParseDuration(getEnv("SUMMARY_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUMMARY_TIMEOUT: %w", err)
	}
	if summaryTimeout <= 0 {
		return Config{}, fmt.Errorf("SUMMARY_TIMEOUT must be > 0")
	}

	competitionPollInterval, err := getEnvAsPositiveDuration("COMPETITION_POLL_INTERVAL", "60s")
	if err != nil {
		return Config{}, err
	}
	matchDetailPollInterval, err := getEnvAsPositiveDuration("MATCH_DETAIL_POLL_INTERVAL", "15s")
	if err != nil {
		return Config{}, err
	}
	dayPollInterval, err := getEnvAsPositiveDuration("DAY_POLL_INTERVAL", "60s")
	if err != nil {
		return Config{}, err
	}
	minuteTickInterval, err := getEnvAsPositiveDuration("MINUTE_TICK_INTERVAL", "60s")
	if err != nil {
		return Config{}, err
	}
	minuteEstimateInterval, err := getEnvAsPositiveDuration("MINUTE_ESTIMATE_INTERVAL", "30s")
	if err != nil {
		return Config{}, err
	}

	// CACHE_TTL=0 keeps entries for the whole session.
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL < 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be >= 0")
	}

	schedulerWorkers, err := getEnvAsInt("SCHEDULER_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCHEDULER_WORKERS: %w", err)
	}
	if schedulerWorkers < 1 {
		return Config{}, fmt.Errorf("SCHEDULER_WORKERS must be >= 1")
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "scorehub-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:       pprofEnabled,
		PprofAddr:          pprofAddr,
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		FootballDataBaseURL:               strings.TrimSpace(getEnv("FOOTBALL_DATA_BASE_URL", "https://api.football-data.org/v4")),
		FootballDataProxyURL:              strings.TrimSpace(getEnv("FOOTBALL_DATA_PROXY_URL", "")),
		FootballDataToken:                 footballDataToken,
		FootballDataTimeout:               footballDataTimeout,
		FootballDataCircuitEnabled:        footballDataCircuitEnabled,
		FootballDataCircuitFailureCount:   footballDataCircuitFailureCount,
		FootballDataCircuitOpenTimeout:    footballDataCircuitOpenTimeout,
		FootballDataCircuitHalfOpenMaxReq: footballDataCircuitHalfOpenMaxReq,

		SummaryEnabled: summaryEnabled,
		SummaryBaseURL: summaryBaseURL,
		SummaryAPIKey:  summaryAPIKey,
		SummaryModel:   strings.TrimSpace(getEnv("SUMMARY_MODEL", "gemini-2.5-flash")),
		SummaryTimeout: summaryTimeout,

		CompetitionPollInterval: competitionPollInterval,
		MatchDetailPollInterval: matchDetailPollInterval,
		DayPollInterval:         dayPollInterval,
		MinuteTickInterval:      minuteTickInterval,
		MinuteEstimateInterval:  minuteEstimateInterval,
		CacheTTL:                cacheTTL,
		SchedulerWorkers:        schedulerWorkers,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
