// Package summarizer generates short narrative match summaries through an
// external text-generation API. The dependency is best-effort: every failure
// degrades to a fixed fallback string so match pages never break on it.
package summarizer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/scorehub/scorehub/internal/domain/match"
	"github.com/scorehub/scorehub/internal/platform/logging"
)

// Fallback is returned whenever a summary cannot be produced.
const Fallback = "Could not generate AI summary at this time. Please try again later."

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 20 * time.Second
	maxBodyBytes   = 1 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	// BaseURL is the generation endpoint. An empty value disables the
	// client entirely.
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	Logger  *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      model,
		logger:     logger,
	}
}

// Enabled reports whether the client has an endpoint to talk to.
func (c *Client) Enabled() bool {
	return c.baseURL != "" && c.apiKey != ""
}

type generateRequest struct {
	Model    string `json:"model"`
	Contents string `json:"contents"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Summarize produces a narrative summary for one match. It never fails:
// disabled clients and upstream errors both yield the fallback text.
func (c *Client) Summarize(ctx context.Context, m match.Match) string {
	if !c.Enabled() {
		return Fallback
	}

	text, err := c.generate(ctx, buildPrompt(m))
	if err != nil {
		c.logger.WarnContext(ctx, "match summary generation failed",
			"match_id", m.ID,
			"error", err,
		)
		return Fallback
	}
	if text == "" {
		return Fallback
	}
	return text
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := sonic.Marshal(generateRequest{Model: c.model, Contents: prompt})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("generation failed with status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return decoded.Text, nil
}

// buildPrompt renders the match into the generation prompt. Events are listed
// per line so the model can weave them into a narrative.
func buildPrompt(m match.Match) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeLine := func(line string) {
		_, _ = buf.WriteString(line)
		_ = buf.WriteByte('\n')
	}

	writeLine("Generate a short, exciting, and narrative-style summary for a football match. Do not just list the events. Weave them into a story.")
	writeLine("")
	writeLine("Match Details:")
	writeLine("- Home Team: " + m.HomeTeam.Name)
	writeLine("- Away Team: " + m.AwayTeam.Name)
	writeLine("- Score: " + scoreLine(m))
	writeLine("- League: " + m.League)
	writeLine("- Status: " + string(m.Status))
	writeLine("")
	writeLine("Key Events:")
	for _, event := range m.Events {
		writeLine(eventLine(m, event))
	}
	writeLine("")
	writeLine("Based on these details, write a compelling summary of the match. If the match is upcoming or has no events, provide a brief preview or state that the action hasn't started.")

	return buf.String()
}

func scoreLine(m match.Match) string {
	if m.HomeScore == nil || m.AwayScore == nil {
		return "The match has not started or is in progress."
	}
	return fmt.Sprintf("%s %d - %d %s", m.HomeTeam.Name, *m.HomeScore, *m.AwayScore, m.AwayTeam.Name)
}

func eventLine(m match.Match, event match.Event) string {
	teamName := m.AwayTeam.Name
	if event.TeamID == m.HomeTeam.ID {
		teamName = m.HomeTeam.Name
	}
	line := "Minute " + strconv.Itoa(event.Minute) + ": " + string(event.Type) + " for " + teamName + " by " + event.Player
	if event.Detail != "" {
		line += " (" + event.Detail + ")"
	}
	return line + "."
}
