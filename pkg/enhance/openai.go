package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ecworks/groundcover/pkg/model"
)

// OpenAIConfig configures the chat-completions enhancer.
type OpenAIConfig struct {
	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	BaseURL string

	// APIKey authenticates requests. Required; an empty key makes every
	// Enhance call return ErrUnavailable.
	APIKey string

	// Model is the chat model to use (default: gpt-4o-mini).
	Model string

	// Timeout bounds each request (default: 30s).
	Timeout time.Duration

	// MaxTokens caps the response length (default: 600).
	MaxTokens int
}

// ApplyDefaults fills in unset fields.
func (c *OpenAIConfig) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 600
	}
}

// OpenAIEnhancer asks a chat-completions endpoint to narrate the
// deterministic result: phasing suggestions, maintenance notes, items an
// inspector will look for. The practices and costs themselves are never
// sent back into the output.
type OpenAIEnhancer struct {
	config OpenAIConfig
	client *http.Client
	logger *slog.Logger
}

// NewOpenAIEnhancer creates an enhancer backed by a chat-completions API.
func NewOpenAIEnhancer(config OpenAIConfig, logger *slog.Logger) *OpenAIEnhancer {
	config.ApplyDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	return &OpenAIEnhancer{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger.With("component", "enhancer"),
	}
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (e *OpenAIEnhancer) Enhance(ctx context.Context, project *model.ProjectInput, output *model.ProjectOutput) (string, error) {
	if e.config.APIKey == "" {
		return "", ErrUnavailable
	}

	body, err := json.Marshal(chatRequest{
		Model:     e.config.Model,
		MaxTokens: e.config.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(project, output)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding enhancement request: %w", err)
	}

	url := strings.TrimRight(e.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building enhancement request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.config.APIKey)

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Warn("enhancement request failed", "error", err)
		return "", ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		e.logger.Warn("enhancement request rejected",
			"status", resp.StatusCode,
			"body", string(data),
		)
		return "", ErrUnavailable
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		e.logger.Warn("enhancement response malformed", "error", err)
		return "", ErrUnavailable
	}
	if len(parsed.Choices) == 0 {
		return "", ErrUnavailable
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

const systemPrompt = "You are an erosion and sediment control reviewer. " +
	"Given a construction project and its computed practice plan, write a short " +
	"narrative covering installation sequencing, maintenance expectations, and " +
	"likely inspection focus areas. Do not restate quantities or costs."

func buildPrompt(project *model.ProjectInput, output *model.ProjectOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Project: %s (%s)\n", project.ProjectName, project.Jurisdiction)
	fmt.Fprintf(&sb, "Disturbed area: %.2f acres, soil %s, slope %s (%.1f%%)\n",
		project.TotalDisturbedAcres, project.PredominantSoil,
		project.PredominantSlope, project.AverageSlopePercent)
	fmt.Fprintf(&sb, "Drainage features: %d\n", project.DrainageFeatureCount())

	sb.WriteString("Planned practices:\n")
	for _, p := range output.TemporaryPractices {
		fmt.Fprintf(&sb, "- %s (temporary) at %s\n", p.PracticeType, p.Location)
	}
	for _, p := range output.PermanentPractices {
		fmt.Fprintf(&sb, "- %s (permanent) at %s\n", p.PracticeType, p.Location)
	}
	return sb.String()
}
