// Package ai holds the chat-completions client used to obtain structured
// health assessments from a hosted reasoning model.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// systemInstruction frames every request sent to the model.
const systemInstruction = "You are a medical AI assistant that provides structured preliminary health assessments. Always respond in valid JSON format and include appropriate medical disclaimers."

// Urgency levels the model is allowed to return.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// ErrTimeout indicates the model did not answer within the configured deadline.
var ErrTimeout = errors.New("model request timed out")

// Config holds the settings for the outbound model call.
type Config struct {
	Endpoint  string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Result is the structured assessment parsed from the model's reply.
type Result struct {
	Summary             string   `json:"summary"`
	QuickRemedy         []string `json:"quick_remedy"`
	SuspectedConditions []string `json:"suspected_conditions"`
	ConfidenceScore     int      `json:"confidence_score"`
	UrgencyLevel        string   `json:"urgency_level"`
	Recommendations     []string `json:"recommendations"`
	RedFlags            []string `json:"red_flags"`
	FollowUpTimeline    string   `json:"follow_up_timeline"`
	Disclaimer          string   `json:"disclaimer"`
	AskMore             string   `json:"ask_more"`
}

// Client performs chat-completions requests against an OpenAI-compatible endpoint.
type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1000
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string         `json:"model"`
	Messages            []chatMessage  `json:"messages"`
	MaxCompletionTokens int            `json:"max_completion_tokens"`
	ResponseFormat      responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Assess sends the prompt to the model and returns the validated assessment.
// The call is bounded by the configured timeout; there are no retries.
func (c *Client) Assess(ctx context.Context, prompt string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		MaxCompletionTokens: c.cfg.MaxTokens,
		ResponseFormat:      responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding model request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building model request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("calling model endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("model endpoint returned status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, errors.New("model response contains no choices")
	}

	return parseResult(chat.Choices[0].Message.Content)
}

// parseResult decodes and validates the model's JSON reply. A missing or
// mistyped required field fails the whole request; values are never coerced.
func parseResult(content string) (*Result, error) {
	var raw struct {
		Summary             *string  `json:"summary"`
		QuickRemedy         []string `json:"quick_remedy"`
		SuspectedConditions []string `json:"suspected_conditions"`
		ConfidenceScore     *int     `json:"confidence_score"`
		UrgencyLevel        *string  `json:"urgency_level"`
		Recommendations     []string `json:"recommendations"`
		RedFlags            []string `json:"red_flags"`
		FollowUpTimeline    string   `json:"follow_up_timeline"`
		Disclaimer          string   `json:"disclaimer"`
		AskMore             string   `json:"ask_more"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("model reply is not valid JSON: %w", err)
	}

	if raw.Summary == nil || *raw.Summary == "" {
		return nil, errors.New("model reply missing summary")
	}
	if raw.SuspectedConditions == nil {
		return nil, errors.New("model reply missing suspected_conditions")
	}
	if raw.ConfidenceScore == nil {
		return nil, errors.New("model reply missing confidence_score")
	}
	if *raw.ConfidenceScore < 0 || *raw.ConfidenceScore > 100 {
		return nil, fmt.Errorf("model reply confidence_score %d out of range", *raw.ConfidenceScore)
	}
	if raw.UrgencyLevel == nil {
		return nil, errors.New("model reply missing urgency_level")
	}
	switch *raw.UrgencyLevel {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
	default:
		return nil, fmt.Errorf("model reply urgency_level %q is not one of low/medium/high", *raw.UrgencyLevel)
	}

	if raw.RedFlags == nil {
		raw.RedFlags = []string{}
	}
	if raw.Recommendations == nil {
		raw.Recommendations = []string{}
	}

	return &Result{
		Summary:             *raw.Summary,
		QuickRemedy:         raw.QuickRemedy,
		SuspectedConditions: raw.SuspectedConditions,
		ConfidenceScore:     *raw.ConfidenceScore,
		UrgencyLevel:        *raw.UrgencyLevel,
		Recommendations:     raw.Recommendations,
		RedFlags:            raw.RedFlags,
		FollowUpTimeline:    raw.FollowUpTimeline,
		Disclaimer:          raw.Disclaimer,
		AskMore:             raw.AskMore,
	}, nil
}
