package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AviMalewar/Vibe-app/internal/config"
	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"
	defaultTimeout = 30 * time.Second
)

// geminiOracle is the REST implementation of [VibeOracle] for Gemini-style
// generateContent APIs.
type geminiOracle struct {
	client *resty.Client
	apiKey string
	model  string
	logger *logger.Logger
}

// NewGeminiOracle constructs a [VibeOracle] from the oracle configuration.
// Empty BaseURL, Model, and RequestTimeout fall back to defaults. An empty
// API key yields a working value whose calls fail with [ErrNotConfigured];
// the rest of the application keeps functioning without the oracle.
func NewGeminiOracle(cfg config.Oracle, logger *logger.Logger) VibeOracle {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &geminiOracle{
		client: cli,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: logger,
	}
}

// generateContent request/response wire types, reduced to the fields this
// adapter reads and writes.
type generateRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// AnalyzeVibe implements [VibeOracle]. One request, no retries; the verdict
// score is clamped into [0, 100] before it is returned.
func (g *geminiOracle) AnalyzeVibe(ctx context.Context, a, b models.StudentProfile) (models.VibeMatch, error) {
	raw, err := g.generate(ctx, pairSystemInstruction, pairPrompt(a, b))
	if err != nil {
		return models.VibeMatch{}, err
	}

	var verdict models.VibeMatch
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		g.logger.Warn().Err(err).Msg("oracle returned undecodable pair verdict")
		return models.VibeMatch{}, fmt.Errorf("%w: %w", ErrMalformedVerdict, err)
	}

	clampVerdict(&verdict)
	return verdict, nil
}

// AnalyzeBatch implements [VibeOracle]. Entries whose targetProfileId is
// empty are dropped rather than failing the whole batch.
func (g *geminiOracle) AnalyzeBatch(ctx context.Context, newProfile models.StudentProfile, existing []models.StudentProfile) ([]models.BatchMatchResult, error) {
	if len(existing) == 0 {
		return []models.BatchMatchResult{}, nil
	}

	prompt, err := batchPrompt(newProfile, existing)
	if err != nil {
		return nil, err
	}

	raw, err := g.generate(ctx, batchSystemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	var verdicts []models.BatchMatchResult
	if err := json.Unmarshal([]byte(raw), &verdicts); err != nil {
		g.logger.Warn().Err(err).Msg("oracle returned undecodable batch verdict")
		return nil, fmt.Errorf("%w: %w", ErrMalformedVerdict, err)
	}

	results := make([]models.BatchMatchResult, 0, len(verdicts))
	for _, v := range verdicts {
		if v.TargetProfileID == "" {
			continue
		}
		clampVerdict(&v.VibeMatch)
		results = append(results, v)
	}

	return results, nil
}

// generate performs one generateContent call and returns the text of the
// first candidate part, which the API is instructed to fill with JSON.
func (g *geminiOracle) generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrNotConfigured
	}

	body := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig:  &generationConfig{ResponseMimeType: "application/json"},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", g.apiKey).
		SetBody(body).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}
	if resp.IsError() {
		g.logger.Warn().Int("status", resp.StatusCode()).Msg("oracle request rejected")
		return "", fmt.Errorf("%w: status %d", ErrOracleUnavailable, resp.StatusCode())
	}

	var decoded generateResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedVerdict, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", ErrMalformedVerdict)
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

func clampVerdict(v *models.VibeMatch) {
	if v.Score < 0 {
		v.Score = 0
	}
	if v.Score > 100 {
		v.Score = 100
	}
}
