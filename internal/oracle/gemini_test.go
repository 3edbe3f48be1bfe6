package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AviMalewar/Vibe-app/internal/config"
	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/models"
)

func verdictResponse(t *testing.T, payload any) []byte {
	t.Helper()

	text, err := json.Marshal(payload)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": string(text)}}}},
		},
	})
	require.NoError(t, err)
	return body
}

func newTestOracle(ts *httptest.Server) VibeOracle {
	return NewGeminiOracle(config.Oracle{
		BaseURL: ts.URL,
		APIKey:  "test-key",
		Model:   "gemini-test",
	}, logger.Nop())
}

func testProfile(id, name string) models.StudentProfile {
	return models.StudentProfile{
		ID:        id,
		Name:      name,
		Branch:    "Computer Science",
		Interests: []string{"AI"},
		Lifestyle: models.NightOwl,
	}
}

func TestAnalyzeVibe_Success(t *testing.T) {
	var gotPath, gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "systemInstruction")
		assert.Contains(t, req, "generationConfig")

		w.Write(verdictResponse(t, models.VibeMatch{
			Score:             91,
			Reasoning:         "shared love of late nights and AI",
			CommonGround:      []string{"AI"},
			SuggestedActivity: "hackathon",
			VibeLabel:         "Code Comrades",
		}))
	}))
	defer ts.Close()

	o := newTestOracle(ts)

	verdict, err := o.AnalyzeVibe(context.Background(), testProfile("1", "Alex"), testProfile("2", "Sarah"))

	require.NoError(t, err)
	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, 91, verdict.Score)
	assert.Equal(t, "Code Comrades", verdict.VibeLabel)
}

func TestAnalyzeVibe_ClampsScore(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(verdictResponse(t, models.VibeMatch{Score: 150}))
	}))
	defer ts.Close()

	verdict, err := newTestOracle(ts).AnalyzeVibe(context.Background(), testProfile("1", "a"), testProfile("2", "b"))

	require.NoError(t, err)
	assert.Equal(t, 100, verdict.Score)
}

func TestAnalyzeVibe_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := newTestOracle(ts).AnalyzeVibe(context.Background(), testProfile("1", "a"), testProfile("2", "b"))

	assert.ErrorIs(t, err, ErrOracleUnavailable)
}

func TestAnalyzeVibe_MalformedVerdict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "not json at all"}}}},
			},
		})
		w.Write(body)
	}))
	defer ts.Close()

	_, err := newTestOracle(ts).AnalyzeVibe(context.Background(), testProfile("1", "a"), testProfile("2", "b"))

	assert.ErrorIs(t, err, ErrMalformedVerdict)
}

func TestAnalyzeVibe_EmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	_, err := newTestOracle(ts).AnalyzeVibe(context.Background(), testProfile("1", "a"), testProfile("2", "b"))

	assert.ErrorIs(t, err, ErrMalformedVerdict)
}

func TestAnalyzeVibe_NoAPIKey(t *testing.T) {
	o := NewGeminiOracle(config.Oracle{}, logger.Nop())

	_, err := o.AnalyzeVibe(context.Background(), testProfile("1", "a"), testProfile("2", "b"))

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAnalyzeBatch_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(verdictResponse(t, []models.BatchMatchResult{
			{TargetProfileID: "2", VibeMatch: models.VibeMatch{Score: 70, VibeLabel: "Creative Sparks"}},
			{TargetProfileID: "3", VibeMatch: models.VibeMatch{Score: -5}},
		}))
	}))
	defer ts.Close()

	results, err := newTestOracle(ts).AnalyzeBatch(
		context.Background(),
		testProfile("1", "a"),
		[]models.StudentProfile{testProfile("2", "b"), testProfile("3", "c")},
	)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "2", results[0].TargetProfileID)
	assert.Equal(t, 0, results[1].Score, "negative scores are clamped to zero")
}

func TestAnalyzeBatch_DropsEntriesWithoutTargetID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(verdictResponse(t, []models.BatchMatchResult{
			{TargetProfileID: "", VibeMatch: models.VibeMatch{Score: 55}},
			{TargetProfileID: "2", VibeMatch: models.VibeMatch{Score: 60}},
		}))
	}))
	defer ts.Close()

	results, err := newTestOracle(ts).AnalyzeBatch(
		context.Background(),
		testProfile("1", "a"),
		[]models.StudentProfile{testProfile("2", "b")},
	)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].TargetProfileID)
}

func TestAnalyzeBatch_EmptyExistingShortCircuits(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer ts.Close()

	results, err := newTestOracle(ts).AnalyzeBatch(context.Background(), testProfile("1", "a"), nil)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, called, "empty population must not trigger an oracle call")
}
