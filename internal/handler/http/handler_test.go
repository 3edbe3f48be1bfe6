package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AviMalewar/Vibe-app/internal/config"
	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/service"
	"github.com/AviMalewar/Vibe-app/internal/store"
	"github.com/AviMalewar/Vibe-app/models"
)

// stubOracle is a canned-response implementation of oracle.VibeOracle.
type stubOracle struct {
	verdict models.VibeMatch
	batch   []models.BatchMatchResult
	err     error
}

func (s *stubOracle) AnalyzeVibe(_ context.Context, _, _ models.StudentProfile) (models.VibeMatch, error) {
	return s.verdict, s.err
}

func (s *stubOracle) AnalyzeBatch(_ context.Context, _ models.StudentProfile, _ []models.StudentProfile) ([]models.BatchMatchResult, error) {
	return s.batch, s.err
}

// syncWarmup runs the batch analysis inline instead of queueing it, so tests
// need no goroutine synchronisation.
type syncWarmup struct {
	services *service.Services
}

func (s *syncWarmup) Enqueue(profileID string) {
	results, err := s.services.VibeService.AnalyzeBatch(context.Background(), profileID)
	if err != nil {
		return
	}
	s.services.MatchService.PutAutoMatches(profileID, results)
}

func newTestServer(t *testing.T, vibeOracle *stubOracle) *httptest.Server {
	t.Helper()

	if vibeOracle == nil {
		vibeOracle = &stubOracle{}
	}

	storages := &store.Storages{
		Profiles: store.NewProfileStore(store.NewMemoryKeyValue(), store.SeedProfiles(), logger.Nop()),
	}
	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "vibe-test",
			TokenDuration: time.Hour,
		},
	}

	services := service.NewServices(storages, vibeOracle, cfg, logger.Nop())
	h := NewHandler(services, &syncWarmup{services: services}, logger.Nop())

	ts := httptest.NewServer(h.Init())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any, header http.Header) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerProfile(t *testing.T, ts *httptest.Server, name string) (models.StudentProfile, string) {
	t.Helper()

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/profile/register", models.RegisterRequest{
		Name:      name,
		Password:  "secret",
		Branch:    "Computer Science",
		Bio:       "test bio",
		Interests: []string{"AI"},
		Lifestyle: models.NightOwl,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decodeJSON[models.StudentProfile](t, resp), resp.Header.Get("Authorization")
}

func TestRegister_ReturnsSanitizedProfileAndToken(t *testing.T) {
	ts := newTestServer(t, nil)

	profile, authHeader := registerProfile(t, ts, "Riya")

	assert.NotEmpty(t, profile.ID)
	assert.Empty(t, profile.Password)
	assert.Contains(t, authHeader, "Bearer ")
}

func TestRegister_InvalidPayload(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/profile/register", models.RegisterRequest{Name: "Riya"}, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_SuccessAndFailure(t *testing.T) {
	ts := newTestServer(t, nil)
	registerProfile(t, ts, "Riya")

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/profile/login", models.LoginRequest{Name: "Riya", Password: "secret"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Authorization"), "Bearer ")

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/profile/login", models.LoginRequest{Name: "Riya", Password: "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSession_Lifecycle(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/session", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	profile, _ := registerProfile(t, ts, "Riya")

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/session", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	session := decodeJSON[models.StudentProfile](t, resp)
	assert.Equal(t, profile.ID, session.ID)

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/profile/logout", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/session", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListProfiles_MergedAndSanitized(t *testing.T) {
	ts := newTestServer(t, nil)
	registerProfile(t, ts, "Riya")

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/profiles", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	profiles := decodeJSON[[]models.StudentProfile](t, resp)
	require.Len(t, profiles, 6)
	for _, p := range profiles {
		assert.Empty(t, p.Password)
	}
}

func TestDeleteProfile(t *testing.T) {
	ts := newTestServer(t, nil)
	profile, _ := registerProfile(t, ts, "Riya")

	resp := doJSON(t, http.MethodDelete, ts.URL+"/api/profiles/"+profile.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/profiles", nil, nil)
	profiles := decodeJSON[[]models.StudentProfile](t, resp)
	assert.Len(t, profiles, 5)
}

func TestAdminReset_Gating(t *testing.T) {
	ts := newTestServer(t, nil)
	registerProfile(t, ts, "Riya")

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/admin/reset", models.OwnerRequest{Credential: "guess"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decodeJSON[models.OwnerResponse](t, resp).OK)

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/admin/reset", models.OwnerRequest{Credential: "wibe-admin"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeJSON[models.OwnerResponse](t, resp).OK)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/profiles", nil, nil)
	assert.Len(t, decodeJSON[[]models.StudentProfile](t, resp), 5)
}

func TestAdminVerify(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/admin/verify", models.OwnerRequest{Credential: "wibe-admin"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeJSON[models.OwnerResponse](t, resp).OK)
}

func TestCompare_GridAgainstSeed(t *testing.T) {
	ts := newTestServer(t, nil)
	profile, _ := registerProfile(t, ts, "Riya")

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/compare?ref="+profile.ID+"&with=1", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	grid := decodeJSON[models.CompareResponse](t, resp)
	require.Len(t, grid.Entries, 1)
	// same branch and lifestyle as Alex Chen plus one shared interest
	assert.Equal(t, 85, grid.Entries[0].Score)
}

func TestCompare_MissingRef(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/compare", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/compare?ref=nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVibe_RequiresToken(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/vibe", models.VibeRequest{TargetID: "1"}, nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVibe_ReturnsOracleVerdict(t *testing.T) {
	ts := newTestServer(t, &stubOracle{
		verdict: models.VibeMatch{Score: 92, VibeLabel: "Code Comrades"},
	})
	_, authHeader := registerProfile(t, ts, "Riya")

	header := http.Header{"Authorization": []string{authHeader}}
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/vibe", models.VibeRequest{TargetID: "1"}, header)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	verdict := decodeJSON[models.VibeMatch](t, resp)
	assert.Equal(t, 92, verdict.Score)
	assert.Equal(t, "Code Comrades", verdict.VibeLabel)
}

func TestVibe_ForeignProfileIDRejected(t *testing.T) {
	ts := newTestServer(t, nil)
	_, authHeader := registerProfile(t, ts, "Riya")

	header := http.Header{"Authorization": []string{authHeader}}
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/vibe", models.VibeRequest{ProfileID: "someone-else", TargetID: "1"}, header)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAutoMatches_FlowThroughWarmup(t *testing.T) {
	batch := []models.BatchMatchResult{
		{TargetProfileID: "1", VibeMatch: models.VibeMatch{Score: 75, VibeLabel: "Study Buddies"}},
	}
	ts := newTestServer(t, &stubOracle{batch: batch})
	_, authHeader := registerProfile(t, ts, "Riya")
	header := http.Header{"Authorization": []string{authHeader}}

	// registration already triggered the (synchronous) warmup
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/matches/auto", nil, header)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeJSON[[]models.BatchMatchResult](t, resp)
	assert.Equal(t, batch, got)
}

func TestAutoMatches_NoContentBeforeWarmup(t *testing.T) {
	ts := newTestServer(t, &stubOracle{err: context.DeadlineExceeded})
	_, authHeader := registerProfile(t, ts, "Riya")
	header := http.Header{"Authorization": []string{authHeader}}

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/matches/auto", nil, header)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestUnsupportedMethodHidesRoute(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := doJSON(t, http.MethodPut, ts.URL+"/api/profiles", nil, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
