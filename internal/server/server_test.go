package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-portal/internal/insight"
	"github.com/jonathan/placement-portal/internal/summary"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	s, err := New(Config{
		Port:        0,
		StorePath:   filepath.Join(t.TempDir(), "portal.db"),
		EmailDomain: "iitg.ac.in",
		JWTSecret:   "test-secret",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.store.Close() })
	return s
}

func TestNew_RequiresJWTSecret(t *testing.T) {
	_, err := New(Config{
		StorePath:   filepath.Join(t.TempDir(), "portal.db"),
		EmailDomain: "iitg.ac.in",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

// doRequest routes a request through the server's full handler chain.
func doRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// loginAs returns a session token for a seed user.
func loginAs(t *testing.T, s *Server, email string) string {
	t.Helper()

	rec := doRequest(t, s, http.MethodPost, "/auth/login", "", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok, "login response should carry a token")
	return token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestLogin_DomainGate(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/auth/login", "", map[string]string{"email": "someone@gmail.com"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Only @iitg.ac.in emails are allowed.", decodeBody(t, rec)["error"])
}

func TestLogin_UnknownUserNeedsSetup(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/auth/login", "", map[string]string{"email": "fresh@iitg.ac.in"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["setupRequired"])
	assert.Equal(t, "fresh@iitg.ac.in", body["email"])
	assert.NotContains(t, body, "token")
}

func TestLogin_KnownUser(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/auth/login", "", map[string]string{"email": "senior.dev@iitg.ac.in"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u1", user["id"])
}

func TestLogin_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/auth/login", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteProfile(t *testing.T) {
	s := newTestServer(t)

	profile := map[string]any{
		"email":  "asha@iitg.ac.in",
		"name":   "Asha Verma",
		"branch": "Computer Science and Engineering",
		"year":   2026,
	}
	rec := doRequest(t, s, http.MethodPost, "/auth/complete-profile", "", profile)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])

	// The same email cannot sign up twice.
	rec = doRequest(t, s, http.MethodPost, "/auth/complete-profile", "", profile)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCompleteProfile_UnknownBranch(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/auth/complete-profile", "", map[string]any{
		"email":  "asha@iitg.ac.in",
		"name":   "Asha Verma",
		"branch": "Astrology",
		"year":   2026,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurrentUser(t *testing.T) {
	s := newTestServer(t)
	token := loginAs(t, s, "senior.dev@iitg.ac.in")

	rec := doRequest(t, s, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rahul Sharma", decodeBody(t, rec)["name"])

	rec = doRequest(t, s, http.MethodGet, "/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/users/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListCompanies(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/companies", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), decodeBody(t, rec)["count"])
}

func TestGetCompany(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/companies/c1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Google", decodeBody(t, rec)["name"])

	rec = doRequest(t, s, http.MethodGet, "/companies/c99", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Company not found", decodeBody(t, rec)["error"])
}

func TestTrendingCompanies(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/companies/trending", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["count"], "both seed companies with experiences trend")
}

func TestCompanyInsight_WithoutAPIKey(t *testing.T) {
	s := newTestServer(t)

	// c1 has a seed experience; without a client the generator falls back.
	rec := doRequest(t, s, http.MethodGet, "/companies/c1/insight", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, summary.FallbackInsightNoAPIKey, decodeBody(t, rec)["insight"])

	// c4 has no experiences at all; the placeholder wins before any client
	// would be consulted.
	rec = doRequest(t, s, http.MethodGet, "/companies/c4/insight", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, insight.Placeholder, decodeBody(t, rec)["insight"])
}

func TestListExperiences(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/experiences", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["count"])

	rec = doRequest(t, s, http.MethodGet, "/experiences?company_id=c1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
}

func TestGetExperience(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/experiences/e1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Google", decodeBody(t, rec)["companyName"])

	rec = doRequest(t, s, http.MethodGet, "/experiences/e99", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Experience not found", decodeBody(t, rec)["error"])
}

func TestUpvote(t *testing.T) {
	s := newTestServer(t)
	token := loginAs(t, s, "senior.dev@iitg.ac.in")

	rec := doRequest(t, s, http.MethodPost, "/experiences/e2/upvote", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Seed e2 starts at 8; repeated votes keep counting.
	for want := 9.0; want <= 11; want++ {
		rec = doRequest(t, s, http.MethodPost, "/experiences/e2/upvote", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, decodeBody(t, rec)["upvotes"])
	}

	rec = doRequest(t, s, http.MethodPost, "/experiences/e99/upvote", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
