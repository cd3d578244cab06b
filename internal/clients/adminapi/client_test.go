package adminapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridercritic/internal/config"
	"ridercritic/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.AdminAPIConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, logger.NewNop())
}

func TestGetToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/token", r.URL.Path)

		var body TokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body.Username)

		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-123", TokenType: "bearer"})
	})

	token, err := client.GetToken(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token.AccessToken)
}

func TestMeForwardsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(AccountInfo{Username: "admin", Role: "super_admin"})
	})

	info, err := client.Me(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "admin", info.Username)
}

func TestListBrandsSendsPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/brands", r.URL.Path)
		assert.Equal(t, "40", r.URL.Query().Get("skip"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"name":"Honda"}]`))
	})

	raw, err := client.ListBrands(context.Background(), "tok", ListParams{Skip: 40, Limit: 20})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Honda"}]`, string(raw))
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	_, err := client.Me(context.Background(), "expired")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestDeleteResource(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/brands/b1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteResource(context.Background(), "/api/brands/b1", "tok"))
}
