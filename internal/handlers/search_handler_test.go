package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridercritic/internal/models"
	"ridercritic/pkg/logger"
)

type stubSuggestService struct {
	suggestions []models.Suggestion
	err         error
}

func (s *stubSuggestService) Suggest(ctx context.Context, query string) ([]models.Suggestion, error) {
	if s.err != nil {
		return nil, s.err
	}
	if query == "" {
		return []models.Suggestion{}, nil
	}
	return s.suggestions, nil
}

func suggestRequest(svc *stubSuggestService, rawQuery string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewSearchHandler(svc, logger.NewNop())
	router.GET("/search/suggest", handler.Suggest)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/search/suggest"+rawQuery, nil))
	return w
}

func TestSuggestReturnsResults(t *testing.T) {
	svc := &stubSuggestService{suggestions: []models.Suggestion{
		{ID: "m1", Title: "Yamaha R15", Href: "/motorcycles/m1", Type: models.SuggestionTypeMotorcycle, Score: 430},
	}}

	w := suggestRequest(svc, "?q=r15")

	require.Equal(t, http.StatusOK, w.Code)

	var body suggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Suggestions, 1)
	assert.Equal(t, "Yamaha R15", body.Suggestions[0].Title)
	assert.Empty(t, body.Error)
}

func TestSuggestEmptyQuery(t *testing.T) {
	w := suggestRequest(&stubSuggestService{}, "")

	require.Equal(t, http.StatusOK, w.Code)

	var body suggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Suggestions)
	assert.Empty(t, body.Error)
}

// A backend failure must not surface as a 5xx; the search box expects a
// well-formed empty payload.
func TestSuggestFailureDegradesTo200(t *testing.T) {
	svc := &stubSuggestService{err: errors.New("firestore unavailable")}

	w := suggestRequest(svc, "?q=ninja")

	require.Equal(t, http.StatusOK, w.Code)

	var body suggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body.Suggestions)
	assert.Empty(t, body.Suggestions)
	assert.Equal(t, "failed", body.Error)
}
