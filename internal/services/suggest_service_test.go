package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/pkg/logger"
)

type fakeMotorcycleRepo struct {
	interfaces.MotorcycleRepository
	published []*models.Motorcycle
	err       error
}

func (f *fakeMotorcycleRepo) GetPublished(ctx context.Context, limit int) ([]*models.Motorcycle, error) {
	return f.published, f.err
}

type fakeBrandRepo struct {
	interfaces.BrandRepository
	brands []*models.Brand
	err    error
}

func (f *fakeBrandRepo) GetAll(ctx context.Context) ([]*models.Brand, error) {
	return f.brands, f.err
}

type fakeCriticRepo struct {
	interfaces.CriticRepository
	approved []*models.Critic
	err      error
}

func (f *fakeCriticRepo) GetApproved(ctx context.Context, limit int) ([]*models.Critic, error) {
	return f.approved, f.err
}

func newTestSuggestService(m *fakeMotorcycleRepo, b *fakeBrandRepo, cr *fakeCriticRepo) SuggestService {
	return NewSuggestService(m, b, cr, logger.NewNop())
}

func motorcycle(id, brand, model string) *models.Motorcycle {
	return &models.Motorcycle{
		ID:        id,
		Brand:     brand,
		ModelName: model,
		Status:    models.MotorcycleStatusPublished,
	}
}

func TestScoreTextMatch(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  int
	}{
		{"exact match stacks all tiers", "ninja", "ninja", 420},
		{"prefix also substring and boundary", "ninja 400", "ninja", 220},
		{"substring mid-word only", "kawasaki", "wasa", 60},
		{"word boundary after space", "street triple", "triple", 100},
		{"word boundary after hyphen", "v-strom", "strom", 100},
		{"word boundary after underscore", "road_king", "king", 100},
		{"case insensitive", "NINJA", "ninja", 420},
		{"surrounding whitespace trimmed", "  ninja  ", " ninja ", 420},
		{"no match", "ducati", "yamaha", 0},
		{"empty text", "", "ninja", 0},
		{"empty query", "ninja", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreTextMatch(tt.text, tt.query))
		})
	}
}

func TestScoreTextMatchBoundaryNotFirstOccurrence(t *testing.T) {
	// First occurrence of "king" is mid-word; a later occurrence starts a
	// word and must still earn the boundary tier.
	assert.Equal(t, 100, ScoreTextMatch("looking for king", "king"))
}

func TestScoreMotorcycleBeatsBrandOnExactModelMatch(t *testing.T) {
	m := motorcycle("m1", "Yamaha", "R15")
	b := &models.Brand{ID: "b1", Name: "R15 Accessories"}

	motorcycleScore := ScoreMotorcycle(m, "r15")
	brandScore := ScoreBrand(b, "r15")

	assert.Equal(t, 430, motorcycleScore)
	assert.Equal(t, 225, brandScore)
	assert.Greater(t, motorcycleScore, brandScore)
}

func TestScoreMotorcycleUsesCombinedBrandModel(t *testing.T) {
	m := motorcycle("m1", "Royal Enfield", "Classic 350")

	// Query spanning brand and model only matches the combined string.
	assert.Equal(t, 430, ScoreMotorcycle(m, "royal enfield classic 350"))
}

func TestScoreMotorcycleNoMatchGetsNoBoost(t *testing.T) {
	m := motorcycle("m1", "Ducati", "Panigale")
	assert.Equal(t, 0, ScoreMotorcycle(m, "harley"))
}

func TestScoreCriticNoBoost(t *testing.T) {
	c := &models.Critic{Title: "Ninja 400 long term review", Topic: "ownership"}
	assert.Equal(t, 220, ScoreCritic(c, "ninja"))
}

func TestRankSuggestionsTruncatesAndSortsDescending(t *testing.T) {
	var motorcycles []*models.Motorcycle
	names := []string{"Ninja 300", "Ninja 400", "Ninja 650", "Ninja 1000", "Ninja H2", "Ninja ZX-6R", "Ninja ZX-10R", "Ninja ZX-4R", "Ninja 500", "Ninja 250"}
	for i, name := range names {
		motorcycles = append(motorcycles, motorcycle(string(rune('a'+i)), "Kawasaki", name))
	}

	suggestions := RankSuggestions("ninja", motorcycles, nil, nil)

	require.Len(t, suggestions, 8)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Score, suggestions[i].Score)
	}
}

func TestRankSuggestionsDedupesByHrefKeepingHigherScore(t *testing.T) {
	// Same document surfacing twice collapses to the better score.
	motorcycles := []*models.Motorcycle{
		motorcycle("dup", "Honda", "CBR650R"),
		motorcycle("dup", "Honda CBR650R", "CBR"),
	}

	suggestions := RankSuggestions("cbr650r", motorcycles, nil, nil)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "/motorcycles/dup", suggestions[0].Href)
	assert.Equal(t, 430, suggestions[0].Score)
}

func TestRankSuggestionsDropsNonMatches(t *testing.T) {
	motorcycles := []*models.Motorcycle{motorcycle("m1", "Ducati", "Panigale")}
	brands := []*models.Brand{{ID: "b1", Name: "Ducati"}}
	critics := []*models.Critic{{ID: "c1", Title: "Touring tips"}}

	suggestions := RankSuggestions("ducati", motorcycles, brands, critics)

	require.Len(t, suggestions, 2)
	for _, s := range suggestions {
		assert.NotEqual(t, models.SuggestionTypeCritic, s.Type)
	}
}

func TestSuggestEmptyQueryReturnsEmptyWithoutFetching(t *testing.T) {
	svc := newTestSuggestService(
		&fakeMotorcycleRepo{err: errors.New("must not be called")},
		&fakeBrandRepo{err: errors.New("must not be called")},
		&fakeCriticRepo{err: errors.New("must not be called")},
	)

	for _, q := range []string{"", "   ", "\t"} {
		suggestions, err := svc.Suggest(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, suggestions)
		assert.NotNil(t, suggestions)
	}
}

func TestSuggestReturnsRankedResults(t *testing.T) {
	svc := newTestSuggestService(
		&fakeMotorcycleRepo{published: []*models.Motorcycle{motorcycle("m1", "Yamaha", "R15")}},
		&fakeBrandRepo{brands: []*models.Brand{{ID: "b1", Name: "Yamaha"}}},
		&fakeCriticRepo{approved: []*models.Critic{{ID: "c1", Title: "Yamaha R15 review"}}},
	)

	suggestions, err := svc.Suggest(context.Background(), "yamaha")
	require.NoError(t, err)
	require.Len(t, suggestions, 3)

	assert.Equal(t, models.SuggestionTypeMotorcycle, suggestions[0].Type)
	assert.Equal(t, models.SuggestionTypeBrand, suggestions[1].Type)
	assert.Equal(t, models.SuggestionTypeCritic, suggestions[2].Type)
}

func TestSuggestPropagatesFetchFailure(t *testing.T) {
	svc := newTestSuggestService(
		&fakeMotorcycleRepo{},
		&fakeBrandRepo{err: errors.New("firestore unavailable")},
		&fakeCriticRepo{},
	)

	_, err := svc.Suggest(context.Background(), "ninja")
	require.Error(t, err)
}
