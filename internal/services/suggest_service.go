package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/internal/utils"
	"ridercritic/pkg/logger"
)

// Match tiers of scoreTextMatch. The tiers are additive: an exact match is
// also a prefix, substring, and word-boundary match, so it scores
// 200+120+60+40 for that field.
const (
	scoreExact        = 200
	scorePrefix       = 120
	scoreSubstring    = 60
	scoreWordBoundary = 40

	motorcycleBoost = 10
	brandBoost      = 5
)

type SuggestService interface {
	Suggest(ctx context.Context, query string) ([]models.Suggestion, error)
}

type suggestService struct {
	motorcycleRepo interfaces.MotorcycleRepository
	brandRepo      interfaces.BrandRepository
	criticRepo     interfaces.CriticRepository
	logger         *logger.Logger
}

func NewSuggestService(
	motorcycleRepo interfaces.MotorcycleRepository,
	brandRepo interfaces.BrandRepository,
	criticRepo interfaces.CriticRepository,
	logger *logger.Logger,
) SuggestService {
	return &suggestService{
		motorcycleRepo: motorcycleRepo,
		brandRepo:      brandRepo,
		criticRepo:     criticRepo,
		logger:         logger,
	}
}

func (s *suggestService) Suggest(ctx context.Context, query string) ([]models.Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Suggestion{}, nil
	}

	var (
		motorcycles []*models.Motorcycle
		brands      []*models.Brand
		critics     []*models.Critic
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		motorcycles, err = s.motorcycleRepo.GetPublished(gctx, utils.SuggestMotorcycleScan)
		return err
	})
	g.Go(func() error {
		var err error
		brands, err = s.brandRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		critics, err = s.criticRepo.GetApproved(gctx, utils.SuggestCriticScan)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load suggestion sources: %w", err)
	}

	suggestions := RankSuggestions(query, motorcycles, brands, critics)

	s.logger.WithFields(map[string]interface{}{
		"query":   query,
		"results": len(suggestions),
	}).Debug("Suggestion query ranked")

	return suggestions, nil
}

// RankSuggestions scores every candidate against the query, drops
// non-matches, collapses duplicate destinations keeping the higher score,
// and returns the top entries sorted by descending score.
func RankSuggestions(query string, motorcycles []*models.Motorcycle, brands []*models.Brand, critics []*models.Critic) []models.Suggestion {
	candidates := make([]models.Suggestion, 0, len(motorcycles)+len(brands)+len(critics))

	for _, m := range motorcycles {
		score := ScoreMotorcycle(m, query)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, models.Suggestion{
			ID:       m.ID,
			Title:    strings.TrimSpace(m.Brand + " " + m.ModelName),
			Subtitle: motorcycleSubtitle(m),
			Image:    m.Images.Cover,
			Href:     "/motorcycles/" + m.ID,
			Type:     models.SuggestionTypeMotorcycle,
			Score:    score,
		})
	}

	for _, b := range brands {
		score := ScoreBrand(b, query)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, models.Suggestion{
			ID:       b.ID,
			Title:    b.Name,
			Subtitle: b.Distributor,
			Image:    b.LogoURL,
			Href:     "/brands/" + b.ID,
			Type:     models.SuggestionTypeBrand,
			Score:    score,
		})
	}

	for _, c := range critics {
		score := ScoreCritic(c, query)
		if score <= 0 {
			continue
		}
		image := ""
		if len(c.Images) > 0 {
			image = c.Images[0]
		}
		candidates = append(candidates, models.Suggestion{
			ID:       c.ID,
			Title:    c.Title,
			Subtitle: c.Topic,
			Image:    image,
			Href:     "/critics/" + c.ID,
			Type:     models.SuggestionTypeCritic,
			Score:    score,
		})
	}

	deduped := dedupeByHref(candidates)

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Score > deduped[j].Score
	})

	if len(deduped) > utils.MaxSuggestions {
		deduped = deduped[:utils.MaxSuggestions]
	}

	return deduped
}

// ScoreMotorcycle takes the best of the model name, the brand, and the
// combined "brand model" string, then applies the motorcycle boost.
func ScoreMotorcycle(m *models.Motorcycle, query string) int {
	score := ScoreTextMatch(m.ModelName, query)
	if s := ScoreTextMatch(m.Brand, query); s > score {
		score = s
	}
	if s := ScoreTextMatch(m.Brand+" "+m.ModelName, query); s > score {
		score = s
	}
	if score <= 0 {
		return 0
	}
	return score + motorcycleBoost
}

func ScoreBrand(b *models.Brand, query string) int {
	score := ScoreTextMatch(b.Name, query)
	if score <= 0 {
		return 0
	}
	return score + brandBoost
}

// ScoreCritic takes the better of title and topic. Critics get no boost.
func ScoreCritic(c *models.Critic, query string) int {
	score := ScoreTextMatch(c.Title, query)
	if s := ScoreTextMatch(c.Topic, query); s > score {
		score = s
	}
	return score
}

// ScoreTextMatch scores one candidate field against the query. All tiers
// that textually hold contribute, so overlapping tiers stack.
func ScoreTextMatch(text, query string) int {
	t := strings.ToLower(strings.TrimSpace(text))
	q := strings.ToLower(strings.TrimSpace(query))
	if t == "" || q == "" {
		return 0
	}

	score := 0
	if t == q {
		score += scoreExact
	}
	if strings.HasPrefix(t, q) {
		score += scorePrefix
	}
	if strings.Contains(t, q) {
		score += scoreSubstring
	}
	if matchesAtWordBoundary(t, q) {
		score += scoreWordBoundary
	}

	return score
}

// matchesAtWordBoundary reports whether some occurrence of q in t starts a
// word: at the beginning of the string, or right after whitespace, a
// hyphen, or an underscore.
func matchesAtWordBoundary(t, q string) bool {
	for from := 0; ; {
		idx := strings.Index(t[from:], q)
		if idx < 0 {
			return false
		}
		idx += from

		if idx == 0 {
			return true
		}
		switch t[idx-1] {
		case ' ', '\t', '-', '_':
			return true
		}

		from = idx + 1
	}
}

func dedupeByHref(candidates []models.Suggestion) []models.Suggestion {
	best := make(map[string]int, len(candidates))
	result := make([]models.Suggestion, 0, len(candidates))

	for _, c := range candidates {
		if i, seen := best[c.Href]; seen {
			if c.Score > result[i].Score {
				result[i] = c
			}
			continue
		}
		best[c.Href] = len(result)
		result = append(result, c)
	}

	return result
}

func motorcycleSubtitle(m *models.Motorcycle) string {
	parts := make([]string, 0, 2)
	if m.ModelYear > 0 {
		parts = append(parts, fmt.Sprintf("%d", m.ModelYear))
	}
	if m.Category != "" {
		parts = append(parts, m.Category)
	}
	return strings.Join(parts, " · ")
}
