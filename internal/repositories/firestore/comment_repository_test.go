package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridercritic/internal/models"
)

func commentAt(id string, created time.Time) *models.Comment {
	return &models.Comment{ID: id, CreatedAt: created}
}

func TestSortAndLimitCommentsNewestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	comments := []*models.Comment{
		commentAt("old", base),
		commentAt("newest", base.Add(2*time.Hour)),
		commentAt("middle", base.Add(time.Hour)),
	}

	sorted := SortAndLimitComments(comments, 10)

	require.Len(t, sorted, 3)
	assert.Equal(t, "newest", sorted[0].ID)
	assert.Equal(t, "middle", sorted[1].ID)
	assert.Equal(t, "old", sorted[2].ID)
}

func TestSortAndLimitCommentsTruncates(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	var comments []*models.Comment
	for i := 0; i < 5; i++ {
		comments = append(comments, commentAt(string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute)))
	}

	sorted := SortAndLimitComments(comments, 2)

	require.Len(t, sorted, 2)
	assert.Equal(t, "e", sorted[0].ID)
	assert.Equal(t, "d", sorted[1].ID)
}

func TestSortAndLimitCommentsStableForEqualTimestamps(t *testing.T) {
	ts := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	comments := []*models.Comment{
		commentAt("first", ts),
		commentAt("second", ts),
	}

	sorted := SortAndLimitComments(comments, 10)

	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
}

func TestSortAndLimitCommentsEmpty(t *testing.T) {
	assert.Empty(t, SortAndLimitComments(nil, 10))
}
