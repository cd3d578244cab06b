package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ridercritic/internal/models"
)

func TestValidateStructRatingRange(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		valid  bool
	}{
		{"zero", 0, true},
		{"mid", 3.5, true},
		{"max", 5, true},
		{"above max", 5.1, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			critic := models.Critic{
				Kind:       models.CriticKindReview,
				Title:      "First ride impressions",
				Content:    "Solid commuter.",
				AuthorName: "Alex",
				Rating:     tt.rating,
			}

			errs := ValidateStruct(&critic)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				assert.Contains(t, errs, "rating")
			}
		})
	}
}

func TestValidateStructRequiredFields(t *testing.T) {
	errs := ValidateStruct(&models.Critic{})

	assert.Contains(t, errs, "kind")
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "content")
	assert.Contains(t, errs, "authorname")
}

func TestModelYearRule(t *testing.T) {
	type subject struct {
		Year int `validate:"model_year"`
	}

	assert.Nil(t, ValidateStruct(&subject{Year: 0}))
	assert.Nil(t, ValidateStruct(&subject{Year: 2024}))
	assert.Nil(t, ValidateStruct(&subject{Year: time.Now().Year() + 1}))
	assert.NotNil(t, ValidateStruct(&subject{Year: 1700}))
	assert.NotNil(t, ValidateStruct(&subject{Year: time.Now().Year() + 5}))
}
