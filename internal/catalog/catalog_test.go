package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/skinflow/internal/common"
	"github.com/glowlab/skinflow/internal/models"
)

func TestScan_ReturnsBarcodeResult(t *testing.T) {
	c := New()

	p := c.Scan()
	assert.Equal(t, "Hydrating Face Serum", p.Name)
	assert.Equal(t, "GlowLab", p.Brand)
	assert.Equal(t, 92, p.Score)
	assert.Equal(t, models.VerdictGood, p.Verdict)
}

func TestLookup(t *testing.T) {
	c := New()

	p, err := c.Lookup("3")
	require.NoError(t, err)
	assert.Equal(t, "Vitamin C Serum", p.Name)

	_, err = c.Lookup("999")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSearch(t *testing.T) {
	c := New()

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{"by name", "vitamin c", "Vitamin C Serum", false},
		{"by brand", "lumière", "Vitamin C Serum", false},
		{"case-insensitive", "HYDRATING FACE", "Hydrating Face Serum", false},
		{"miss", "does not exist", "", true},
		{"blank", "   ", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := c.Search(tc.query)
			if tc.wantErr {
				assert.ErrorIs(t, err, common.ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Name)
		})
	}
}

func TestRecommendations_PrefersGoalsAndSkipsAllergens(t *testing.T) {
	c := New()

	p := &models.Profile{
		Goals: []string{"Anti-aging"},
		Allergies: []models.Allergy{
			{Ingredient: "retinol", Severity: models.SeverityHigh},
		},
	}

	recs := c.Recommendations(p, 3)
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Equal(t, models.VerdictGood, r.Verdict)
		assert.Zero(t, FlagAllergies(r, p.Allergies), "allergen-flagged product recommended: %s", r.Name)
	}
}

func TestRecommendations_NilProfile(t *testing.T) {
	c := New()

	recs := c.Recommendations(nil, 2)
	assert.Len(t, recs, 2)
}

func TestFlagAllergies(t *testing.T) {
	p := models.Product{Ingredients: []string{"fragrance", "alcohol denat", "glycerin"}}

	flags := FlagAllergies(p, []models.Allergy{
		{Ingredient: "Fragrance", Severity: models.SeverityHigh},
		{Ingredient: "alcohol", Severity: models.SeverityMedium},
		{Ingredient: "retinol", Severity: models.SeverityLow},
	})

	assert.Equal(t, 2, flags)
}
