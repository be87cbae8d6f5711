package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"degen-prop/internal/errors"
	"degen-prop/internal/models"
)

func TestBuiltinCatalogContents(t *testing.T) {
	c := New()

	all := c.List("", 0)
	require.Len(t, all, 6)

	// Catalog order is fixed.
	assert.Equal(t, "Memecoin Madness", all[0].Name)
	assert.Equal(t, "Perp Master", all[1].Name)
	assert.Equal(t, "Hyperliquid Hero", all[2].Name)
	assert.Equal(t, "Jupiter Juggernaut", all[3].Name)
	assert.Equal(t, "Multi-Platform Master", all[4].Name)

	first := all[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, models.PlatformPumpFun, first.Platform)
	assert.Equal(t, 10000.0, first.InitialCapital)
	assert.Equal(t, 20.0, first.ProfitTargetPct)
	assert.Equal(t, 10.0, first.MaxDrawdownPct)
	assert.Equal(t, 30, first.DurationDays)
	assert.Equal(t, 99.0, first.Fee)
	assert.Equal(t, 80.0, first.ProfitSplit)
	assert.Equal(t, "10x", first.Leverage)
}

func TestListSearch(t *testing.T) {
	c := New()

	tests := []struct {
		name   string
		term   string
		limit  int
		wantN  int
		wantID string
	}{
		{"empty term matches all", "", 0, 6, "1"},
		{"name match case-insensitive", "MEMECOIN", 0, 1, "1"},
		{"platform match", "hyperliquid", 0, 2, "3"},
		{"partial term", "jug", 0, 1, "4"},
		{"no match", "forex", 0, 0, ""},
		{"limit truncates", "", 2, 2, "1"},
		{"limit larger than result", "perp", 10, 1, "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.List(tt.term, tt.limit)
			assert.Len(t, got, tt.wantN)
			if tt.wantN > 0 {
				assert.Equal(t, tt.wantID, got[0].ID)
			}
		})
	}
}

func TestListPreservesOrder(t *testing.T) {
	c := New()

	got := c.List("hyperliquid", 0)
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "6", got[1].ID)
}

func TestGet(t *testing.T) {
	c := New()

	challenge, err := c.Get("3")
	require.NoError(t, err)
	assert.Equal(t, "Hyperliquid Hero", challenge.Name)
	assert.Equal(t, 50000.0, challenge.InitialCapital)

	_, err = c.Get("999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	var notFound *errors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "challenge", notFound.Kind)
	assert.Equal(t, "999", notFound.ID)
}

func TestPlatformsDistinctInOrder(t *testing.T) {
	c := NewWithChallenges([]models.ChallengeDefinition{
		{ID: "a", Platform: models.PlatformDrift},
		{ID: "b", Platform: models.PlatformPumpFun},
		{ID: "c", Platform: models.PlatformDrift},
		{ID: "d", Platform: models.PlatformJupiter},
	})

	assert.Equal(t, []models.Platform{
		models.PlatformDrift,
		models.PlatformPumpFun,
		models.PlatformJupiter,
	}, c.Platforms())
}
