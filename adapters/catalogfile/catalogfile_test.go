package catalogfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
tier "starter" {
  name           = "Starter"
  min_seats      = 1
  max_seats      = 49
  price_per_seat = 12000
  features       = ["core"]
}

tier "growth" {
  name           = "Growth"
  badge          = "Most popular"
  min_seats      = 50
  max_seats      = 199
  price_per_seat = 10000
}

tier "campus" {
  name           = "Campus"
  min_seats      = 200
  price_per_seat = 8000
}

cadence "monthly" {
  months   = 1
  discount = "0"
}

cadence "annual" {
  months   = 12
  discount = "0.15"
}

alias "basic" {
  target = "starter"
}
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cat, err := Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)

	require.Len(t, cat.Tiers(), 3)
	require.Len(t, cat.Cadences(), 2)

	starter, ok := cat.Tier("starter")
	require.True(t, ok)
	assert.Equal(t, "Starter", starter.Name)
	assert.Equal(t, 1, starter.MinSeats)
	max, bounded := starter.MaxSeats.Max()
	require.True(t, bounded)
	assert.Equal(t, 49, max)
	assert.Equal(t, int64(12000), starter.PricePerSeat)
	assert.Equal(t, []string{"core"}, starter.Features)

	growth, _ := cat.Tier("growth")
	assert.Equal(t, "Most popular", growth.Badge)

	campus, _ := cat.Tier("campus")
	assert.True(t, campus.MaxSeats.Unbounded(), "omitted max_seats means unbounded")

	annual, ok := cat.Cadence("annual")
	require.True(t, ok)
	assert.Equal(t, 12, annual.Months)
	assert.Equal(t, "0.15", annual.Discount.String())

	assert.Equal(t, "starter", cat.ResolveAlias("basic"))
}

func TestLoadRejectsBrokenCatalog(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "tiers out of order",
			content: `
tier "big" {
  name           = "Big"
  min_seats      = 50
  price_per_seat = 100
}
tier "small" {
  name           = "Small"
  min_seats      = 1
  price_per_seat = 100
}
cadence "monthly" {
  months   = 1
  discount = "0"
}
`,
		},
		{
			name: "bad discount string",
			content: `
tier "only" {
  name           = "Only"
  min_seats      = 1
  price_per_seat = 100
}
cadence "monthly" {
  months   = 1
  discount = "lots"
}
`,
		},
		{
			name:    "not hcl at all",
			content: `{"tiers": []}`,
		},
		{
			name: "missing required attribute",
			content: `
tier "only" {
  name = "Only"
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}
