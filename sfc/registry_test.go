package sfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThibHlln/eflowcalc/sfc"
)

// TestCatalogPopulation pins the catalog size and the family counts.
func TestCatalogPopulation(t *testing.T) {
	all := sfc.All()
	require.Len(t, all, 159)

	assert.Len(t, sfc.ByFamily(sfc.Magnitude), 90)
	assert.Len(t, sfc.ByFamily(sfc.Frequency), 13)
	assert.Len(t, sfc.ByFamily(sfc.Duration), 41)
	assert.Len(t, sfc.ByFamily(sfc.Timing), 6)
	assert.Len(t, sfc.ByFamily(sfc.RateOfChange), 9)
}

func TestCatalogEntries(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range sfc.All() {
		assert.False(t, seen[c.Code], "duplicate code %s", c.Code)
		seen[c.Code] = true
		assert.NotNil(t, c.Fn, "%s has no computation", c.Code)
		assert.NotEmpty(t, c.Desc, "%s has no description", c.Code)

		got, ok := sfc.Lookup(c.Code)
		require.True(t, ok)
		assert.Equal(t, c.Code, got.Code)
	}
}

func TestLookup(t *testing.T) {
	c, ok := sfc.Lookup("ma41")
	require.True(t, ok)
	assert.Equal(t, sfc.Magnitude, c.Family)
	assert.Equal(t, sfc.AverageFlow, c.Level)

	c, ok = sfc.Lookup("fl1")
	require.True(t, ok)
	assert.Equal(t, sfc.Frequency, c.Family)
	assert.Equal(t, sfc.LowFlow, c.Level)

	c, ok = sfc.Lookup("th2")
	require.True(t, ok)
	assert.Equal(t, sfc.Timing, c.Family)
	assert.Equal(t, sfc.HighFlow, c.Level)

	_, ok = sfc.Lookup("xy99")
	assert.False(t, ok)
	_, ok = sfc.Lookup("MA1")
	assert.False(t, ok, "codes are lower case")
}

func TestCodesOrder(t *testing.T) {
	codes := sfc.Codes()
	require.Len(t, codes, 159)
	assert.Equal(t, "ma1", codes[0])
	assert.Equal(t, "ra9", codes[158])
}

func TestFamilyStrings(t *testing.T) {
	assert.Equal(t, "magnitude", sfc.Magnitude.String())
	assert.Equal(t, "rate of change", sfc.RateOfChange.String())
	assert.Equal(t, "unknown", sfc.Family(0).String())

	assert.Equal(t, "low", sfc.LowFlow.String())
	assert.Equal(t, "average", sfc.AverageFlow.String())
	assert.Equal(t, "high", sfc.HighFlow.String())
	assert.Equal(t, "unknown", sfc.FlowLevel(0).String())
}
