package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latherlab/saponify/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSeedsBuiltins(t *testing.T) {
	s := openTestStore(t)

	ing, ok, err := s.Get("Olive Oil")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 190.0, ing.SAPKoh)
	assert.Equal(t, 80.0, ing.IodineValue)
	assert.Equal(t, 72.0, ing.FattyAcids["oleic"])
}

func TestGetCaseInsensitive(t *testing.T) {
	s := openTestStore(t)

	ing, ok, err := s.Get("coconut oil")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Coconut Oil", ing.Name)
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("unobtainium")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSearchPrefixFirst(t *testing.T) {
	s := openTestStore(t)

	results, err := s.Search("oli", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Olive Oil", results[0].Name)
}

func TestSearchSubstring(t *testing.T) {
	s := openTestStore(t)

	results, err := s.Search("butter", 10)
	require.NoError(t, err)
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	assert.Contains(t, names, "Shea Butter")
	assert.Contains(t, names, "Cocoa Butter")
}

func TestSearchLimit(t *testing.T) {
	s := openTestStore(t)

	results, err := s.Search("", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchNoMatch(t *testing.T) {
	s := openTestStore(t)

	results, err := s.Search("zzzz", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestUpsertInsertAndUpdate(t *testing.T) {
	s := openTestStore(t)

	custom := Ingredient{
		Name: "Babassu Oil", Category: "hard oil", SAPKoh: 245, IodineValue: 15,
		FattyAcids: map[string]float64{"lauric": 50, "myristic": 20},
	}
	require.NoError(t, s.Upsert(custom))

	got, ok, err := s.Get("Babassu Oil")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 245.0, got.SAPKoh)
	assert.Equal(t, model.UnitGram, got.DefaultUnit)

	custom.SAPKoh = 246
	require.NoError(t, s.Upsert(custom))
	got, _, err = s.Get("Babassu Oil")
	require.NoError(t, err)
	assert.Equal(t, 246.0, got.SAPKoh)
}

func TestIngredientWithoutProfileRoundTrips(t *testing.T) {
	s := openTestStore(t)

	ing, ok, err := s.Get("Beeswax")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, ing.FattyAcids)
	assert.Equal(t, model.UnitOunce, ing.DefaultUnit)
}

func TestToOilEntry(t *testing.T) {
	s := openTestStore(t)

	ing, ok, err := s.Get("Castor Oil")
	require.NoError(t, err)
	require.True(t, ok)

	o := ing.ToOilEntry()
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "Castor Oil", o.Name)
	assert.Equal(t, 180.0, o.SAPKoh)
	assert.Equal(t, 90.0, o.FattyAcids["ricinoleic"])
	assert.Equal(t, model.FieldWeight, o.LastEdited)

	// The entry owns its profile map.
	o.FattyAcids["ricinoleic"] = 1
	assert.Equal(t, 90.0, ing.FattyAcids["ricinoleic"])
}
