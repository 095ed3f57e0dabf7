package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionTable(t *testing.T) {
	assert.Len(t, Regions, 24)

	codes := map[string]bool{}
	for _, r := range Regions {
		assert.False(t, codes[r.Code], "duplicate code %s", r.Code)
		codes[r.Code] = true
	}
}

func TestResolve(t *testing.T) {
	ri, err := NewRegionIndex(Regions)
	require.NoError(t, err)

	t.Run("case insensitive", func(t *testing.T) {
		for _, name := range []string{"MENDOZA", "mendoza", "Mendoza", "mEnDoZa"} {
			r, ok := ri.Resolve(name)
			require.True(t, ok, name)
			assert.Equal(t, "AR-M", r.Code)
			assert.Equal(t, "Mendoza", r.Name)
		}
	})

	t.Run("accents are part of the name", func(t *testing.T) {
		r, ok := ri.Resolve("NEUQUÉN")
		require.True(t, ok)
		assert.Equal(t, "AR-Q", r.Code)

		_, ok = ri.Resolve("Neuquen")
		assert.False(t, ok)
	})

	t.Run("no partial match", func(t *testing.T) {
		_, ok := ri.Resolve("Santa")
		assert.False(t, ok)
		_, ok = ri.Resolve("")
		assert.False(t, ok)
	})
}

func TestSuggest(t *testing.T) {
	ri, err := NewRegionIndex(Regions)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"missing accent", "Neuquen", "Neuquén"},
		{"typo", "Mendosa", "Mendoza"},
		{"trailing space", "Tucuman ", "Tucumán"},
		{"upper case", "ENTRE RIOS", "Entre Ríos"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, ri.Suggest(tt.query, 3), tt.want)
		})
	}

	t.Run("nothing close", func(t *testing.T) {
		assert.Empty(t, ri.Suggest("Atlantis", 3))
		assert.Empty(t, ri.Suggest("", 3))
	})

	t.Run("limit", func(t *testing.T) {
		assert.LessOrEqual(t, len(ri.Suggest("San Juan", 1)), 1)
	})
}

func TestWithPrefix(t *testing.T) {
	ri, err := NewRegionIndex(Regions)
	require.NoError(t, err)

	names, err := ri.WithPrefix("san")
	require.NoError(t, err)
	assert.Equal(t, []string{"San Juan", "San Luis", "Santa Cruz", "Santa Fe", "Santiago del Estero"}, names)

	names, err = ri.WithPrefix("RÍO")
	require.NoError(t, err)
	assert.Equal(t, []string{"Río Negro"}, names)

	names, err = ri.WithPrefix("zz")
	require.NoError(t, err)
	assert.Empty(t, names)

	names, err = ri.WithPrefix("")
	require.NoError(t, err)
	assert.Equal(t, ri.Names(), names)
}

func TestFoldName(t *testing.T) {
	assert.Equal(t, "cordoba", FoldName(" Córdoba "))
	assert.Equal(t, "entre rios", FoldName("ENTRE RÍOS"))
	assert.Equal(t, "tierra del fuego", FoldName("Tierra del Fuego"))
}
