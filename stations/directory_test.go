package stations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atmoshq/weatherdesk/errs"
)

func newTestDirectory(t *testing.T) *Directory {
	d, err := NewDirectory(DefaultStations)
	require.NoError(t, err)
	return d
}

func TestResolve_ExactName(t *testing.T) {
	d := newTestDirectory(t)

	st, err := d.Resolve("Doha")
	require.NoError(t, err)
	assert.Equal(t, "411700-99999", st.ID)
	assert.Equal(t, "QA", st.Country)
}

func TestResolve_Alias(t *testing.T) {
	d := newTestDirectory(t)

	st, err := d.Resolve("Kuwait")
	require.NoError(t, err)
	assert.Equal(t, "Kuwait City", st.Name)
	assert.Equal(t, "405820-99999", st.ID)
}

func TestResolve_Normalization(t *testing.T) {
	d := newTestDirectory(t)

	tests := []struct {
		input string
		want  string
	}{
		{"  doha  ", "Doha"},
		{"SÃO PAULO", "São Paulo"},
		{"sao paulo", "São Paulo"},
		{"Zürich", "Zurich"},
		{"nyc", "New York"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			st, err := d.Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, st.Name)
		})
	}
}

func TestResolve_Fuzzy(t *testing.T) {
	d := newTestDirectory(t)

	tests := []struct {
		input string
		want  string
	}{
		{"Kuwai", "Kuwait City"},
		{"Londn", "London"},
		{"Istambul", "Istanbul"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			st, err := d.Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, st.Name)
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.Resolve("Atlantis")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.StationNotFound))

	// Short inputs get no fuzzy budget, so a two-letter typo cannot
	// match anything.
	_, err = d.Resolve("Dx")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.StationNotFound))
}

func TestResolve_EmptyCity(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.Resolve("   ")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.InvalidParameters))
}

func TestResolve_Deterministic(t *testing.T) {
	d := newTestDirectory(t)

	first, err := d.Resolve("Kuwai")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := d.Resolve("Kuwai")
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
	}
}

func TestResolveIn_CountryFilter(t *testing.T) {
	d := newTestDirectory(t)

	st, err := d.ResolveIn("Kuwait", "KW")
	require.NoError(t, err)
	assert.Equal(t, "405820-99999", st.ID)

	_, err = d.ResolveIn("Kuwait", "US")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.StationNotFound))
}

func TestResolve_AmbiguousAlias(t *testing.T) {
	d, err := NewDirectory([]Station{
		{ID: "1", Name: "Springfield Missouri", Country: "US", Aliases: []string{"Springfield"}, Priority: 1},
		{ID: "2", Name: "Springfield Illinois", Country: "US", Aliases: []string{"Springfield"}, Priority: 2},
	})
	require.NoError(t, err)

	_, err = d.Resolve("Springfield")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.AmbiguousCity))
	// The message should help the caller disambiguate.
	assert.Contains(t, err.Error(), "Springfield Missouri")
	assert.Contains(t, err.Error(), "Springfield Illinois")

	// A country-scoped exact alias stays ambiguous, but the canonical
	// names still resolve.
	st, err := d.Resolve("Springfield Missouri")
	require.NoError(t, err)
	assert.Equal(t, "1", st.ID)
}

func TestResolve_FuzzyTieBreaksOnPriority(t *testing.T) {
	d, err := NewDirectory([]Station{
		{ID: "low", Name: "Avalon", Country: "US", Priority: 9},
		{ID: "high", Name: "Avalor", Country: "US", Priority: 1},
	})
	require.NoError(t, err)

	// "avalo" is distance 1 from both; the better-ranked station wins.
	st, err := d.Resolve("Avalo")
	require.NoError(t, err)
	assert.Equal(t, "high", st.ID)
}

func TestNewDirectory_RejectsDuplicates(t *testing.T) {
	_, err := NewDirectory([]Station{
		{ID: "1", Name: "Doha", Country: "QA"},
		{ID: "1", Name: "Other", Country: "QA"},
	})
	assert.Error(t, err)

	_, err = NewDirectory([]Station{
		{ID: "1", Name: "Doha", Country: "QA"},
		{ID: "2", Name: "doha", Country: "QA"},
	})
	assert.Error(t, err)
}
