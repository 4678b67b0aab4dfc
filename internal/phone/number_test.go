package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexTLDR/phonenorm/internal/country"
)

var (
	france      = country.Default().MustByName("FRANCE")
	afghanistan = country.Default().MustByName("AFGHANISTAN")
	albania     = country.Default().MustByName("ALBANIA")
)

func mustNew(t *testing.T, c *country.Country, local string) *Number {
	t.Helper()
	n, err := New(c, local)
	require.NoError(t, err)
	return n
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		country  *country.Country
		input    string
		expected string
	}{
		{name: "plain digits", country: france, input: "123456789", expected: "123456789"},
		{name: "letters are upper-cased", country: france, input: "ab0def", expected: "AB0DEF"},
		{name: "national prefix is stripped", country: france, input: "01 23 45 67 89", expected: "123456789"},
		{name: "national prefix is stripped once", country: france, input: "001 23 45 67 89", expected: "0123456789"},
		{name: "prefix alone is kept", country: france, input: "0", expected: "0"},
		{name: "separators are removed", country: france, input: "(3) 84-58.34/18", expected: "384583418"},
		{name: "non ascii letters are removed", country: france, input: "3é8ß4", expected: "384"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(tt.country, tt.input)
			require.NoError(t, err)
			assert.Same(t, tt.country, n.Country())
			assert.Equal(t, tt.expected, n.LocalNumber())
		})
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name    string
		country *country.Country
		input   string
	}{
		{name: "nil country", country: nil, input: "123"},
		{name: "empty number", country: france, input: ""},
		{name: "only separators", country: france, input: "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.country, tt.input)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	for _, input := range []string{"123456789", "0123456789", "AB0DEF", "1"} {
		first := mustNew(t, france, input)
		second := mustNew(t, france, first.LocalNumber())
		assert.Equal(t, first.LocalNumber(), second.LocalNumber(), input)
	}
}

func TestSetters(t *testing.T) {
	n := mustNew(t, france, "123456789")

	require.NoError(t, n.SetCountry(albania))
	assert.Same(t, albania, n.Country())
	assert.Equal(t, "123456789", n.LocalNumber())
	assert.ErrorIs(t, n.SetCountry(nil), ErrInvalidArgument)
	assert.Same(t, albania, n.Country())

	require.NoError(t, n.SetCountry(france))
	require.NoError(t, n.SetLocalNumber("01 23 45 67 89"))
	assert.Equal(t, "123456789", n.LocalNumber())
	require.NoError(t, n.SetLocalNumber("ab0def"))
	assert.Equal(t, "AB0DEF", n.LocalNumber())

	assert.ErrorIs(t, n.SetLocalNumber(""), ErrInvalidArgument)
	assert.Equal(t, "AB0DEF", n.LocalNumber())
}

func TestEqual(t *testing.T) {
	n := mustNew(t, france, "123456789")

	assert.True(t, n.Equal(mustNew(t, france, "123456789")))
	assert.True(t, mustNew(t, france, "123456789").Equal(n))
	assert.False(t, n.Equal(mustNew(t, afghanistan, "123456789")))
	assert.False(t, n.Equal(mustNew(t, france, "987654321")))
	assert.False(t, n.Equal(nil))

	lower := &Number{country: france, local: "abc"}
	assert.True(t, lower.Equal(mustNew(t, france, "ABC")))
}

func TestCompare(t *testing.T) {
	n := mustNew(t, france, "123456789")

	assert.Positive(t, n.Compare(nil))
	assert.Equal(t, 0, n.Compare(mustNew(t, france, "123456789")))

	other := mustNew(t, afghanistan, "123456789")
	assert.Positive(t, n.Compare(other))
	assert.Negative(t, other.Compare(n))

	later := mustNew(t, france, "987654321")
	assert.Negative(t, n.Compare(later))
	assert.Positive(t, later.Compare(n))

	lower := &Number{country: france, local: "abc"}
	assert.Equal(t, 0, lower.Compare(mustNew(t, france, "ABC")))
}
