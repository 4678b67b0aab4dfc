package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexTLDR/phonenorm/internal/country"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		strict  bool
		country string
		local   string
	}{
		{name: "national", input: "0 3 / 84 / 58 / 34 / 18   ", country: "AFGHANISTAN", local: "384583418"},
		{name: "national strict", input: "0 3 / 84 / 58 / 34 / 18   ", strict: true, country: "AFGHANISTAN", local: "384583418"},
		{name: "exit prefix", input: "00 / 33 / 3 / 84 / 58 / 34 / 18   ", country: "FRANCE", local: "384583418"},
		{name: "exit prefix strict", input: "00 / 33 / 3 / 84 / 58 / 34 / 18   ", strict: true, country: "FRANCE", local: "384583418"},
		{name: "plus", input: "+ 33 / 3 / 84 / 58 / 34 / 18   ", country: "FRANCE", local: "384583418"},
		{name: "plus strict", input: "+ 33 / 3 / 84 / 58 / 34 / 18   ", strict: true, country: "FRANCE", local: "384583418"},
		{name: "parentheses", input: "+ 33 ( 0 ) / 3 / 84 / 58 / 34 / 18   ", country: "FRANCE", local: "384583418"},
		{name: "parentheses strict", input: "+ 33 ( 0 ) / 3 / 84 / 58 / 34 / 18   ", strict: true, country: "FRANCE", local: "384583418"},
		{name: "square brackets", input: "+ 33 [ 0 ] / 3 / 84 / 58 / 34 / 18   ", country: "FRANCE", local: "384583418"},
		{name: "square brackets strict", input: "+ 33 [ 0 ] / 3 / 84 / 58 / 34 / 18   ", strict: true, country: "FRANCE", local: "384583418"},
		{name: "wrong prefix in parentheses", input: "+ 33 ( 18 ) / 3 / 84 / 58 / 34 / 18   ", country: "FRANCE", local: "384583418"},
		{name: "wrong prefix in square brackets", input: "+ 33 [ 18 ] / 3 / 84 / 58 / 34 / 18   ", country: "FRANCE", local: "384583418"},
		{name: "national prefix after calling code", input: "+33 0 3 84 58 34 18", country: "FRANCE", local: "384583418"},
		{name: "shared calling code", input: "+1 555 0100", country: "AMERICAN_SAMOA", local: "5550100"},
		{name: "shared exit prefix", input: "011 1 684 555 0100", country: "AMERICAN_SAMOA", local: "6845550100"},
		{name: "letters", input: "+33 1 ab cd ef", country: "FRANCE", local: "1ABCDEF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.input, tt.strict)
			require.NoError(t, err)
			assert.Equal(t, tt.country, n.Country().Name())
			assert.Equal(t, tt.local, n.LocalNumber())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		strict bool
	}{
		{name: "empty", input: ""},
		{name: "blank", input: "    "},
		{name: "separators only", input: "--"},
		{name: "plus only", input: "+"},
		{name: "wrong prefix in parentheses", input: "+ 33 ( 18 ) / 3 / 84 / 58 / 34 / 18   ", strict: true},
		{name: "wrong prefix in square brackets", input: "+ 33 [ 18 ] / 3 / 84 / 58 / 34 / 18   ", strict: true},
		{name: "letters in calling code", input: "+ab(0)384583418"},
		{name: "unknown calling code", input: "+999(0)384583418"},
		{name: "bracketed prefix without plus", input: "33 (0) 3 84 58 34 18"},
		{name: "empty bracket", input: "+33 () 3 84 58 34 18"},
		{name: "plus in the middle", input: "03 84 + 58 34 18"},
		{name: "nothing after prefix", input: "0"},
		{name: "nothing after calling code", input: "+33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, tt.strict)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestParseRendering(t *testing.T) {
	n := mustNew(t, france, "384583418")

	for _, text := range []string{n.InternationalForm(), n.InternationalNationalForm(), n.InternationalFormWithExitPrefix()} {
		parsed, err := Parse(text, false)
		require.NoError(t, err, text)
		assert.True(t, n.Equal(parsed), text)
	}

	// A national form resolves to the first country using its prefix.
	first := mustNew(t, afghanistan, "384583418")
	parsed, err := Parse(first.NationalForm(), false)
	require.NoError(t, err)
	assert.True(t, first.Equal(parsed))

	parsed, err = Parse(n.NationalForm(), false)
	require.NoError(t, err)
	assert.Same(t, afghanistan, parsed.Country())
}

const nanpTable = `
countries:
  - name: CANADA
    iso: ca
    calling_code: 1
    exit_prefix: "011"
    national_prefix: "1"
  - name: UNITED_STATES
    iso: us
    calling_code: 1
    exit_prefix: "011"
    national_prefix: "1"
  - name: FRANCE
    iso: fr
    calling_code: 33
`

func TestParserFollowsRegistryOrder(t *testing.T) {
	reg, err := country.Load([]byte(nanpTable))
	require.NoError(t, err)
	p := NewParser(reg)

	for _, text := range []string{"+1 212 555 0100", "+1 (1) 212 555 0100", "011 1 212 555 0100", "1 212 555 0100"} {
		n, err := p.Parse(text, true)
		require.NoError(t, err, text)
		assert.Equal(t, "CANADA", n.Country().Name(), text)
		assert.Equal(t, "2125550100", n.LocalNumber(), text)
	}

	n, err := p.Parse("0033 3 84 58 34 18", false)
	require.NoError(t, err)
	assert.Equal(t, "FRANCE", n.Country().Name())

	_, err = p.Parse("+44 20 7946 0000", false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
