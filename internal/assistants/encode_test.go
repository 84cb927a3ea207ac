package assistants

import (
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQueryReservedCharacters(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"a b", "a%20b"},
		{"a&b=c#d", "a%26b%3Dc%23d"},
		{"100%", "100%25"},
		{"1+1", "1%2B1"},
		{"tryska 0.4mm?", "tryska%200.4mm%3F"},
		{"řezání", "%C5%99ez%C3%A1n%C3%AD"},
		{"line\nbreak", "line%0Abreak"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeQuery(tt.in))
		})
	}
}

func TestEncodeQueryRoundTrips(t *testing.T) {
	inputs := []string{
		"Jaký je rozdíl mezi PLA a PETG?",
		"https://www.hotend.cz/produkt?id=12&ref=ai#top",
		"50% off + free shipping; \"quoted\" 'single' <tag>",
		strings.Repeat("x", MaxQueryLength),
		strings.Repeat("ž", MaxQueryLength),
		"emoji 🚁 and tabs\t",
	}
	for _, in := range inputs {
		decoded, err := url.QueryUnescape(EncodeQuery(in))
		require.NoError(t, err)
		assert.Equal(t, in, decoded)
	}
}

func TestEncodeQueryTruncatesLongInput(t *testing.T) {
	for _, n := range []int{MaxQueryLength + 1, MaxQueryLength + 500, 10 * MaxQueryLength} {
		in := strings.Repeat("é", n)
		decoded, err := url.QueryUnescape(EncodeQuery(in))
		require.NoError(t, err)

		assert.Equal(t, MaxQueryLength+1, utf8.RuneCountInString(decoded))
		assert.True(t, strings.HasSuffix(decoded, TruncationMarker))
		assert.Equal(t, strings.Repeat("é", MaxQueryLength), strings.TrimSuffix(decoded, TruncationMarker))
	}
}

func TestEncodeQueryNonString(t *testing.T) {
	for _, in := range []any{nil, 42, 3.14, true, []string{"a"}, map[string]string{"q": "x"}, struct{}{}} {
		assert.Equal(t, "", EncodeQuery(in))
	}
}

func TestEncodeQueryEscapesSubDelimiters(t *testing.T) {
	in := "Really?! (PETG*) it's fine"
	got := EncodeQuery(in)
	assert.Equal(t, "Really%3F%21%20%28PETG%2A%29%20it%27s%20fine", got)

	decoded, err := url.QueryUnescape(got)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}
