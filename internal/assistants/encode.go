package assistants

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength is the number of characters of a query kept before encoding.
const MaxQueryLength = 3000

// TruncationMarker is appended to queries cut at MaxQueryLength.
const TruncationMarker = "…"

// EncodeQuery truncates and percent-encodes a free-text query so it can be
// placed directly into a query-string position. Anything other than a string
// encodes to the empty string.
func EncodeQuery(query any) string {
	s, ok := query.(string)
	if !ok {
		return ""
	}
	return encodeComponent(truncate(s))
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxQueryLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxQueryLength]) + TruncationMarker
}

// encodeComponent escapes everything outside the unreserved set. QueryEscape
// writes spaces as '+', which some assistants keep literally.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
