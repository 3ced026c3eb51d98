package extract

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var (
	// tagRe matches markup tags and comments. A bracket followed by a space
	// or a digit is text, not a tag.
	tagRe = regexp.MustCompile(`<!--[\s\S]*?-->|</?[A-Za-z][^<>]*>`)

	nonDigitRe = regexp.MustCompile(`\D+`)
)

// CleanText is the normalization path for fragments that may still carry
// markup, such as API plainText fields and inner HTML: it removes the strip
// substrings, strips tags, decodes entities, collapses whitespace and trims.
// Tags are stripped before decoding so encoded brackets survive as text.
// Blank results are nil.
func CleanText(raw string, strip ...string) *string {
	s := removeAll(raw, strip)
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return CollapseText(s, strip...)
}

// CollapseText normalizes text that is already decoded, such as DOM text
// content: it removes the strip substrings, turns non-breaking spaces into
// spaces, collapses whitespace and trims. Brackets and ampersands are kept
// as written. Blank results are nil.
func CollapseText(text string, strip ...string) *string {
	s := removeAll(text, strip)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	// Strip again so substrings written with non-breaking spaces still match.
	s = removeAll(s, strip)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return nil
	}
	return &s
}

func removeAll(s string, subs []string) string {
	for _, sub := range subs {
		if sub != "" {
			s = strings.ReplaceAll(s, sub, "")
		}
	}
	return s
}

// CleanString is CollapseText collapsed to a plain string.
func CleanString(text string, strip ...string) string {
	if s := CollapseText(text, strip...); s != nil {
		return *s
	}
	return ""
}

// ExtractInt strips every non-digit and parses the rest: "1,234 votes" is 1234.
func ExtractInt(raw string) *int {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}

// Deref returns *s, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// StringPtr returns nil for blank strings and a pointer to the trimmed value otherwise.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
