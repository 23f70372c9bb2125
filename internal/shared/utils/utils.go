package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	firstSentenceRe = regexp.MustCompile(`^(.+?[.!?])(\s|$)`)
)

// FirstSentence extracts the first sentence of a blurb, falling back to
// a 140-character cut when no sentence boundary is found.
func FirstSentence(text string) string {
	t := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if t == "" {
		return ""
	}
	if m := firstSentenceRe.FindStringSubmatch(t); m != nil {
		return m[1]
	}
	runes := []rune(t)
	if len(runes) > 140 {
		return string(runes[:140]) + "…"
	}
	return t
}

// FormatCount pluralizes a review count for display.
func FormatCount(n int) string {
	if n == 1 {
		return "1 review"
	}
	return strconv.Itoa(n) + " reviews"
}

// Uniq returns the distinct values of in, preserving first-seen order.
func Uniq(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
