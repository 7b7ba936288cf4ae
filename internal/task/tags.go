package task

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SplitTags parses a free-text tag entry into individual labels.
// Both commas and semicolons act as separators; blank labels are dropped.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})
	var tags []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return NormalizeTags(tags)
}

// NormalizeTags canonicalizes a tag list into set form: each tag is NFC
// normalized and trimmed, duplicates are removed, and the result is sorted
// case-insensitively so that equal sets compare equal.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, tag := range tags {
		tag = norm.NFC.String(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i]), strings.ToLower(out[j])
		if li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})
	return out
}

// JoinTags renders a tag set as a single cell value for CSV export.
// The fixed delimiter is a semicolon; SplitTags reverses it.
func JoinTags(tags []string) string {
	return strings.Join(tags, ";")
}
