package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"commas", "school, math", []string{"math", "school"}},
		{"semicolons", "school;math", []string{"math", "school"}},
		{"mixed and padded", " school ;  math,", []string{"math", "school"}},
		{"duplicates", "math,math;math", []string{"math"}},
		{"only separators", ",;,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.input))
		})
	}
}

func TestNormalizeTags_SortsCaseInsensitively(t *testing.T) {
	got := NormalizeTags([]string{"Zoo", "apple", "Banana"})
	assert.Equal(t, []string{"apple", "Banana", "Zoo"}, got)
}

func TestNormalizeTags_NFC(t *testing.T) {
	// "é" as e + combining acute must equal the precomposed form.
	decomposed := "cafe\u0301"
	precomposed := "caf\u00e9"
	got := NormalizeTags([]string{decomposed, precomposed})
	assert.Equal(t, []string{precomposed}, got)
}

func TestJoinTags_RoundTripsThroughSplit(t *testing.T) {
	tags := []string{"math", "school"}
	assert.Equal(t, tags, SplitTags(JoinTags(tags)))
	assert.Equal(t, "math;school", JoinTags(tags))
}
