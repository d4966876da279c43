package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "full overlap order independent",
			a:    "button missing label",
			b:    "missing label button",
			want: 1.0,
		},
		{
			name: "no overlap",
			a:    "a b c",
			b:    "d e f",
			want: 0,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			name: "one empty",
			a:    "missing alt text",
			b:    "",
			want: 0,
		},
		{
			name: "case folded",
			a:    "Missing ALT Text",
			b:    "missing alt text",
			want: 1.0,
		},
		{
			name: "partial overlap divided by longer",
			a:    "image missing alt text",
			b:    "photo has no alt text",
			want: 0.4, // "alt" and "text" shared, longer side has 5 words
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityRange(t *testing.T) {
	got := Similarity("focus order is broken on the page", "focus order broken")
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
}
