package training

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSimilarExactWCAGMatch(t *testing.T) {
	s := NewStore(storePath(t))
	s.Add(Example{OneLiner: "image missing alt text", WCAG: "1.1.1", FullReport: "r"})

	got := s.FindSimilar("photo has no alt text", "1.1.1")

	require.Len(t, got, 1)
	assert.Equal(t, "image missing alt text", got[0].OneLiner)
}

func TestFindSimilarCapsAtThreeInStoreOrder(t *testing.T) {
	s := NewStore(storePath(t))
	for i := 0; i < 5; i++ {
		s.Add(Example{
			ID:       strconv.Itoa(i),
			OneLiner: "example " + strconv.Itoa(i),
			WCAG:     "1.1.1",
		})
	}

	got := s.FindSimilar("anything", "1.1.1")

	require.Len(t, got, 3)
	assert.Equal(t, "0", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
	assert.Equal(t, "2", got[2].ID)
}

func TestFindSimilarLexicalOverlap(t *testing.T) {
	s := NewStore(storePath(t))
	s.Add(Example{OneLiner: "button missing label", WCAG: "4.1.2"})

	// Different WCAG code, but word overlap above the threshold.
	got := s.FindSimilar("missing label button", "1.4.3")

	require.Len(t, got, 1)
}

func TestFindSimilarNoMatches(t *testing.T) {
	s := NewStore(storePath(t))
	s.Add(Example{OneLiner: "video lacks captions", WCAG: "1.2.2"})

	got := s.FindSimilar("completely unrelated words here", "9.9.9")

	assert.Empty(t, got)
}

func TestFindSimilarEmptyStore(t *testing.T) {
	s := NewStore(storePath(t))
	assert.Empty(t, s.FindSimilar("anything", "1.1.1"))
}

func TestFindSimilarEmptyQuery(t *testing.T) {
	s := NewStore(storePath(t))
	s.Add(Example{OneLiner: "video lacks captions", WCAG: "1.2.2"})

	assert.Empty(t, s.FindSimilar("", ""))
}
