package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExactMatch(t *testing.T) {
	members := []string{"danielle", "josé", "jean junior"}

	for _, entry := range []string{"josé", "JOSE", "José", "  jose "} {
		t.Run(entry, func(t *testing.T) {
			name, ok := Resolve(entry, members)
			require.True(t, ok)
			assert.Equal(t, "josé", name)
		})
	}
}

func TestResolveExactWinsOverFuzzy(t *testing.T) {
	idx := NewIndex([]string{"jeremie darlick", "jeremie"})

	m, ok := idx.Resolve("Jérémie")
	require.True(t, ok)
	assert.Equal(t, "jeremie", m.Name)
	assert.True(t, m.Exact)
	assert.Equal(t, 1.0, m.Score)
}

func TestResolveFuzzyMatch(t *testing.T) {
	idx := NewIndex([]string{"Danielle", "Camille"})

	m, ok := idx.Resolve("camile")
	require.True(t, ok)
	assert.Equal(t, "Camille", m.Name)
	assert.False(t, m.Exact)
	assert.InDelta(t, 12.0/13.0, m.Score, 1e-9)
}

func TestResolveThresholdBoundary(t *testing.T) {
	idx := NewIndex([]string{"abcdefghij"})

	t.Run("exactly at cutoff is accepted", func(t *testing.T) {
		// 7 of 10 characters shared in one block: 2*7/20 = 0.7
		assert.Equal(t, MatchThreshold, Similarity("abcdefgxyz", "abcdefghij"))
		m, ok := idx.Resolve("abcdefgxyz")
		require.True(t, ok)
		assert.Equal(t, "abcdefghij", m.Name)
	})

	t.Run("below cutoff is rejected", func(t *testing.T) {
		assert.Less(t, Similarity("abcdefxyzw", "abcdefghij"), MatchThreshold)
		_, ok := idx.Resolve("abcdefxyzw")
		assert.False(t, ok)
	})
}

func TestResolveTieIsDeterministic(t *testing.T) {
	idx := NewIndex([]string{"abcx", "abcy"})

	first, ok := idx.Resolve("abcz")
	require.True(t, ok)
	assert.Equal(t, "abcy", first.Name)
	assert.InDelta(t, 0.75, first.Score, 1e-9)

	for i := 0; i < 5; i++ {
		again, _ := idx.Resolve("abcz")
		assert.Equal(t, first, again)
	}
}

func TestResolveNoCandidate(t *testing.T) {
	_, ok := Resolve("Unknown Person", []string{"danielle", "camille"})
	assert.False(t, ok)

	_, ok = Resolve("danielle", nil)
	assert.False(t, ok)
}

func TestNewIndexFirstSeededWins(t *testing.T) {
	idx := NewIndex([]string{"José", "jose", "JOSÉ"})

	assert.Equal(t, 1, idx.Len())
	m, ok := idx.Resolve("jose")
	require.True(t, ok)
	assert.Equal(t, "José", m.Name)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("José", "jose"))
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
}
