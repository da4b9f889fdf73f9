package match

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/performer-tools/cli/internal/domain"
)

func namesSet(names ...string) domain.CandidateSet {
	candidates := make([]domain.Candidate, len(names))
	for i, n := range names {
		candidates[i] = domain.Candidate{Name: n, FullPath: filepath.Join("/roots/a", n)}
	}
	return domain.NewCandidateSet(candidates, false)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		display string
		want    int
	}{
		{"exact", "alice", "alice", 100},
		{"case-insensitive equal", "Alice", "alice", 90},
		{"substring", "alic", "alice", 79},
		{"longer substring target scores lower", "alic", "alicia", 78},
		{"subsequence", "ace", "alice", 48},
		{"no shared characters", "zzz", "alice", 0},
		{"empty query", "", "alice", 0},
		{"empty display", "alice", "", 0},
		{"very long target stays a hit", "a", strings.Repeat("abcdefghijklmnopqrstuvwxyz", 4), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Score(tt.query, tt.display))
		})
	}
}

func TestChoose_ExactMatchAlwaysWins(t *testing.T) {
	// "alice" is also a substring of "alice two"; exact input must still
	// resolve to the exact candidate.
	set := namesSet("alice two", "alice")

	c, ok := New().Choose(set, "alice", 1)
	require.True(t, ok)
	require.Equal(t, "alice", c.Name)
}

func TestChoose_FuzzyPrefersShorterOnTie(t *testing.T) {
	set := namesSet("alice", "alicia", "bob")

	c, ok := New().Choose(set, "alic", 1)
	require.True(t, ok)
	require.Equal(t, "alice", c.Name)
}

func TestChoose_NoSharedCharacters(t *testing.T) {
	set := namesSet("alice", "alicia", "bob")

	_, ok := New().Choose(set, "zzz", 1)
	require.False(t, ok)
}

func TestChoose_EmptySet(t *testing.T) {
	_, ok := New().Choose(domain.NewCandidateSet(nil, false), "alice", 1)
	require.False(t, ok)
}

func TestChoose_BlankQuery(t *testing.T) {
	set := namesSet("alice")

	_, ok := New().Choose(set, "   ", 1)
	require.False(t, ok)
}

func TestChoose_RespectsMinScore(t *testing.T) {
	set := namesSet("alice")

	// "ace" is only a subsequence hit; a high threshold rejects it.
	_, ok := New().Choose(set, "ace", 60)
	require.False(t, ok)

	c, ok := New().Choose(set, "ace", 40)
	require.True(t, ok)
	require.Equal(t, "alice", c.Name)
}

func TestChoose_TieOnScoreAndLengthUsesEnumerationOrder(t *testing.T) {
	// Same name under two roots, presented as bare names: identical
	// display, identical score. The first enumerated wins.
	candidates := []domain.Candidate{
		{Name: "shared", FullPath: "/roots/a/shared"},
		{Name: "shared", FullPath: "/roots/b/shared"},
	}
	set := domain.NewCandidateSet(candidates, false)

	c, ok := New().Choose(set, "shared", 1)
	require.True(t, ok)
	require.Equal(t, "/roots/a/shared", c.FullPath)
}

func TestChoose_FullPathPresentationMatchesAgainstPaths(t *testing.T) {
	candidates := []domain.Candidate{
		{Name: "shared", FullPath: "/roots/a/shared"},
		{Name: "shared", FullPath: "/roots/b/shared"},
	}
	set := domain.NewCandidateSet(candidates, true)

	c, ok := New().Choose(set, "/roots/b/shared", 1)
	require.True(t, ok)
	require.Equal(t, "/roots/b/shared", c.FullPath)
}

func TestRank_OrdersByScoreThenLengthThenIndex(t *testing.T) {
	set := namesSet("alicia", "alice", "malice")

	ranked := Rank(set, "alic")
	require.Len(t, ranked, 3)
	require.Equal(t, "alice", ranked[0].Display)
	require.Equal(t, "alicia", ranked[1].Display)
	require.Equal(t, "malice", ranked[2].Display)
}

func TestRank_OmitsZeroScores(t *testing.T) {
	set := namesSet("alice", "bob")

	ranked := Rank(set, "bob")
	require.Len(t, ranked, 1)
	require.Equal(t, "bob", ranked[0].Display)
}
