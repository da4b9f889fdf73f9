package performers

import (
	"testing"

	"github.com/performer-tools/cli/internal/dispatchers"
	"github.com/performer-tools/cli/internal/domain"
	"github.com/performer-tools/cli/internal/usage"
	"github.com/stretchr/testify/require"
)

func TestList_PrintsInEnumerationOrder(t *testing.T) {
	out := &fakeOutput{}
	deps := testDeps(out, candidateSet(false, "carol", "alice", "bob"), nil)

	err := list(nil, dispatchers.NewParsedFlags(nil), deps)

	require.NoError(t, err)
	require.Equal(t, "carol\nalice\nbob\n", out.paged)
}

func TestList_FullPathFlag(t *testing.T) {
	out := &fakeOutput{}
	deps := testDeps(out, candidateSet(true, "alice"), nil)

	err := list(nil, dispatchers.NewParsedFlags(nil), deps)

	require.NoError(t, err)
	require.Equal(t, "/roots/a/alice\n", out.paged)
}

func TestList_CountFlag(t *testing.T) {
	out := &fakeOutput{}
	deps := testDeps(out, candidateSet(false, "alice", "bob", "carol"), nil)

	err := list(nil, dispatchers.NewParsedFlags([]string{"--count"}), deps)

	require.NoError(t, err)
	require.Equal(t, []string{"3\n"}, out.lines)
	require.Empty(t, out.paged)
}

func TestList_EmptySet(t *testing.T) {
	out := &fakeOutput{}
	deps := testDeps(out, domain.NewCandidateSet(nil, false), nil)

	err := list(nil, dispatchers.NewParsedFlags(nil), deps)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrNoCandidates, ue.Kind)
}
