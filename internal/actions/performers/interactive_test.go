package performers

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newTestPrompt(t *testing.T, names ...string) promptModel {
	t.Helper()

	input := textinput.New()
	input.Prompt = "Performer: "
	input.CharLimit = maxQueryLen
	input.Focus()

	m := promptModel{
		set:      candidateSet(false, names...),
		minScore: 1,
		input:    input,
	}
	m.refresh()
	return m
}

func typeRunes(m promptModel, s string) promptModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(promptModel)
	}
	return m
}

func TestPrompt_EmptyQueryShowsAllCandidates(t *testing.T) {
	m := newTestPrompt(t, "carol", "alice", "bob")

	require.Len(t, m.results, 3)
	require.Equal(t, "carol", m.results[0].Display)
	require.Equal(t, "alice", m.results[1].Display)
	require.Equal(t, "bob", m.results[2].Display)
}

func TestPrompt_TypingReranksSuggestions(t *testing.T) {
	m := newTestPrompt(t, "alicia", "bob", "alice")

	m = typeRunes(m, "alic")

	require.Len(t, m.results, 2)
	require.Equal(t, "alice", m.results[0].Display)
	require.Equal(t, "alicia", m.results[1].Display)
}

func TestPrompt_EnterSelectsHighlighted(t *testing.T) {
	m := newTestPrompt(t, "alice", "alicia")

	m = typeRunes(m, "alic")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(promptModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(promptModel)

	require.True(t, m.ok)
	require.Equal(t, "alicia", m.chosen.Name)
}

func TestPrompt_EnterWithNoHitsStaysOpen(t *testing.T) {
	m := newTestPrompt(t, "alice")

	m = typeRunes(m, "zzz")
	require.Empty(t, m.results)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(promptModel)

	require.False(t, m.ok)
	require.False(t, m.cancelled)
	require.Equal(t, "no match", m.flash)
}

func TestPrompt_EscapeCancels(t *testing.T) {
	m := newTestPrompt(t, "alice")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(promptModel)

	require.True(t, m.cancelled)
	require.False(t, m.ok)
}

func TestPrompt_MinScoreFiltersSuggestions(t *testing.T) {
	m := newTestPrompt(t, "alice")
	m.minScore = 60

	// Subsequence-only hit scores below 60 and is filtered out.
	m = typeRunes(m, "ace")

	require.Empty(t, m.results)
}

func TestPrompt_CursorWrapsAround(t *testing.T) {
	m := newTestPrompt(t, "alice", "bob")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(promptModel)
	require.Equal(t, 1, m.cursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(promptModel)
	require.Equal(t, 0, m.cursor)
}
