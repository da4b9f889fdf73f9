package performers

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/performer-tools/cli/internal/domain"
	"github.com/performer-tools/cli/internal/match"
	"github.com/performer-tools/cli/internal/ui/style"
)

// maxVisibleResults bounds the suggestion list under the prompt.
const maxVisibleResults = 10

// runPrompt opens the interactive prompt and blocks until the user picks a
// candidate or cancels. The second return is false on cancel.
func runPrompt(set domain.CandidateSet, label string, minScore int) (domain.Candidate, bool, error) {
	input := textinput.New()
	input.Prompt = label
	input.CharLimit = maxQueryLen
	input.Validate = func(s string) error {
		for _, r := range s {
			if !allowedQueryRune(r) {
				return errors.New("character not allowed")
			}
		}
		return nil
	}
	input.Focus()

	m := promptModel{
		set:      set,
		minScore: minScore,
		input:    input,
	}
	m.refresh()

	p := tea.NewProgram(m)

	final, err := p.Run()
	if err != nil {
		return domain.Candidate{}, false, err
	}

	fm := final.(promptModel)
	if fm.cancelled || !fm.ok {
		return domain.Candidate{}, false, nil
	}
	return fm.chosen, true, nil
}

//
// Model
//

type promptModel struct {
	set      domain.CandidateSet
	minScore int
	input    textinput.Model

	results []match.Result
	cursor  int

	chosen    domain.Candidate
	ok        bool
	cancelled bool
	flash     string
}

// refresh re-ranks the candidate set against the current input. An empty
// query shows everything in enumeration order.
func (m *promptModel) refresh() {
	query := m.input.Value()

	if query == "" {
		m.results = m.results[:0]
		for i := 0; i < m.set.Len(); i++ {
			c := m.set.At(i)
			m.results = append(m.results, match.Result{
				Candidate: c,
				Display:   c.Display(m.set.FullPath()),
			})
		}
	} else {
		ranked := match.Rank(m.set, query)
		m.results = m.results[:0]
		for _, r := range ranked {
			if r.Score >= m.minScore {
				m.results = append(m.results, r)
			}
		}
	}

	if m.cursor >= len(m.results) {
		m.cursor = 0
	}
}

//
// Bubble Tea lifecycle
//

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		m.flash = ""

		switch msg.Type {

		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyUp, tea.KeyCtrlP:
			if len(m.results) > 0 {
				if m.cursor > 0 {
					m.cursor--
				} else {
					m.cursor = len(m.results) - 1
				}
			}
			return m, nil

		case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
			if len(m.results) > 0 {
				if m.cursor < len(m.results)-1 {
					m.cursor++
				} else {
					m.cursor = 0
				}
			}
			return m, nil

		case tea.KeyEnter:
			if len(m.results) == 0 {
				// Nothing matched: stay in the prompt.
				m.flash = "no match"
				return m, nil
			}
			m.chosen = m.results[m.cursor].Candidate
			m.ok = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m promptModel) View() string {
	cfg := style.GetColors()
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Muted))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.Highlight))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Warning))

	s := m.input.View() + "\n"

	if m.flash != "" {
		s += warnStyle.Render("  "+m.flash) + "\n"
	} else if m.input.Err != nil {
		s += warnStyle.Render("  "+m.input.Err.Error()) + "\n"
	}

	visible := m.results
	offset := 0

	// Keep the cursor line inside the window.
	if len(visible) > maxVisibleResults {
		if m.cursor >= maxVisibleResults {
			offset = m.cursor - maxVisibleResults + 1
		}
		end := offset + maxVisibleResults
		if end > len(visible) {
			end = len(visible)
		}
		visible = visible[offset:end]
	}

	for i, r := range visible {
		if offset+i == m.cursor {
			s += activeStyle.Render("> "+r.Display) + "\n"
		} else {
			s += mutedStyle.Render("  "+r.Display) + "\n"
		}
	}

	if len(m.results) > maxVisibleResults {
		s += mutedStyle.Render(fmt.Sprintf("  … %d more", len(m.results)-maxVisibleResults)) + "\n"
	}

	s += mutedStyle.Render("↑↓ navigate · Enter select · Esc cancel") + "\n"

	return s
}
