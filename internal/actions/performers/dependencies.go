package performers

import (
	"fmt"
	"os"

	"github.com/performer-tools/cli/internal/config"
	"github.com/performer-tools/cli/internal/domain"
	"github.com/performer-tools/cli/internal/match"
	"github.com/performer-tools/cli/internal/scan"
	"github.com/performer-tools/cli/internal/ui"
	"golang.org/x/term"
)

type Deps struct {
	// Enumerate builds the candidate set from the given roots.
	Enumerate func(roots []string, fullPath bool) (domain.CandidateSet, []domain.RootWarning)

	// Choose resolves a query to at most one candidate.
	Choose func(set domain.CandidateSet, query string, minScore int) (domain.Candidate, bool)

	// Rank returns all scored hits for a query, best first.
	Rank func(set domain.CandidateSet, query string) []match.Result

	// Prompt runs the interactive selection prompt.
	Prompt func(set domain.CandidateSet, label string, minScore int) (domain.Candidate, bool, error)

	Roots          func() []string
	ReturnFullPath func() bool
	MinScore       func() int
	PromptLabel    func() string

	IsTerminal func() bool

	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
	Warnf   func(string, ...any) (int, error)
	Pager   func(string)
}

func DefaultDeps() Deps {
	return Deps{
		Enumerate: func(roots []string, fullPath bool) (domain.CandidateSet, []domain.RootWarning) {
			return scan.NewDefault(fullPath).Enumerate(roots)
		},
		Choose: func(set domain.CandidateSet, query string, minScore int) (domain.Candidate, bool) {
			return match.New().Choose(set, query, minScore)
		},
		Rank:           match.Rank,
		Prompt:         runPrompt,
		Roots:          config.Roots,
		ReturnFullPath: config.ReturnFullPath,
		MinScore:       config.MinScore,
		PromptLabel:    config.PromptLabel,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		Printf:  fmt.Printf,
		Println: fmt.Println,
		Warnf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(os.Stderr, format, a...)
		},
		Pager: ui.Pager,
	}
}
