package performers

import (
	"strconv"
	"strings"

	"github.com/performer-tools/cli/internal/dispatchers"
	"github.com/performer-tools/cli/internal/domain"
	"github.com/performer-tools/cli/internal/ui/style"
	"github.com/performer-tools/cli/internal/usage"
)

//
// Public API
//

// Pick resolves a performer directory. With a query argument it resolves
// non-interactively; without one it opens the interactive prompt.
func Pick(args []string, flags *dispatchers.ParsedFlags) error {
	return pick(args, flags, DefaultDeps())
}

//
// Entrypoint
//

func pick(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	set, err := enumerate(flags, deps)
	if err != nil {
		return err
	}

	minScore, err := resolveMinScore(flags, deps)
	if err != nil {
		return err
	}

	// Query given on the command line: resolve without a prompt.
	if len(args) > 0 {
		query := strings.Join(args, " ")
		if err := validateQuery(query); err != nil {
			return err
		}

		candidate, ok := deps.Choose(set, query, minScore)
		if !ok {
			return usage.NoSelection()
		}

		_, _ = deps.Println(candidate.Display(set.FullPath()))
		return nil
	}

	// No query: fall back to the interactive prompt.
	if !deps.IsTerminal() {
		return usage.MissingArgument("query")
	}

	candidate, ok, err := deps.Prompt(set, deps.PromptLabel(), minScore)
	if err != nil {
		// The prompt failing to run (input closed, terminal torn down)
		// means no selection was made, same as an explicit cancel.
		return usage.NoSelection()
	}
	if !ok {
		return usage.NoSelection()
	}

	_, _ = deps.Println(candidate.Display(set.FullPath()))
	return nil
}

//
// Shared resolution helpers
//

// enumerate builds the candidate set from --roots or the configured roots,
// honoring the display-mode flags.
func enumerate(flags *dispatchers.ParsedFlags, deps Deps) (domain.CandidateSet, error) {
	roots := flags.List("--roots")
	if len(roots) == 0 {
		roots = deps.Roots()
	}
	if len(roots) == 0 {
		return domain.CandidateSet{}, usage.NoCandidates()
	}

	fullPath, err := resolveFullPath(flags, deps)
	if err != nil {
		return domain.CandidateSet{}, err
	}

	set, warnings := deps.Enumerate(roots, fullPath)
	for _, w := range warnings {
		_, _ = deps.Warnf("%s %s: %s\n", style.Warning("warning:"), w.Root, w.Reason)
	}

	if set.IsEmpty() {
		return domain.CandidateSet{}, usage.NoCandidates()
	}

	return set, nil
}

func resolveFullPath(flags *dispatchers.ParsedFlags, deps Deps) (bool, error) {
	full := flags.Has("--full-path")
	nameOnly := flags.Has("--name-only")

	switch {
	case full && nameOnly:
		return false, usage.InvalidFlag("--full-path and --name-only are mutually exclusive")
	case full:
		return true, nil
	case nameOnly:
		return false, nil
	default:
		return deps.ReturnFullPath(), nil
	}
}

func resolveMinScore(flags *dispatchers.ParsedFlags, deps Deps) (int, error) {
	minScore := deps.MinScore()
	if raw := flags.String("--min-score", ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, usage.InvalidFlag("--min-score must be a number")
		}
		minScore = parsed
	}
	if minScore < 1 || minScore > 100 {
		return 0, usage.InvalidFlag("--min-score must be between 1 and 100")
	}
	return minScore, nil
}
