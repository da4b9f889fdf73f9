package performers

import (
	"strings"

	"github.com/performer-tools/cli/internal/dispatchers"
)

// List prints every enumerated performer directory in root order.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	set, err := enumerate(flags, deps)
	if err != nil {
		return err
	}

	if flags.Has("--count") {
		_, _ = deps.Printf("%d\n", set.Len())
		return nil
	}

	var b strings.Builder
	for _, display := range set.Displays() {
		b.WriteString(display)
		b.WriteString("\n")
	}

	deps.Pager(b.String())
	return nil
}
