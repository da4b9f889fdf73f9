package roots

import (
	"fmt"

	"github.com/performer-tools/cli/internal/dispatchers"
	"github.com/performer-tools/cli/internal/ui/style"
	"github.com/performer-tools/cli/internal/usage"
)

// Remove drops a directory from the configured roots.
func Remove(args []string, flags *dispatchers.ParsedFlags) error {
	return remove(args, flags, DefaultDeps())
}

func remove(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("path")
	}

	path, err := deps.Abs(args[0])
	if err != nil {
		path = args[0]
	}

	roots := deps.Roots()
	kept := roots[:0]
	removed := false
	for _, root := range roots {
		// Match either the normalized or the literal form, so stale
		// roots that no longer resolve can still be removed.
		if root == path || root == args[0] {
			removed = true
			continue
		}
		kept = append(kept, root)
	}

	if !removed {
		return fmt.Errorf("root not configured: %s", args[0])
	}

	if err := saveRoots(deps, kept); err != nil {
		return err
	}

	_, _ = deps.Printf("removed root %s\n", style.Success(path))
	return nil
}
