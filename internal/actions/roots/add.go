package roots

import (
	"github.com/performer-tools/cli/internal/dispatchers"
	"github.com/performer-tools/cli/internal/ui/style"
	"github.com/performer-tools/cli/internal/usage"
)

// Add appends a directory to the configured roots.
func Add(args []string, flags *dispatchers.ParsedFlags) error {
	return add(args, flags, DefaultDeps())
}

func add(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("path")
	}

	path, err := deps.Abs(args[0])
	if err != nil {
		return usage.InvalidRoot(args[0])
	}

	if !deps.IsDir(path) {
		return usage.InvalidRoot(path)
	}

	roots := deps.Roots()
	for _, root := range roots {
		if root == path {
			_, _ = deps.Printf("root %s is already configured\n", style.Info(path))
			return nil
		}
	}

	roots = append(roots, path)
	if err := saveRoots(deps, roots); err != nil {
		return err
	}

	_, _ = deps.Printf("added root %s\n", style.Success(path))
	return nil
}
