package roots

import (
	"github.com/performer-tools/cli/internal/dispatchers"
	"github.com/performer-tools/cli/internal/ui/style"
)

// List prints the configured root directories in search order.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	roots := deps.Roots()
	if len(roots) == 0 {
		_, _ = deps.Println("no roots configured")
		_, _ = deps.Println("")
		_, _ = deps.Println("Use 'psel roots add <path>' to add one")
		return nil
	}

	for _, root := range roots {
		if deps.IsDir(root) {
			_, _ = deps.Println(root)
		} else {
			_, _ = deps.Printf("%s %s\n", root, style.Warning("(missing)"))
		}
	}

	return nil
}
