package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/performer-tools/cli/internal/actions"
	"github.com/performer-tools/cli/internal/app"
	"github.com/performer-tools/cli/internal/cli"
	"github.com/performer-tools/cli/internal/dispatchers"
	"github.com/performer-tools/cli/internal/domain"
	"github.com/performer-tools/cli/internal/ui"
	"github.com/performer-tools/cli/internal/usage"
	"golang.org/x/term"
)

// valueFlags take a value, so "--flag value" is normalized to "--flag=value".
var valueFlags = map[string]bool{
	"--roots":     true,
	"--min-score": true,
	"--pager":     true,
}

func main() {
	rawFlags, commands := extractFlagsAndCommands(os.Args[1:])
	flags := dispatchers.NewParsedFlags(rawFlags)

	opts := app.DefaultOptions()
	// Enable styling if stdout is a terminal and --no-color is not set
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	opts.PagerDisabled = flags.Has("--no-pager")
	opts.PagerOverride = flags.String("--pager", "")

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer func() { _ = app.Close(application) }()

	if flags.Has("--no-pager") {
		ui.DisablePager()
	}
	if pager := flags.String("--pager", ""); pager != "" {
		ui.SetPager(pager)
	}

	if len(commands) == 0 && (flags.Has("--version") || flags.Has("-v")) {
		_ = actions.ShowVersion(nil, flags)
		return
	}

	root := cli.BuildTree()

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		fail(application, err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		fail(application, err)
	}

	// Exit with non-zero code if resolution requests it (e.g., psel with no args)
	if res.ExitCode != 0 {
		_ = app.Close(application)
		os.Exit(res.ExitCode)
	}
}

// fail prints err and exits with its usage exit code. NoSelection comes
// back as exit code 3 so scripts can tell "nothing picked" from failure.
func fail(application *domain.Application, err error) {
	_ = app.Close(application)
	fmt.Fprintln(os.Stderr, err.Error())
	if ue, ok := err.(*usage.Error); ok {
		os.Exit(ue.GetExitCode())
	}
	os.Exit(1)
}

// extractFlagsAndCommands splits argv into flags and command tokens.
// Value flags given as "--flag value" are folded into "--flag=value".
func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]

		if len(a) == 0 || a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		name := a
		if idx := strings.Index(a, "="); idx != -1 {
			name = a[:idx]
		}

		if valueFlags[name] && name == a && i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
			flags = append(flags, name+"="+args[i+1])
			i++
			continue
		}

		flags = append(flags, a)
	}

	return flags, commands
}
