package roots

import (
	"fmt"
	"path/filepath"

	"github.com/performer-tools/cli/internal/config"
	"github.com/performer-tools/cli/internal/scan"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Set        func([]string, string, string) ([]string, bool)
	Roots      func() []string
	IsDir      func(string) bool
	Abs        func(string) (string, error)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

func DefaultDeps() Deps {
	lister := scan.OSLister{}
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Set:        config.Set,
		Roots:      config.Roots,
		IsDir:      lister.IsDir,
		Abs:        filepath.Abs,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
	}
}

// saveRoots writes the roots list back to the config file.
func saveRoots(deps Deps, roots []string) error {
	lines, err := deps.ReadLines()
	if err != nil {
		return err
	}
	lines, _ = deps.Set(lines, "roots", config.JoinRoots(roots))
	return deps.WriteLines(lines)
}
