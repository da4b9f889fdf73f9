package theme

import (
	"fmt"

	"github.com/performer-tools/cli/internal/config"
	"github.com/performer-tools/cli/internal/ui/style"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Set        func([]string, string, string) ([]string, bool)
	Get        func(string) (string, bool)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	ThemeNames []string
	Themes     map[string]style.ColorConfig
}

func DefaultDeps() Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Set:        config.Set,
		Get:        config.Get,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		ThemeNames: style.ThemeNames, // All variants (dark/light) explicitly
		Themes:     style.Themes,
	}
}
