package config

import (
	"github.com/performer-tools/cli/internal/dispatchers"
	"github.com/performer-tools/cli/internal/domain"
	"github.com/performer-tools/cli/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()

	for i, section := range domain.ConfigSections() {
		keys := visibleKeys(bySection[section], configMap)
		if len(keys) == 0 {
			continue
		}

		if i > 0 {
			_, _ = deps.Println("")
		}
		_, _ = deps.Println(style.Header(section))

		for _, key := range keys {
			_, _ = deps.Printf("%s=%s\n", key.Name, configMap[key.Name])
		}
	}

	return nil
}

// visibleKeys filters out hidden keys and keys with nothing to show.
func visibleKeys(keys []domain.ConfigKey, configMap map[string]string) []domain.ConfigKey {
	var out []domain.ConfigKey
	for _, key := range keys {
		if key.HideIfEmpty && configMap[key.Name] == "" {
			continue
		}
		if _, exists := configMap[key.Name]; !exists {
			continue
		}
		out = append(out, key)
	}
	return out
}
