package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategorySelect        // Core selection commands: pick, list
	CategoryRoots         // Managing performer root directories
	CategoryConfig        // Configuration
	CategoryTheme         // Theme customization
	CategoryInfo          // Informational: version
)

func (c CommandCategory) String() string {
	switch c {
	case CategorySelect:
		return "select performers"
	case CategoryRoots:
		return "manage root directories"
	case CategoryConfig:
		return "configure psel"
	case CategoryTheme:
		return "customize appearance"
	case CategoryInfo:
		return "information"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategorySelect,
	CategoryRoots,
	CategoryConfig,
	CategoryTheme,
	CategoryInfo,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
