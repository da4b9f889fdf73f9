package dispatchers

// CommandFunc executes a resolved command.
type CommandFunc func(args []string, flags *ParsedFlags) error

// Resolution is the outcome of dispatching a token list: the matched node,
// the leftover arguments, and the function to run.
type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedFlags
	Execute  CommandFunc
	ExitCode int
}

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

type DispatchNode struct {
	Name     string
	Path     []string
	Summary  string
	Usage    string
	Flags    []FlagDescriptor
	Args     []ArgSpec
	Children map[string]*DispatchNode
	Action   CommandFunc
	Category CommandCategory
}

// NewNode creates a command node and links it under parent. A nil parent
// makes a root node. Path holds the full command path from the root and
// feeds the help and usage renderers.
func NewNode(name string, parent *DispatchNode, summary, usage string, flags []FlagDescriptor, args []ArgSpec, action CommandFunc) *DispatchNode {
	node := &DispatchNode{
		Name:     name,
		Path:     []string{name},
		Summary:  summary,
		Usage:    usage,
		Flags:    flags,
		Args:     args,
		Action:   action,
		Children: make(map[string]*DispatchNode),
	}
	if parent != nil {
		node.Path = append(append([]string{}, parent.Path...), name)
		parent.Children[name] = node
	}
	return node
}
