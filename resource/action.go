package resource

import (
	"fmt"
	"strings"
)

type Action int

const (
	ActionInstall Action = iota
	ActionUninstall
)

func (a Action) String() string {
	switch a {
	case ActionInstall:
		return "install"
	case ActionUninstall:
		return "uninstall"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction accepts the names produced by String, case-insensitively.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "install":
		return ActionInstall, nil
	case "uninstall":
		return ActionUninstall, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Resolver supplies the two inputs of a run: where to act and what to do.
// Implementations may prompt, search the disk or just return fixed values.
type Resolver interface {
	ResolveTargetDirectory() (string, error)
	ResolveAction() (Action, error)
}

// Perform runs action against root.
func (e *Engine) Perform(root string, action Action) error {
	switch action {
	case ActionInstall:
		return e.Install(root)
	case ActionUninstall:
		return e.Uninstall(root)
	default:
		return fmt.Errorf("unsupported action %v", action)
	}
}

// Result describes a finished run. Err is the engine's error, if any.
type Result struct {
	Dir    string
	Action Action
	Err    error
}

// Run asks r for the target directory, then for the action, then performs
// it. A failing resolver is returned as the error; a failing install or
// uninstall ends up in Result.Err.
func Run(e *Engine, r Resolver) (Result, error) {
	dir, err := r.ResolveTargetDirectory()
	if err != nil {
		return Result{}, err
	}
	action, err := r.ResolveAction()
	if err != nil {
		return Result{Dir: dir}, err
	}
	return Result{Dir: dir, Action: action, Err: e.Perform(dir, action)}, nil
}
