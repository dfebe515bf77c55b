package prompt

import (
	"fmt"

	"github.com/hsmod/hsmod-installer/cmd/internal/logs"
	"github.com/hsmod/hsmod-installer/resource"
)

// Resolver first tries Discover and only prompts for the directory when that
// fails. When Fixed is set the action is not asked for.
type Resolver struct {
	Prompter *Prompter
	Discover func() (string, error)
	Fixed    *resource.Action
}

func (r *Resolver) ResolveTargetDirectory() (string, error) {
	dir, err := "", fmt.Errorf("no discovery configured")
	if r.Discover != nil {
		dir, err = r.Discover()
	}
	if err != nil {
		logs.Debug.Println("Discovery failed:", err)
		dir, err = r.Prompter.Directory()
		if err != nil {
			return "", err
		}
	}
	fmt.Fprintln(r.Prompter.out, r.Prompter.tr.Get("game_dir", dir))
	return dir, nil
}

func (r *Resolver) ResolveAction() (resource.Action, error) {
	if r.Fixed != nil {
		return *r.Fixed, nil
	}
	return r.Prompter.Action()
}

var _ resource.Resolver = (*Resolver)(nil)
