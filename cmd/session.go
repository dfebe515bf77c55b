package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/hsmod/hsmod-installer/cmd/internal/locale"
	"github.com/hsmod/hsmod-installer/cmd/internal/logs"
	"github.com/hsmod/hsmod-installer/cmd/internal/prompt"
	"github.com/hsmod/hsmod-installer/cmd/internal/utils"
	"github.com/hsmod/hsmod-installer/payload"
	"github.com/hsmod/hsmod-installer/resource"
)

// session bundles what every command needs: messages, the bundled tree and
// a prompter on the terminal.
type session struct {
	tr       *locale.Translator
	engine   *resource.Engine
	prompter *prompt.Prompter
}

func newSession() *session {
	tr, err := locale.New(viper.GetString("lang"))
	if err != nil {
		logs.Err.Fatalln("Failed to load messages:", err)
	}

	tree, err := payload.Tree()
	if err != nil {
		logs.Err.Fatalln("Failed to read bundled files:", err)
	}
	logs.Debug.Printf("Bundled tree: %d entries, %d bytes\n", tree.Len(), tree.Size())

	return &session{
		tr:       tr,
		engine:   resource.NewEngine(tree, logs.Debug, logs.Warn),
		prompter: prompt.New(os.Stdin, color.Output, tr, marker()),
	}
}

func marker() string { return viper.GetString("marker") }

// discover uses dir when given, then the configured directory, then searches
// the configured roots.
func (s *session) discover(dir string) func() (string, error) {
	return func() (string, error) {
		if dir == "" {
			dir = viper.GetString("dir")
		}
		return utils.GetGameDir(dir, marker(), viper.GetStringSlice("search_paths"), viper.GetInt("max_depth"))
	}
}

func (s *session) resolver(dir string, fixed *resource.Action) *prompt.Resolver {
	return &prompt.Resolver{
		Prompter: s.prompter,
		Discover: s.discover(dir),
		Fixed:    fixed,
	}
}

// report prints the localized outcome and tells whether it was a success.
func (s *session) report(res resource.Result) bool {
	key := res.Action.String()
	if res.Err != nil {
		logs.Debug.Printf("%+v\n", res.Err)
		color.New(color.FgRed).Fprintln(color.Output, s.tr.Get(key+"_failed", res.Err))
		return false
	}
	color.New(color.FgGreen).Fprintln(color.Output, s.tr.Get(key+"_ok"))
	return true
}

// pause keeps a double-clicked console window open until Enter is pressed.
func (s *session) pause() {
	if viper.GetBool("no_pause") {
		return
	}
	s.prompter.WaitForEnter()
}
