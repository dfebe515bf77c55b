package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/hsmod/hsmod-installer/cmd/internal/locale"
	"github.com/hsmod/hsmod-installer/cmd/internal/utils"
	"github.com/hsmod/hsmod-installer/resource"
)

var (
	question = color.New(color.FgCyan, color.Bold)
	choice   = color.New(color.FgGreen)
	problem  = color.New(color.FgRed)
)

// Prompter asks the user for a game directory and an action on a line based
// terminal.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	tr     *locale.Translator
	marker string
}

func New(in io.Reader, out io.Writer, tr *locale.Translator, marker string) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, tr: tr, marker: marker}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}

// Directory keeps asking until the answer is a directory holding the marker
// executable. The path of the executable itself is accepted too.
func (p *Prompter) Directory() (string, error) {
	for {
		question.Fprintf(p.out, "%s: ", p.tr.Get("prompt_dir"))
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		dir := utils.NormalizeGameDir(line, p.marker)
		if utils.IsGameDir(dir, p.marker) {
			return dir, nil
		}
		problem.Fprintln(p.out, p.tr.Get("invalid_dir"))
	}
}

var actions = []resource.Action{resource.ActionInstall, resource.ActionUninstall}

// Action shows a numbered menu. An empty answer, or end of input, picks
// install.
func (p *Prompter) Action() (resource.Action, error) {
	question.Fprintln(p.out, p.tr.Get("prompt_action"))
	for i, a := range actions {
		choice.Fprintf(p.out, "  %d) ", i+1)
		fmt.Fprintln(p.out, p.Label(a))
	}
	for {
		fmt.Fprint(p.out, p.tr.Get("prompt_choice", 1))
		line, err := p.readLine()
		if err == io.EOF {
			return actions[0], nil
		}
		if err != nil {
			return 0, err
		}
		if a, ok := p.parseChoice(line); ok {
			return a, nil
		}
	}
}

// parseChoice understands menu numbers, localized labels and action names.
func (p *Prompter) parseChoice(line string) (resource.Action, bool) {
	if line == "" {
		return actions[0], true
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n >= 1 && n <= len(actions) {
			return actions[n-1], true
		}
		return 0, false
	}
	for _, a := range actions {
		if strings.EqualFold(line, p.Label(a)) {
			return a, true
		}
	}
	a, err := resource.ParseAction(line)
	return a, err == nil
}

// Label is the localized menu text for a.
func (p *Prompter) Label(a resource.Action) string {
	return p.tr.Get("action_" + a.String())
}

// WaitForEnter blocks until one line (or end of input) has been read.
func (p *Prompter) WaitForEnter() {
	fmt.Fprintln(p.out, p.tr.Get("press_enter"))
	_, _ = p.readLine()
}
