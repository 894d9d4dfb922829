package parse

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// Input collects quick-create lines from arguments, a piped stdin, or an
// interactive prompt.
type Input struct {
	Args        []string
	Interactive bool
	In          io.Reader
	// Validate is run on every prompted line; nil accepts everything.
	Validate func(string) error
}

// ErrNoInput is returned when no command was given and stdin is a terminal.
var ErrNoInput = errors.New("no quick-create command given")

// Lines returns the commands to run. Arguments form a single command.
func (i *Input) Lines() ([]string, error) {
	switch {
	case i.Interactive:
		return i.prompt()
	case len(i.Args) > 0:
		return []string{strings.Join(i.Args, " ")}, nil
	case i.piped():
		return scanLines(i.in())
	}
	return nil, ErrNoInput
}

func (i *Input) in() io.Reader {
	if i.In == nil {
		return os.Stdin
	}
	return i.In
}

// piped reports whether stdin carries data rather than a terminal.
func (i *Input) piped() bool {
	f, ok := i.in().(*os.File)
	if !ok {
		return i.In != nil
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func (i *Input) prompt() ([]string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}

	validate := func(input string) error {
		if strings.TrimSpace(input) == "" || i.Validate == nil {
			return nil
		}
		return i.Validate(input)
	}

	var lines []string
	for {
		prompt := promptui.Prompt{
			Label:     "event (empty to finish)",
			Templates: templates,
			Validate:  validate,
		}
		result, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		result = strings.TrimSpace(result)
		if result == "" {
			return lines, nil
		}
		lines = append(lines, result)
	}
}
