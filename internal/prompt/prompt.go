package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gostack-labs/gostack/internal/project"
)

// Questions asked for each feature flag, in order.
const (
	questionName     = "enter the app name: "
	questionSessions = "would you like to use gorilla sessions? [y/n]: "
	questionTurso    = "would you like to use turso? [y/n]: "
	questionHTMX     = "would you like to use htmx? [y/n]: "
	questionTailwind = "would you like to use tailwind? [y/n]: "
	questionAir      = "would you like to use air? [y/n]: "
)

// Preset holds feature answers known before prompting. Nil fields are
// asked as usual.
type Preset struct {
	Sessions *bool
	Turso    *bool
	HTMX     *bool
	Tailwind *bool
	Air      *bool
}

// Collect asks for the app name and every feature flag on w, reading the
// answers from r. Invalid answers are asked again. Input that ends before
// every question is answered returns io.ErrUnexpectedEOF.
func Collect(r io.Reader, w io.Writer) (project.Config, error) {
	return CollectPreset(r, w, Preset{})
}

// CollectPreset is Collect without the questions already answered by preset.
func CollectPreset(r io.Reader, w io.Writer, preset Preset) (project.Config, error) {
	reader := bufio.NewReader(r)

	name, err := askName(reader, w)
	if err != nil {
		return project.Config{}, err
	}

	b := project.NewBuilder().AppName(name)
	flags := []struct {
		question string
		known    *bool
		set      func(bool) *project.Builder
	}{
		{questionSessions, preset.Sessions, b.Sessions},
		{questionTurso, preset.Turso, b.Turso},
		{questionHTMX, preset.HTMX, b.HTMX},
		{questionTailwind, preset.Tailwind, b.Tailwind},
		{questionAir, preset.Air, b.Air},
	}
	for _, f := range flags {
		if f.known != nil {
			f.set(*f.known)
			continue
		}
		yes, err := askYesNo(reader, w, f.question)
		if err != nil {
			return project.Config{}, err
		}
		f.set(yes)
	}

	return b.Build(), nil
}

// askName re-prompts until the answer is a usable app name.
func askName(reader *bufio.Reader, w io.Writer) (string, error) {
	for {
		fmt.Fprint(w, questionName)
		line, err := readLine(reader)
		if err != nil {
			return "", fmt.Errorf("reading app name: %w", err)
		}
		name := strings.TrimSpace(line)
		switch {
		case name == "":
			continue
		case !project.ValidAppName(name):
			fmt.Fprintln(w, "  the app name must start with a letter")
			continue
		}
		return name, nil
	}
}

// askYesNo re-prompts until the answer is exactly "y" or "n".
func askYesNo(reader *bufio.Reader, w io.Writer, question string) (bool, error) {
	for {
		fmt.Fprint(w, question)
		line, err := readLine(reader)
		if err != nil {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		if yes, ok := yesNo(line); ok {
			return yes, nil
		}
	}
}

// yesNo maps the exact tokens "y" and "n" to a flag value.
func yesNo(answer string) (bool, bool) {
	switch answer {
	case "y":
		return true, true
	case "n":
		return false, true
	default:
		return false, false
	}
}

// readLine returns the next line without its terminator. A final line with
// no terminator is returned as is; end of input with nothing read is
// io.ErrUnexpectedEOF.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
