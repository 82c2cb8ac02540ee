package relcut

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirmer resolves a value interactively or otherwise: shown a prompt and
// a default, it returns the value to use.
type Confirmer interface {
	Confirm(prompt, def string) (string, error)
}

// TerminalConfirmer prompts on Out and reads a line from In. An empty answer
// selects the default. When In is not an interactive terminal the default is
// used without prompting, so piped or redirected runs never block.
type TerminalConfirmer struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalConfirmer returns a confirmer bound to stdin/stdout.
func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{In: os.Stdin, Out: os.Stdout}
}

func (c *TerminalConfirmer) Confirm(prompt, def string) (string, error) {
	if !term.IsTerminal(int(c.In.Fd())) {
		if def == "" {
			return "", fmt.Errorf("no terminal available and no default for %q", prompt)
		}
		return def, nil
	}
	if def != "" {
		fmt.Fprintf(c.Out, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(c.Out, "%s: ", prompt)
	}
	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading confirmation: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		if def == "" {
			return "", fmt.Errorf("no value provided for %q", prompt)
		}
		return def, nil
	}
	return answer, nil
}

// AutoConfirmer accepts every default without prompting. It is the
// non-interactive implementation used for batch runs and tests; a prompt
// with no default is an error.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(prompt, def string) (string, error) {
	if def == "" {
		return "", fmt.Errorf("non-interactive run has no default for %q", prompt)
	}
	return def, nil
}
