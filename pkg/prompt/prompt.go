package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Huh asks through an interactive huh confirm field.
type Huh struct {
	// Accessible switches huh to plain line prompts (screen readers, dumb
	// terminals).
	Accessible bool
}

var _ Confirmer = Huh{}

func (h Huh) Confirm(question string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithAccessible(h.Accessible).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return ok, nil
}

// Auto answers every question with Answer without reading input. The
// question and the chosen answer are echoed to Out when it is set.
type Auto struct {
	Answer bool
	Out    io.Writer
}

var _ Confirmer = Auto{}

func (a Auto) Confirm(question string) (bool, error) {
	if a.Out != nil {
		answer := "no"
		if a.Answer {
			answer = "yes"
		}
		_, _ = fmt.Fprintf(a.Out, "%s [%s]\n", question, answer)
	}
	return a.Answer, nil
}

// Func adapts a plain function into a Confirmer.
type Func func(question string) (bool, error)

func (f Func) Confirm(question string) (bool, error) {
	return f(question)
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
