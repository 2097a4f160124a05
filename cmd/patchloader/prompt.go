package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/conn-castle/patch-loader/internal/messages"
	"github.com/conn-castle/patch-loader/internal/terminal"
)

var errNotInteractive = errors.New("not an interactive terminal")

// confirmer asks the user to approve an action after showing its description.
type confirmer interface {
	Confirm(title string, description string) (bool, error)
}

type huhConfirmer struct {
	isTerminal func() bool
	out        io.Writer
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

var newConfirmer = func(out io.Writer) confirmer {
	return huhConfirmer{isTerminal: terminal.IsInteractive, out: out}
}

func (c huhConfirmer) Confirm(title string, description string) (bool, error) {
	if !c.isTerminal() {
		return false, errNotInteractive
	}
	approved := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&approved),
		),
	).WithOutput(c.out)
	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return approved, nil
}

// confirmAction returns true when yes is set or the user approves the prompt.
func confirmAction(cmd *cobra.Command, yes bool, action string, title string, description string) (bool, error) {
	if yes {
		return true, nil
	}
	approved, err := newConfirmer(cmd.ErrOrStderr()).Confirm(title, description)
	if errors.Is(err, errNotInteractive) {
		return false, fmt.Errorf(messages.ConfirmRequiresTermFmt, action)
	}
	return approved, err
}
