package inbox

import (
	"context"
	"sync"

	"github.com/charmbracelet/huh"
)

// AccessState is whether the inbox may be read.
type AccessState int

const (
	Unauthorized AccessState = iota
	Authorized
)

func (s AccessState) String() string {
	if s == Authorized {
		return "authorized"
	}
	return "unauthorized"
}

// Prompter shows the permission dialog and returns the user's answer.
type Prompter interface {
	Prompt(ctx context.Context) (bool, error)
}

// Gate tracks whether the user has allowed reading messages. The only way
// to become Authorized is a granted Prompt.
type Gate struct {
	prompter Prompter

	mu    sync.Mutex
	state AccessState
}

// NewGate creates a Gate in the Unauthorized state.
func NewGate(p Prompter) *Gate {
	return &Gate{prompter: p}
}

// State returns the current access state.
func (g *Gate) State() AccessState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Request shows the prompt once. A denial or prompt error leaves an
// already-granted gate untouched.
func (g *Gate) Request(ctx context.Context) (bool, error) {
	granted, err := g.prompter.Prompt(ctx)
	if err != nil || !granted {
		return false, err
	}

	g.mu.Lock()
	g.state = Authorized
	g.mu.Unlock()
	return true, nil
}

// TerminalPrompter asks on the terminal with a yes/no form.
type TerminalPrompter struct {
	Source string
}

// Prompt runs the confirmation form.
func (p TerminalPrompter) Prompt(ctx context.Context) (bool, error) {
	allow := false
	confirm := huh.NewConfirm().
		Title("Allow smsledger to read your SMS messages?").
		Description("Messages from " + p.Source + " are scanned for bank transactions. Nothing is sent anywhere.").
		Affirmative("Allow").
		Negative("Deny").
		Value(&allow)

	if err := huh.NewForm(huh.NewGroup(confirm)).RunWithContext(ctx); err != nil {
		return false, err
	}
	return allow, nil
}

// AutoPrompter answers without asking, for non-interactive runs.
type AutoPrompter bool

// Prompt returns the preset answer.
func (p AutoPrompter) Prompt(context.Context) (bool, error) {
	return bool(p), nil
}
