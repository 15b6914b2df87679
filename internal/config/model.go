package config

import (
	"errors"
	"fmt"
)

// Model is the unified, format-agnostic representation of the application
// configuration.
type Model struct {
	Prompts Prompts
	Style   Style
}

// Prompts holds every text the interactive session prints to the user.
type Prompts struct {
	Number   string // asks for the next number
	Result   string // precedes the spelled-out number
	Continue string // asks whether to go on
	Retry    string // reminder after an invalid continuation answer
	Goodbye  string // printed once when the session ends
}

// Style controls how numbers are read and spelled.
type Style struct {
	UseAnd    bool
	Hyphenate bool
	Bits      int
}

// Default returns the model used when no configuration file is given.
func Default() *Model {
	return &Model{
		Prompts: Prompts{
			Number:   "Now the Game is On. Give me your number:",
			Result:   "Your number means:",
			Continue: "Continue?",
			Retry:    "please enter y or n:",
			Goodbye:  "Goodbye!",
		},
		Style: Style{
			UseAnd:    false,
			Hyphenate: true,
			Bits:      64,
		},
	}
}

// Validate reports the first problem that would make the model unusable.
func (m *Model) Validate() error {
	if m.Prompts.Number == "" {
		return errors.New("prompts.number must not be empty")
	}
	if m.Style.Bits != 32 && m.Style.Bits != 64 {
		return fmt.Errorf("style.bits must be 32 or 64, got %d", m.Style.Bits)
	}
	return nil
}
