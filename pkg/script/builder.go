package script

import (
	"strings"
)

// Builder accumulates commands in caller order and validates the sequence.
// A zero Builder is ready to use.
type Builder struct {
	commands []Command
}

// NewBuilder creates an empty script builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds a command to the end of the sequence. Order is preserved
// exactly; the external interpreter executes top to bottom.
func (b *Builder) Append(cmd Command) *Builder {
	b.commands = append(b.commands, cmd)
	return b
}

// Len returns the number of appended commands
func (b *Builder) Len() int {
	return len(b.commands)
}

// Build validates the sequence against the structure rules and returns an
// immutable Script. A violated rule produces a *models.StructuralError
// naming the rule; no Script is produced and nothing reaches disk.
func (b *Builder) Build() (*Script, error) {
	for _, rule := range structureRules {
		if err := rule.check(b.commands); err != nil {
			return nil, err
		}
	}

	commands := make([]Command, len(b.commands))
	copy(commands, b.commands)
	return &Script{commands: commands}, nil
}

// Script is a validated, ordered command sequence. Scripts are only
// produced by Builder.Build, so any Script in hand is well formed.
type Script struct {
	commands []Command
}

// Len returns the number of commands in the script
func (s *Script) Len() int {
	return len(s.commands)
}

// Commands returns a copy of the command sequence
func (s *Script) Commands() []Command {
	commands := make([]Command, len(s.commands))
	copy(commands, s.commands)
	return commands
}

// Render returns the full script text, one command per line (reports may
// span continuation lines), every line terminated with a newline.
// Rendering is deterministic: the same script always yields identical text.
func (s *Script) Render() string {
	var sb strings.Builder
	for _, cmd := range s.commands {
		sb.WriteString(cmd.Render())
		sb.WriteByte('\n')
	}
	return sb.String()
}
