// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements character input events and the replies
// widgets return when handling them.
package key

import (
	"strings"
)

// CharEvent is generated when a character is typed into a focused
// widget.
type CharEvent struct {
	// Char is the typed character.
	Char rune
	// Modifiers is the set of active modifiers when the character was
	// typed.
	Modifiers Modifiers
	// Repeat reports whether the event was generated by key repeat.
	Repeat bool
}

// Reply tells the host whether a widget consumed an event.
type Reply uint8

const (
	// Unhandled lets the host route the event further.
	Unhandled Reply = iota
	// Handled stops routing of the event.
	Handled
)

// Modifiers
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command modifier key
	// found on Apple keyboards.
	ModCommand
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
)

// Name is the identifier for a modifier key.
type Name string

const (
	NameCtrl    Name = "Ctrl"
	NameShift   Name = "Shift"
	NameAlt     Name = "Alt"
	NameSuper   Name = "Super"
	NameCommand Name = "⌘"
)

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModCommand) {
		strs = append(strs, string(NameCommand))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModSuper) {
		strs = append(strs, string(NameSuper))
	}
	return strings.Join(strs, "-")
}

// IsHandled reports whether r is Handled.
func (r Reply) IsHandled() bool {
	return r == Handled
}

func (r Reply) String() string {
	switch r {
	case Unhandled:
		return "Unhandled"
	case Handled:
		return "Handled"
	default:
		panic("invalid Reply")
	}
}

func (CharEvent) ImplementsEvent() {}
