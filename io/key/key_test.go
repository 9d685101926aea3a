// SPDX-License-Identifier: Unlicense OR MIT

package key

import (
	"testing"
)

func TestModifiersString(t *testing.T) {
	tests := []struct {
		Mods Modifiers
		Want string
	}{
		{0, ""},
		{ModCtrl, "Ctrl"},
		{ModShift | ModCtrl, "Ctrl-Shift"},
		{ModAlt | ModSuper | ModCommand, "⌘-Alt-Super"},
	}
	for _, tst := range tests {
		if have := tst.Mods.String(); have != tst.Want {
			t.Errorf("modifiers %d: have %q, want %q", tst.Mods, have, tst.Want)
		}
	}
}

func TestReply(t *testing.T) {
	if Unhandled.IsHandled() || !Handled.IsHandled() {
		t.Error("IsHandled mismatch")
	}
	if Handled.String() != "Handled" {
		t.Errorf("unexpected string %q", Handled.String())
	}
}
