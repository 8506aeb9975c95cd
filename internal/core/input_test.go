package core

import "testing"

func TestKeyTablePressRelease(t *testing.T) {
	var k KeyTable

	k.Press(KeyLeft)
	if !k.Down(KeyLeft) {
		t.Error("KeyLeft should be down after Press")
	}
	if k.Down(KeyRight) {
		t.Error("KeyRight should not be down")
	}

	k.Release(KeyLeft)
	if k.Down(KeyLeft) {
		t.Error("KeyLeft should be up after Release")
	}
}

func TestKeyTableOutOfRange(t *testing.T) {
	var k KeyTable

	// Should not panic
	k.Press(-1)
	k.Press(256)
	k.Press(10000)
	k.Release(-1)
	k.Release(256)

	if k.Down(-1) || k.Down(256) {
		t.Error("Out of range codes should never be down")
	}
	for i := range k {
		if k[i] {
			t.Errorf("Out of range press leaked into slot %d", i)
		}
	}
}

func TestKeyTableBoundaryCodes(t *testing.T) {
	var k KeyTable
	k.Press(0)
	k.Press(255)
	if !k.Down(0) || !k.Down(255) {
		t.Error("Codes 0 and 255 should be addressable")
	}
}

func TestKeyTableAnyAndReset(t *testing.T) {
	var k KeyTable
	k.Press(KeyA)

	if !k.Any(KeyLeft, KeyA) {
		t.Error("Any() should report a held key")
	}
	if k.Any(KeyRight, KeyD) {
		t.Error("Any() should be false when none are held")
	}

	k.Reset()
	if k.Down(KeyA) {
		t.Error("Reset() should release all keys")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionBack, "Back"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
