package logging

import (
	"bytes"
	"os"
	"testing"
)

func TestIsTTY_Buffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a buffer is not a TTY")
	}
}

// unsetNoColor removes NO_COLOR for the duration of the test; t.Setenv alone
// cannot unset, and LookupEnv treats empty-but-set as set.
func unsetNoColor(t *testing.T) {
	t.Helper()
	if val, ok := os.LookupEnv("NO_COLOR"); ok {
		os.Unsetenv("NO_COLOR")
		t.Cleanup(func() { os.Setenv("NO_COLOR", val) })
	}
}

func TestSupportsColor(t *testing.T) {
	t.Run("tty with capable term", func(t *testing.T) {
		unsetNoColor(t)
		t.Setenv("TERM", "xterm-256color")
		if !supportsColor(&bytes.Buffer{}, true) {
			t.Error("supportsColor() = false, want true")
		}
	})

	t.Run("not a tty", func(t *testing.T) {
		unsetNoColor(t)
		t.Setenv("TERM", "xterm-256color")
		if supportsColor(&bytes.Buffer{}, false) {
			t.Error("supportsColor() = true for a non-TTY")
		}
	})

	t.Run("NO_COLOR disables", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		if supportsColor(&bytes.Buffer{}, true) {
			t.Error("supportsColor() = true despite NO_COLOR")
		}
	})

	t.Run("dumb terminal disables", func(t *testing.T) {
		unsetNoColor(t)
		t.Setenv("TERM", "dumb")
		if supportsColor(&bytes.Buffer{}, true) {
			t.Error("supportsColor() = true for TERM=dumb")
		}
	})
}
