package toast

import (
	"strings"
	"testing"
)

func TestShowThenDismiss(t *testing.T) {
	t.Parallel()

	m := New()
	if m.Visible() {
		t.Fatal("new toast is visible")
	}

	cmd := m.Show("saved", false)
	if cmd == nil {
		t.Fatal("Show() returned nil dismiss cmd")
	}
	if !m.Visible() {
		t.Fatal("toast not visible after Show")
	}

	m.Dismiss(DismissMsg{Seq: 1})
	if m.Visible() {
		t.Error("toast still visible after matching dismiss")
	}
}

func TestLastShowWins(t *testing.T) {
	t.Parallel()

	m := New()
	_ = m.Show("first", false)
	_ = m.Show("second", true)

	// the first toast's timer fires; it must not clear the second toast
	m.Dismiss(DismissMsg{Seq: 1})
	if !m.Visible() {
		t.Error("stale dismiss cleared the current toast")
	}
	if !strings.Contains(m.View(), "second") {
		t.Errorf("View() = %q, want it to show the latest message", m.View())
	}

	m.Dismiss(DismissMsg{Seq: 2})
	if m.Visible() {
		t.Error("current dismiss did not clear the toast")
	}
}

func TestHiddenViewIsEmpty(t *testing.T) {
	t.Parallel()

	m := New()
	if got := m.View(); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}
