package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

// ---- getStatus ----

func TestGetStatus_Empty(t *testing.T) {
	a := &App{}
	got := a.getStatus()
	if got != "" {
		t.Fatalf("want empty status, got %q", got)
	}
}

func TestGetStatus_WithUsernameOnly(t *testing.T) {
	a := &App{userName: "dev1"}
	got := a.getStatus()
	want := "(dev1 )"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestGetStatus_WithUsernameAndMode(t *testing.T) {
	a := &App{userName: "dev1", Mode: ModeOnline}
	got := a.getStatus()
	want := "(dev1 online)"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

// ---- runREPL (smoke) ----

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_HelpThenQuit(t *testing.T) {
	silencePrintln(t)

	input := "help\nquit\n"
	sc := bufio.NewScanner(strings.NewReader(input))

	exec := &fakeExec{}
	status := func() string { return "status" }

	runREPL(context.Background(), exec, status, sc)
}
