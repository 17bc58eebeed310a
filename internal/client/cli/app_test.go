package cli

import (
	"bytes"
	"io"
	"log"
	"sync"
	"testing"
)

func TestIsLoggedIn_Default(t *testing.T) {
	app := &App{}
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false on a fresh App")
	}
}

func TestIsLoggedIn_AfterLogin(t *testing.T) {
	app := &App{loggedIn: true}
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true after login")
	}
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app := &App{}
	var buf bytes.Buffer

	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&buf)

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change, got empty")
	}

	buf.Reset()

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to remain %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got != "" {
		t.Fatalf("expected no log output when mode doesn't change, got: %q", got)
	}

	app.setMode(ModeOffline)
	if app.Mode != ModeOffline {
		t.Fatalf("expected mode to be %q, got %q", ModeOffline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change to offline, got empty")
	}
}

func TestMode_ConcurrentWatcherAndReaders(t *testing.T) {
	app := &App{Mode: ModeOffline}

	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				app.setMode(ModeOnline)
			} else {
				app.setMode(ModeOffline)
			}
		}(i)
		go func() {
			defer wg.Done()
			_ = app.currentMode()
		}()
	}
	wg.Wait()

	if m := app.currentMode(); m != ModeOnline && m != ModeOffline {
		t.Fatalf("unexpected mode %q", m)
	}
}
