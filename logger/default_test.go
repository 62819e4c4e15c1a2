package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultLogger(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() = nil")
	}
}

func TestSetDefault(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var buf bytes.Buffer
	SetDefault(NewBuilder().WithWriter(&buf).Build())

	Infof("hello %s\n", "world")

	out := buf.String()
	if !strings.Contains(out, "hello world") {
		t.Errorf("expected body in output, got: %q", out)
	}
	if !strings.Contains(out, "default_test.go:") {
		t.Errorf("expected caller file in output, got: %q", out)
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var buf bytes.Buffer
	SetDefault(NewBuilder().WithWriter(&buf).Build())

	Tracef("t\n")
	Debugf("d\n")
	Warnf("w\n")
	Errorf("e\n")
	Fatalf("f\n") // must not exit

	out := buf.String()
	for _, name := range []string{"TRACE", "DEBUG", "WARN", "ERROR", "FATAL"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %s line in output, got: %q", name, out)
		}
	}
}

func TestPackageLevelSetLevel(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var buf bytes.Buffer
	SetDefault(NewBuilder().WithWriter(&buf).Build())

	SetLevel(ErrorLevel)
	Infof("suppressed\n")
	if buf.Len() > 0 {
		t.Errorf("Info logged after SetLevel(Error): %q", buf.String())
	}

	Errorf("visible\n")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Error not logged: %q", buf.String())
	}
}

func TestPackageLevelConsoleToggle(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var buf bytes.Buffer
	SetDefault(NewBuilder().WithWriter(&buf).Build())

	DisableConsole()
	Errorf("hidden\n")
	if buf.Len() > 0 {
		t.Errorf("console wrote %q while disabled", buf.String())
	}

	EnableConsole()
	Errorf("shown\n")
	if buf.Len() == 0 {
		t.Error("no output after EnableConsole")
	}
}

func TestPackageLevelRegisterCallbackDefaultCapacity(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var buf bytes.Buffer
	SetDefault(NewBuilder().WithWriter(&buf).Build())

	// The default registry capacity is 0: every registration fails.
	if RegisterCallback(countingCallback, new(int), TraceLevel) {
		t.Error("registration succeeded on the capacity-0 default registry")
	}
	UnregisterCallback(countingCallback, new(int)) // no-op, must not panic
}
