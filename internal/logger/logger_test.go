package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLoggerVerboseGate(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet hides debug", verbose: false, wantDebug: false},
		{name: "verbose shows debug", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithCallback("test", func() bool { return tt.verbose })
			log.SetOutput(&buf)

			log.Debug("debug line")
			log.Warn("warn line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug present = %v, want %v (output %q)", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "WARN [test] warn line") {
				t.Errorf("expected warn line, got %q", out)
			}
		})
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithCallback("fetch", func() bool { return true })
	log.SetOutput(&buf)

	log.WarnWithFields("fetch failed", []Field{Count(3), Error(errors.New("boom"))})

	out := buf.String()
	if !strings.Contains(out, "[count=3 error=boom]") {
		t.Errorf("expected fields in output, got %q", out)
	}
}

func TestWithComponentSharesOutput(t *testing.T) {
	var buf bytes.Buffer
	root := New("root", nil)
	child := root.WithComponent("child")

	root.SetOutput(&buf)
	child.Error("failed %d times", 2)

	if !strings.Contains(buf.String(), "ERROR [child] failed 2 times") {
		t.Errorf("child did not follow redirected output: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing to see")
	log.WithComponent("x").Warn("still nothing")
}

func TestMessageWithoutArgsKeepsPercent(t *testing.T) {
	var buf bytes.Buffer
	log := New("", nil)
	log.SetOutput(&buf)

	log.Warn("100% done")

	if !strings.Contains(buf.String(), "WARN [main] 100% done") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
