package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("group order", "groups", 4)
	if buf.Len() != 0 {
		t.Errorf("debug record written at info level: %q", buf.String())
	}

	logger.Info("computed metrics", "courses", 6)
	if out := buf.String(); !strings.Contains(out, "computed metrics") || !strings.Contains(out, "courses=6") {
		t.Errorf("info record = %q", out)
	}

	buf.Reset()
	logger.SetLevel(log.DebugLevel)
	logger.Debug("group order", "groups", 4)
	if !strings.Contains(buf.String(), "groups=4") {
		t.Errorf("debug record = %q", buf.String())
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    log.Level
		wantErr bool
	}{
		{"", false, log.InfoLevel, false},
		{"warn", false, log.WarnLevel, false},
		{"warn", true, log.DebugLevel, false},
		{"loud", false, 0, true},
	}
	for _, tt := range tests {
		got, err := logLevel(tt.name, tt.verbose)
		if (err != nil) != tt.wantErr {
			t.Errorf("logLevel(%q, %v) error = %v", tt.name, tt.verbose, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("logLevel(%q, %v) = %v, want %v", tt.name, tt.verbose, got, tt.want)
		}
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "curricula.log")
	f, err := openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile() error: %v", err)
	}
	newLogger(f, log.InfoLevel).Info("first")
	f.Close()

	f, err = openLogFile(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	newLogger(f, log.InfoLevel).Info("second")
	f.Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file should be appended to, got %q", data)
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Rendered graph")
	if !strings.Contains(buf.String(), "Rendered graph (") {
		t.Errorf("progress output = %q", buf.String())
	}
}
