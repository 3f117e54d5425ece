package errors

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidCatalog, "missing %s row", "Curriculum")

	if err.Code != ErrCodeInvalidCatalog {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidCatalog)
	}
	if want := "INVALID_CATALOG: missing Curriculum row"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrCodeFileNotFound, os.ErrNotExist, "catalog %s", "cs.csv")

	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is(err, os.ErrNotExist) = false, want true")
	}
	if errors.Unwrap(err) != os.ErrNotExist {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), os.ErrNotExist)
	}
	if want := "FILE_NOT_FOUND: catalog cs.csv: file does not exist"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsAndGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"coded", CycleDetected("delay"), ErrCodeCycleDetected},
		{"wrapped by fmt", fmt.Errorf("metrics: %w", CycleDetected("centrality")), ErrCodeCycleDetected},
		{"outer code wins", Wrap(ErrCodeTimeout, MissingKey("CS2500", "blocking"), "metrics"), ErrCodeTimeout},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(err, %s) = false, want true", tt.code)
			}
			if Is(tt.err, ErrCodeInternal) {
				t.Error("Is(err, INTERNAL_ERROR) = true, want false")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeNotFound, `plan "Honors" not found`), `plan "Honors" not found`},
		{"wrapped coded", fmt.Errorf("load: %w", New(ErrCodeInvalidPath, "bad path")), "bad path"},
		{"plain", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCycleDetected(t *testing.T) {
	for _, metric := range []string{"delay", "blocking", "centrality"} {
		t.Run(metric, func(t *testing.T) {
			err := CycleDetected(metric)
			if err.Code != ErrCodeCycleDetected {
				t.Errorf("Code = %v, want %v", err.Code, ErrCodeCycleDetected)
			}
			if !strings.Contains(err.Error(), metric) {
				t.Errorf("Error() = %q, want it to mention %q", err.Error(), metric)
			}
			want := "cannot compute metrics: cycle in prerequisite graph"
			if got := UserMessage(fmt.Errorf("metrics: %w", err)); got != want {
				t.Errorf("UserMessage() = %q, want %q", got, want)
			}
		})
	}
}

func TestMissingKey(t *testing.T) {
	err := MissingKey("CS165", "blocking")

	if !Is(err, ErrCodeMissingKey) {
		t.Errorf("Is(err, ErrCodeMissingKey) = false, want true")
	}
	expected := `MISSING_KEY: course "CS165" missing from blocking map`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}
