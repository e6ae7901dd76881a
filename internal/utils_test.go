package internal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestValidateCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		if err := ValidateCapacity(capacity); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("capacity %d: expected ErrInvalidCapacity, got %v", capacity, err)
		}
	}
	if err := ValidateCapacity(1); err != nil {
		t.Errorf("capacity 1: unexpected error %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"nop", "", false},
		{"stderr", "-", false},
		{"file", filepath.Join(dir, "cache.log"), false},
		{"directory", dir, true},
		{"missing parent", filepath.Join(dir, "nope", "cache.log"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closeLog, err := NewLogger(tt.path, zap.DebugLevel)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLogger: %v", err)
			}

			logger.Debugw("Inserted entry at front of LRU", "key", 1)
			if err := closeLog(); err != nil {
				t.Errorf("close: %v", err)
			}
		})
	}
}

func TestNewLoggerClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.log")

	logger, closeLog, err := NewLogger(path, zap.InfoLevel)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Debugw("dropped below level")
	logger.Infow("Deleted entry due to capacity", "key", 7)
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Deleted entry due to capacity") {
		t.Errorf("log file missing entry: %q", data)
	}
	if strings.Contains(string(data), "dropped below level") {
		t.Errorf("debug entry written at info level: %q", data)
	}

	// a second close reports the already-closed file
	if err := closeLog(); err == nil {
		t.Error("Expected error closing twice")
	}
}
