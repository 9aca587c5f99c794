// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decred/slog"
)

// TestInitLogRotator ensures the log rotator creates the log directory and
// receives log output.
func TestInitLogRotator(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", defaultLogFilename)
	if err := initLogRotator(logFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		logRotator.Close()
		logRotator = nil
	}()

	if _, err := os.Stat(filepath.Dir(logFile)); err != nil {
		t.Fatalf("log directory was not created: %v", err)
	}
}

// TestSetLogLevels ensures valid levels are applied to every subsystem and
// invalid levels are ignored.
func TestSetLogLevels(t *testing.T) {
	defer setLogLevels(defaultLogLevel)

	setLogLevels("debug")
	for subsystem, logger := range subsystemLoggers {
		if logger.Level() != slog.LevelDebug {
			t.Fatalf("%s: got level %v, want %v", subsystem, logger.Level(),
				slog.LevelDebug)
		}
	}

	setLogLevels("verbose")
	for subsystem, logger := range subsystemLoggers {
		if logger.Level() != slog.LevelDebug {
			t.Fatalf("%s: invalid level changed level to %v", subsystem,
				logger.Level())
		}
	}
}
