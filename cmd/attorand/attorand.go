// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// attorand writes deterministic pseudorandom values to standard output.
//
// Values are produced by a hash-driven generator seeded from the command
// line, so the same options always produce the same output.  The output is
// not suitable for cryptographic use.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	flags "github.com/jessevdk/go-flags"
	"github.com/slightknack/attorand"
)

// attorandMain is the real main function for attorand.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func attorandMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Get a context that will be canceled when a shutdown signal has been
	// triggered from an OS signal such as SIGINT (Ctrl+C).
	ctx := shutdownListener()

	atrdLog.Debugf("Go version %s %s/%s", runtime.Version(), runtime.GOOS,
		runtime.GOARCH)
	if cfg.NoFileLogging {
		atrdLog.Debug("File logging disabled")
	}

	r, err := attorand.NewWithAlgorithm(cfg.seed, cfg.algo)
	if err != nil {
		return err
	}
	atrdLog.Debugf("Generating %s values with seed %#016x and algorithm %v",
		cfg.mode, cfg.seed, cfg.algo)

	n, err := writeValues(ctx, os.Stdout, r, cfg)
	if err != nil {
		atrdLog.Errorf("Failed to write values: %v", err)
		return err
	}
	if shutdownRequested(ctx) {
		atrdLog.Infof("Wrote %d values before shutdown", n)
	} else {
		atrdLog.Debugf("Wrote %d values", n)
	}
	return nil
}

func main() {
	if err := attorandMain(); err != nil {
		// Option parsing errors and help output are already shown by the
		// flags parser.
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type == flags.ErrHelp {
				os.Exit(0)
			}
			fmt.Fprintln(os.Stderr, "Use attorand -h to show usage")
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, err)
		var suppress errSuppressUsage
		if !errors.As(err, &suppress) {
			fmt.Fprintln(os.Stderr, "Use attorand -h to show usage")
		}
		os.Exit(1)
	}
}
