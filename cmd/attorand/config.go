// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrutil/v4"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	"github.com/slightknack/attorand"
)

const (
	defaultLogLevel    = "info"
	defaultLogDirname  = "logs"
	defaultLogFilename = "attorand.log"
	defaultMode        = modeU64
	defaultCount       = 10

	// funcName is the name used to prefix configuration errors.
	funcName = "loadConfig"
)

var (
	defaultHomeDir = dcrutil.AppDataDir("attorand", false)
	defaultLogDir  = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for attorand.
//
// See loadConfig for details on the configuration load process.
type config struct {
	// General application behavior.
	HomeDir       string `short:"A" long:"appdata" description:"Path to application home directory"`
	LogDir        string `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	// Generator options.
	Seed  string `short:"s" long:"seed" description:"Seed as a decimal or 0x-prefixed hexadecimal uint64 (default: the built-in seed)"`
	Algo  string `short:"a" long:"algo" description:"Hash algorithm driving the generator {sip13, sip24, blake256, blake3, xxhash}"`
	Mode  string `short:"m" long:"mode" description:"Output mode {u64, max, byte, bool, hex, raw}"`
	Max   uint64 `long:"max" description:"Inclusive upper bound of values written in max mode"`
	Count uint64 `short:"n" long:"count" description:"Number of values (bytes in hex and raw modes) to write; 0 streams until interrupted"`

	// The following fields are set from the options above.
	seed uint64
	algo attorand.Algorithm
	mode outputMode
}

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not caused
// by the user.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// cleanAndExpandPath expands environment variables and leading ~ in the passed
// path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// parseSeed parses a decimal or 0x-prefixed hexadecimal uint64.  An empty
// string selects the default seed.
func parseSeed(s string) (uint64, error) {
	if s == "" {
		return attorand.RngSeed, nil
	}
	seed, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return seed, nil
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := slog.LevelFromString(logLevel)
	return ok
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	parser := flags.NewParser(cfg, options)
	parser.Usage = "[OPTIONS]"
	return parser
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Override defaults with any specified command line options
//  3. Validate the generator options
//
// The above results in attorand functioning properly without any options
// while still allowing the user to override settings with command line
// options.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		HomeDir:    defaultHomeDir,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		Algo:       attorand.SipHash13.String(),
		Mode:       string(defaultMode),
		Count:      defaultCount,
	}

	// Parse command line options.
	parser := newConfigParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	if len(remainingArgs) > 0 {
		str := "%s: unexpected positional arguments %v"
		return nil, nil, fmt.Errorf(str, funcName, remainingArgs)
	}

	// Update the home directory if specified.  Since the home directory is
	// updated, other variables need to be updated to reflect the new changes.
	if cfg.HomeDir != defaultHomeDir {
		cfg.HomeDir = cleanAndExpandPath(cfg.HomeDir)
		if cfg.LogDir == defaultLogDir {
			cfg.LogDir = filepath.Join(cfg.HomeDir, defaultLogDirname)
		}
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	// Validate the debug level.
	if !validLogLevel(cfg.DebugLevel) {
		str := "%s: the specified debug level [%v] is invalid"
		return nil, nil, fmt.Errorf(str, funcName, cfg.DebugLevel)
	}

	// Parse the generator options.
	cfg.seed, err = parseSeed(cfg.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", funcName, err)
	}
	cfg.algo, err = attorand.ParseAlgorithm(cfg.Algo)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", funcName, err)
	}
	cfg.mode, err = parseOutputMode(cfg.Mode)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", funcName, err)
	}
	if cfg.Max != 0 && cfg.mode != modeMax {
		str := "%s: --max is only valid with --mode=%s"
		return nil, nil, fmt.Errorf(str, funcName, modeMax)
	}

	// Initialize log rotation.  After the log rotation has been initialized,
	// the logger variables may be used.
	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return nil, nil, errSuppressUsage(err.Error())
		}
	}
	setLogLevels(cfg.DebugLevel)

	return &cfg, remainingArgs, nil
}
