// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/slightknack/attorand"
)

// outputMode identifies how generated values are written.
type outputMode string

// These constants define the supported output modes.
const (
	// modeU64 writes one decimal uint64 per line.
	modeU64 outputMode = "u64"

	// modeMax writes one decimal uint64 in [0,max] per line.
	modeMax outputMode = "max"

	// modeByte writes one decimal byte per line.
	modeByte outputMode = "byte"

	// modeBool writes one of true or false per line.
	modeBool outputMode = "bool"

	// modeHex writes bytes as hexadecimal with 32 bytes per line.
	modeHex outputMode = "hex"

	// modeRaw writes the raw byte stream.
	modeRaw outputMode = "raw"
)

var outputModes = []outputMode{modeU64, modeMax, modeByte, modeBool, modeHex,
	modeRaw}

// parseOutputMode returns the output mode with the provided case-insensitive
// name.
func parseOutputMode(name string) (outputMode, error) {
	lower := outputMode(strings.ToLower(name))
	for _, mode := range outputModes {
		if mode == lower {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown output mode %q", name)
}

const (
	// hexLineBytes is the number of bytes written per line in hex mode.
	hexLineBytes = 32

	// checkInterval is the number of values written between checks for a
	// shutdown request.
	checkInterval = 4096
)

// writeValues writes values drawn from r to w in the configured mode until
// the configured count is reached or ctx is canceled.  A count of zero writes
// until ctx is canceled or w errors.  It returns the number of values written.
func writeValues(ctx context.Context, w io.Writer, r *attorand.Rng, cfg *config) (uint64, error) {
	bw := bufio.NewWriter(w)
	var written uint64
	var line []byte
	var hexBuf [hexLineBytes * 2]byte
	var hexLine []byte
	for cfg.Count == 0 || written < cfg.Count {
		if written%checkInterval == 0 && shutdownRequested(ctx) {
			break
		}

		line = line[:0]
		switch cfg.mode {
		case modeU64:
			line = strconv.AppendUint(line, r.NextU64(), 10)
			line = append(line, '\n')

		case modeMax:
			line = strconv.AppendUint(line, r.NextU64Max(cfg.Max), 10)
			line = append(line, '\n')

		case modeByte:
			line = strconv.AppendUint(line, uint64(r.NextByte()), 10)
			line = append(line, '\n')

		case modeBool:
			line = strconv.AppendBool(line, r.NextBool())
			line = append(line, '\n')

		case modeHex:
			hexLine = append(hexLine, r.NextByte())
			if len(hexLine) == hexLineBytes {
				n := hex.Encode(hexBuf[:], hexLine)
				line = append(line, hexBuf[:n]...)
				line = append(line, '\n')
				hexLine = hexLine[:0]
			}

		case modeRaw:
			line = append(line, r.NextByte())

		default:
			return written, fmt.Errorf("unsupported output mode %q", cfg.mode)
		}

		if _, err := bw.Write(line); err != nil {
			return written, err
		}
		written++
	}

	// Terminate a partial hex line.
	if len(hexLine) > 0 {
		n := hex.Encode(hexBuf[:], hexLine)
		if _, err := bw.Write(append(hexBuf[:n], '\n')); err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}
