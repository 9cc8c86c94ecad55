/*
 * ARM fuzzer - CLI configuration parsing and validation.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package fuzzconfig resolves the fuzzer's CLI flags into one immutable,
// validated Config. There is no configuration file: every setting is a
// flag, but the "parse once, validate, return a typed error" shape is kept
// the same as a file-backed config parser so the rest of the program never
// has to re-derive or re-check a flag combination.
package fuzzconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

// ParseHex parses a "0x"-prefixed or bare hex literal such as those
// accepted by --start/--end/--mask into a uint32, returning a
// configuration *Error on malformed input.
func ParseHex(s string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, &Error{Msg: fmt.Sprintf("invalid hex value %q: %v", s, err)}
	}
	return uint32(v), nil
}

// Arch selects which instruction set family the run targets.
type Arch int

const (
	ArchAArch64 Arch = iota
	ArchARM
)

// Config is the fully resolved, validated configuration for one run.
// Once built by New it is never mutated.
type Config struct {
	Start       uint32
	End         uint32
	Mask        uint32
	Arch        Arch
	Thumb       bool
	NoExec      bool
	ExecAll     bool
	Filter      bool
	Ptrace      bool
	PrintRegs   bool
	Discreps    bool
	Quiet       bool
	LogSuffix   string
	Watchdog    time.Duration
	LibopcPath  string
	MaxRespawns int
}

// Error is a configuration validation failure. New and ParseHex return it
// as *Error without added context; callers that add context wrap it with
// fmt.Errorf("%w", ...).
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "armfuzz: configuration: " + e.Msg }

// Params mirrors the raw, unvalidated flag values collected by main's
// getopt parsing, before New cross-checks them against each other.
type Params struct {
	Start       uint32
	End         uint32
	Mask        uint32
	ArchName    string
	Thumb       bool
	NoExec      bool
	ExecAll     bool
	Filter      bool
	Ptrace      bool
	PrintRegs   bool
	Discreps    bool
	Quiet       bool
	SingleExec  bool
	LogSuffix   string
	Watchdog    time.Duration
	LibopcPath  string
	MaxRespawns int
}

// New validates p and returns an immutable Config, or a *Error describing
// the first validation failure encountered (range inversion, Thumb on
// AArch64, Thumb without the traced-child backend).
func New(p Params) (*Config, error) {
	arch, err := parseArch(p.ArchName)
	if err != nil {
		return nil, err
	}

	start, end := p.Start, p.End
	if p.SingleExec {
		end = start
	}
	if end < start {
		return nil, &Error{Msg: fmt.Sprintf("end %#08x is before start %#08x", end, start)}
	}

	if p.Thumb && arch == ArchAArch64 {
		return nil, &Error{Msg: "Thumb is not a valid encoding class on AArch64"}
	}
	if p.Thumb && !p.Ptrace {
		return nil, &Error{Msg: "Thumb requires the traced-child backend (--ptrace); " +
			"the in-process backend's trampoline is not built for mixed 16/32-bit Thumb slots"}
	}

	libopcPath := p.LibopcPath
	if libopcPath == "" {
		libopcPath = "objdump"
	}
	maxRespawns := p.MaxRespawns
	if maxRespawns == 0 {
		maxRespawns = 8
	}

	return &Config{
		Start:       start,
		End:         end,
		Mask:        p.Mask,
		Arch:        arch,
		Thumb:       p.Thumb,
		NoExec:      p.NoExec,
		ExecAll:     p.ExecAll,
		Filter:      p.Filter,
		Ptrace:      p.Ptrace,
		PrintRegs:   p.PrintRegs,
		Discreps:    p.Discreps,
		Quiet:       p.Quiet,
		LogSuffix:   p.LogSuffix,
		Watchdog:    p.Watchdog,
		LibopcPath:  libopcPath,
		MaxRespawns: maxRespawns,
	}, nil
}

func parseArch(name string) (Arch, error) {
	switch name {
	case "", "arm64":
		return ArchAArch64, nil
	case "arm":
		return ArchARM, nil
	default:
		return 0, &Error{Msg: fmt.Sprintf("unknown architecture %q, expected arm or arm64", name)}
	}
}

// InsnSet maps the resolved Config to the armenc instruction-set class the
// iterator and oracles operate over.
func (c *Config) InsnSet() armenc.InsnSet {
	switch {
	case c.Arch == ArchAArch64:
		return armenc.AArch64
	case c.Thumb:
		return armenc.Thumb
	default:
		return armenc.A32
	}
}
