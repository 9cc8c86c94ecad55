/*
 * ARM fuzzer - status snapshot and result log persistence.
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

// Package statuslog persists the fuzzer's running status snapshot and its
// append-only result log under data/, the way util/logger persists S370's
// operator-facing diagnostics: a mutex-guarded writer, atomic replace for
// anything a human or external tool might tail mid-update.
package statuslog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rcornwell/armfuzz/internal/hexfmt"
)

// Status is the periodic snapshot published by the driver, matching spec
// §4's {current_insn, cs_text, libopc_text, checked, skipped, filtered,
// discrepancies, hidden_found, insns_per_sec} shape, plus the visited
// total invariant #6 is checked against.
type Status struct {
	CurrentInsn   uint32
	CSText        string
	LibopcText    string
	Visited       uint64
	Checked       uint64
	Skipped       uint64
	Filtered      uint64
	Discrepancies uint64
	HiddenFound   uint64
	InsnsPerSec   float64
	Started       time.Time
	RangeEnd      uint32
}

// etaFudgeFactor compensates for oracle invocation overhead not reflected
// in the raw encodings-per-second figure; this is a heuristic carried over
// from the reference implementation's status line, not a derived
// constant, and is preserved verbatim.
const etaFudgeFactor = 1.05

// ETA estimates wall-clock time remaining to reach RangeEnd at the
// current rate, or 0 if the rate is not yet known.
func (s Status) ETA() time.Duration {
	if s.InsnsPerSec <= 0 || s.Visited == 0 {
		return 0
	}
	remaining := uint64(s.RangeEnd) - uint64(s.CurrentInsn)
	seconds := float64(remaining) / s.InsnsPerSec * etaFudgeFactor
	return time.Duration(seconds * float64(time.Second))
}

func (s Status) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "insn=%s checked=%d skipped=%d filtered=%d discreps=%d hidden=%d rate=%.1f/s eta=%s\n",
		hexfmt.Word(s.CurrentInsn), s.Checked, s.Skipped, s.Filtered, s.Discrepancies,
		s.HiddenFound, s.InsnsPerSec, s.ETA().Round(time.Second))
	if s.CSText != "" || s.LibopcText != "" {
		fmt.Fprintf(&b, "cs=%q libopc=%q\n", s.CSText, s.LibopcText)
	}
	return b.String()
}

// Sink owns the data/ directory and writes the status file atomically and
// the result log by append.
type Sink struct {
	mu         sync.Mutex
	dir        string
	statusPath string
	logPath    string
	logFile    *os.File
}

// Open creates dir (mode 0755) if absent, truncates the log file for a
// fresh run, and returns a ready Sink. suffix is appended to both the
// "status" and "log" base names per --log-suffix.
func Open(dir, suffix string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("statuslog: create %s: %w", dir, err)
	}

	s := &Sink{
		dir:        dir,
		statusPath: filepath.Join(dir, "status"+suffix),
		logPath:    filepath.Join(dir, "log"+suffix),
	}

	f, err := os.OpenFile(s.logPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("statuslog: truncate %s: %w", s.logPath, err)
	}
	s.logFile = f
	return s, nil
}

// WriteStatus overwrites the status file atomically: write to a temp file
// in dir, then os.Rename, so a concurrent reader never observes a
// partially written snapshot.
func (s *Sink) WriteStatus(status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "status-*.tmp")
	if err != nil {
		return fmt.Errorf("statuslog: create temp status file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(status.String()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("statuslog: write temp status file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("statuslog: close temp status file: %w", err)
	}
	if err := os.Rename(tmpName, s.statusPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("statuslog: rename temp status file: %w", err)
	}
	return nil
}

// LogDiscrepancy appends a disassembler-discrepancy record: spec §6's
// `HHHHHHHH,discrepancy,"cs_text","libopc_text"` line.
func (s *Sink) LogDiscrepancy(insn uint32, csText, libopcText string) error {
	return s.appendLine(fmt.Sprintf("%s,discrepancy,%q,%q\n", hexfmt.Word(insn), csText, libopcText))
}

// LogHidden appends a hidden-instruction record: spec §6's
// `HHHHHHHH,signal=N[,regs_before=…][,regs_after=…]` line. regsBefore and
// regsAfter are pre-formatted hex strings, omitted when empty (the
// in-process backend has no register diff to offer).
func (s *Sink) LogHidden(insn uint32, signal int, regsBefore, regsAfter string) error {
	line := fmt.Sprintf("%s,signal=%d", hexfmt.Word(insn), signal)
	if regsBefore != "" {
		line += ",regs_before=" + regsBefore
	}
	if regsAfter != "" {
		line += ",regs_after=" + regsAfter
	}
	return s.appendLine(line + "\n")
}

func (s *Sink) appendLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.logFile.WriteString(line); err != nil {
		return fmt.Errorf("statuslog: append log record: %w", err)
	}
	return nil
}

// Close closes the underlying log file handle.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logFile.Close()
}
