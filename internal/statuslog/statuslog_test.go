/*
 * ARM fuzzer - status and log sink tests.
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

package statuslog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOpenCreatesDirAndTruncatesLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	sink, err := Open(dir, "")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer sink.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("data dir not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "log")); err != nil {
		t.Fatalf("log file not created: %v", err)
	}

	if err := sink.LogHidden(0, 4, "", ""); err != nil {
		t.Fatalf("LogHidden returned error: %v", err)
	}
	sink.Close()
	reopened, err := Open(dir, "")
	if err != nil {
		t.Fatalf("second Open returned error: %v", err)
	}
	defer reopened.Close()
	info, err := os.Stat(filepath.Join(dir, "log"))
	if err != nil {
		t.Fatalf("log file not readable after reopen: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("log size after reopen = %d, expected 0 (truncated)", info.Size())
	}
}

func TestWriteStatusAtomic(t *testing.T) {
	dir := t.TempDir()
	sink, err := Open(dir, "")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer sink.Close()

	status := Status{CurrentInsn: 0xe1a00000, Checked: 10, InsnsPerSec: 1000, RangeEnd: 0xffffffff, Visited: 10}
	if err := sink.WriteStatus(status); err != nil {
		t.Fatalf("WriteStatus returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "status"))
	if err != nil {
		t.Fatalf("status file not readable: %v", err)
	}
	if !strings.Contains(string(data), "E1A00000") {
		t.Errorf("status file contents = %q, expected to contain the current instruction hex", data)
	}

	entries, _ := filepath.Glob(filepath.Join(dir, "status-*.tmp"))
	if len(entries) != 0 {
		t.Errorf("leftover temp status files: %v", entries)
	}
}

func TestLogDiscrepancyAndHidden(t *testing.T) {
	dir := t.TempDir()
	sink, err := Open(dir, "-suffix")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer sink.Close()

	if err := sink.LogDiscrepancy(0xe1a00000, "mov r0, r0", ""); err != nil {
		t.Fatalf("LogDiscrepancy returned error: %v", err)
	}
	if err := sink.LogHidden(0x00000000, 4, "r0=0", ""); err != nil {
		t.Fatalf("LogHidden returned error: %v", err)
	}
	sink.Close()

	data, err := os.ReadFile(filepath.Join(dir, "log-suffix"))
	if err != nil {
		t.Fatalf("log file not readable: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), data)
	}
	if !strings.Contains(lines[0], "discrepancy") {
		t.Errorf("first line = %q, expected a discrepancy record", lines[0])
	}
	if !strings.Contains(lines[1], "signal=4") {
		t.Errorf("second line = %q, expected signal=4", lines[1])
	}
}

func TestStatusETAZeroWhenRateUnknown(t *testing.T) {
	s := Status{}
	if got := s.ETA(); got != 0 {
		t.Errorf("ETA() = %v, expected 0 when InsnsPerSec is 0", got)
	}
}

func TestStatusETAPositive(t *testing.T) {
	s := Status{CurrentInsn: 0, RangeEnd: 1000, InsnsPerSec: 100, Visited: 1}
	eta := s.ETA()
	if eta <= 0 {
		t.Errorf("ETA() = %v, expected a positive duration", eta)
	}
	if eta < 10*time.Second {
		t.Errorf("ETA() = %v, expected at least the unfudged 10s estimate", eta)
	}
}
