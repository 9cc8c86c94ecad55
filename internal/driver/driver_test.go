/*
 * ARM fuzzer - driver orchestration tests.
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

package driver

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rcornwell/armfuzz/internal/armenc"
	"github.com/rcornwell/armfuzz/internal/oracle"
	"github.com/rcornwell/armfuzz/internal/statuslog"
)

type fakeOracle struct {
	undefined bool
}

func (f *fakeOracle) Name() string { return "fake" }
func (f *fakeOracle) Disassemble(ctx context.Context, insn uint32, set armenc.InsnSet) (oracle.Verdict, error) {
	return oracle.Verdict{Undefined: f.undefined}, nil
}

type fakeExecutor struct {
	signal int
	calls  int
}

func (f *fakeExecutor) Execute(insn uint32) (ExecResult, error) {
	f.calls++
	return ExecResult{Signal: f.signal}, nil
}

type fakeSink struct {
	statuses    int
	discreps    int
	hiddenCalls int
}

func (f *fakeSink) WriteStatus(statuslog.Status) error            { f.statuses++; return nil }
func (f *fakeSink) LogDiscrepancy(uint32, string, string) error   { f.discreps++; return nil }
func (f *fakeSink) LogHidden(uint32, int, string, string) error   { f.hiddenCalls++; return nil }

func noopLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRunCountersBalanceInvariant(t *testing.T) {
	pair := &oracle.Pair{First: &fakeOracle{undefined: true}, Second: &fakeOracle{undefined: true}}
	exec := &fakeExecutor{signal: 0}
	sink := &fakeSink{}
	cfg := Config{Start: 0, End: 0xf, Mask: 0xffffffff, Set: armenc.A32, FilterOn: false}
	d := New(cfg, pair, nil, exec, sink, noopLogger())

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	counters := d.Counters()
	if !counters.Valid() {
		t.Errorf("counters invariant violated: %+v", counters)
	}
	if counters.Visited != 16 {
		t.Errorf("Visited = %d, expected 16", counters.Visited)
	}
	if exec.calls != 16 {
		t.Errorf("executor called %d times, expected 16", exec.calls)
	}
}

func TestRunSkipsWhenOraclesDisagree(t *testing.T) {
	pair := &oracle.Pair{First: &fakeOracle{undefined: true}, Second: &fakeOracle{undefined: false}}
	exec := &fakeExecutor{}
	sink := &fakeSink{}
	cfg := Config{Start: 0, End: 0x3, Mask: 0xffffffff, Set: armenc.A32}
	d := New(cfg, pair, nil, exec, sink, noopLogger())

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if exec.calls != 0 {
		t.Errorf("executor called %d times, expected 0 when oracles disagree", exec.calls)
	}
	counters := d.Counters()
	if counters.Skipped != 4 || !counters.Valid() {
		t.Errorf("counters = %+v, expected Skipped=4 and a valid invariant", counters)
	}
}

func TestRunFilterSuppressesExecution(t *testing.T) {
	pair := &oracle.Pair{First: &fakeOracle{undefined: true}, Second: &fakeOracle{undefined: true}}
	exec := &fakeExecutor{}
	sink := &fakeSink{}
	alwaysFilter := func(insn uint32) bool { return true }
	cfg := Config{Start: 0, End: 0x3, Mask: 0xffffffff, Set: armenc.A32, FilterOn: true}
	d := New(cfg, pair, alwaysFilter, exec, sink, noopLogger())

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if exec.calls != 0 {
		t.Errorf("executor called %d times, expected 0 when filter always fires", exec.calls)
	}
	counters := d.Counters()
	if counters.Filtered != 4 || !counters.Valid() {
		t.Errorf("counters = %+v, expected Filtered=4 and a valid invariant", counters)
	}
}

func TestRunRecordsHiddenInstruction(t *testing.T) {
	pair := &oracle.Pair{First: &fakeOracle{undefined: true}, Second: &fakeOracle{undefined: true}}
	exec := &fakeExecutor{signal: 0} // no trap: hidden-instruction candidate
	sink := &fakeSink{}
	cfg := Config{Start: 0, End: 0, Set: armenc.A32}
	d := New(cfg, pair, nil, exec, sink, noopLogger())

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if sink.hiddenCalls != 1 {
		t.Errorf("hiddenCalls = %d, expected 1", sink.hiddenCalls)
	}
}

func TestRunNoExecCountsCheckedOnly(t *testing.T) {
	pair := &oracle.Pair{First: &fakeOracle{undefined: true}, Second: &fakeOracle{undefined: true}}
	sink := &fakeSink{}
	cfg := Config{Start: 0, End: 0x3, Mask: 0xffffffff, Set: armenc.A32, NoExec: true}
	d := New(cfg, pair, nil, nil, sink, noopLogger())

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	counters := d.Counters()
	if counters.Checked != 4 || !counters.Valid() {
		t.Errorf("counters = %+v, expected Checked=4 and a valid invariant", counters)
	}
}
