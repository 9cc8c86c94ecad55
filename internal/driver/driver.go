/*
 * ARM fuzzer - top-level run loop.
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

// Package driver composes the iterator, filter, oracle pair, and execution
// backend into the fuzzer's per-encoding loop, modeled on
// rcornwell-S370's emu/core run loop: one sequential step function called
// until the work is exhausted or the caller cancels, with periodic status
// publication standing in for core's periodic event-queue ticking.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rcornwell/armfuzz/internal/armenc"
	"github.com/rcornwell/armfuzz/internal/oracle"
	"github.com/rcornwell/armfuzz/internal/statuslog"
)

// StatusUpdateRate is the number of encodings between status-snapshot
// publications, per spec §4.6 step 5.
const StatusUpdateRate = 10000

// ExecResult is the architecture-neutral outcome of running one encoding
// through whichever backend is selected, matching spec §3's
// {insn, signal, died, regs_before, regs_after} execution-result shape.
type ExecResult struct {
	Signal     int
	Died       bool
	RegsBefore string
	RegsAfter  string
}

// Executor runs one encoding and reports how it terminated. Both the
// in-process (internal/exec32) and traced-child (internal/trace)
// backends are adapted to this interface by the caller that wires up the
// Driver, keeping this package free of cgo and ptrace build constraints.
type Executor interface {
	Execute(insn uint32) (ExecResult, error)
}

// Filter decides whether an encoding should be skipped before execution,
// implemented by internal/opctable.Filter bound to a fixed architecture.
type Filter func(insn uint32) bool

// Sink persists status snapshots and log records. internal/statuslog.Sink
// satisfies this.
type Sink interface {
	WriteStatus(status statuslog.Status) error
	LogDiscrepancy(insn uint32, csText, libopcText string) error
	LogHidden(insn uint32, signal int, regsBefore, regsAfter string) error
}

// Counters accumulates the invariant #6 terms: checked + skipped +
// filtered == visited; hidden encodings are also counted in checked.
type Counters struct {
	Visited       uint64
	Checked       uint64
	Skipped       uint64
	Filtered      uint64
	Discrepancies uint64
	HiddenFound   uint64
}

// Valid reports invariant #6.
func (c Counters) Valid() bool {
	return c.Checked+c.Skipped+c.Filtered == c.Visited
}

// Config is the subset of fuzzconfig.Config the driver's loop needs,
// duplicated as plain fields (rather than importing fuzzconfig) to keep
// this package's dependency surface to exactly what §4.6 requires.
type Config struct {
	Start    uint32
	End      uint32
	Mask     uint32
	Set      armenc.InsnSet
	NoExec   bool
	ExecAll  bool
	FilterOn bool
	Discreps bool
}

// Driver orchestrates one fuzzing run end-to-end.
type Driver struct {
	cfg      Config
	oracles  *oracle.Pair
	filter   Filter
	executor Executor
	sink     Sink
	log      *slog.Logger

	counters Counters
	started  time.Time
	lastTick time.Time
	lastN    uint64
}

// New builds a Driver. executor may be nil when cfg.NoExec is set, since
// no-exec runs never call it.
func New(cfg Config, oracles *oracle.Pair, filter Filter, executor Executor, sink Sink, log *slog.Logger) *Driver {
	return &Driver{cfg: cfg, oracles: oracles, filter: filter, executor: executor, sink: sink, log: log}
}

// Counters returns the accumulated result counters.
func (d *Driver) Counters() Counters { return d.counters }

// Run drives the masked-increment iterator from cfg.Start to cfg.End
// through the classify/filter/execute pipeline until the range is
// exhausted or ctx is cancelled, implementing spec §4.6 steps 1-5.
func (d *Driver) Run(ctx context.Context) error {
	d.started = time.Now()
	d.lastTick = d.started

	thumb := d.cfg.Set == armenc.Thumb
	it := armenc.NewIterator(d.cfg.Start, d.cfg.End, d.cfg.Mask, thumb)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		insn, ok := it.Next()
		if !ok {
			break
		}
		d.counters.Visited++

		if err := d.step(ctx, insn); err != nil {
			return err
		}

		if d.counters.Visited%StatusUpdateRate == 0 {
			if err := d.publishStatus(insn, "", ""); err != nil {
				return err
			}
		}
	}

	return d.publishStatus(d.cfg.End, "", "")
}

// step runs one encoding through steps 1-4 of §4.6.
func (d *Driver) step(ctx context.Context, insn uint32) error {
	verdict, err := d.oracles.Classify(ctx, insn, d.cfg.Set)
	if err != nil {
		return fmt.Errorf("driver: oracle classification for %s: %w", hex(insn), err)
	}

	if verdict.Discrepancy {
		d.counters.Discrepancies++
		if d.cfg.Discreps {
			if err := d.sink.LogDiscrepancy(insn, verdict.First.Text, verdict.Second.Text); err != nil {
				return fmt.Errorf("driver: log discrepancy: %w", err)
			}
		}
	}

	if !verdict.BothUndefined && !d.cfg.ExecAll {
		d.counters.Skipped++
		return nil
	}

	if d.cfg.NoExec {
		d.counters.Checked++
		return nil
	}

	if d.cfg.FilterOn && !d.cfg.ExecAll && d.filter != nil && d.filter(insn) {
		d.counters.Filtered++
		return nil
	}

	result, err := d.executor.Execute(insn)
	if err != nil {
		return fmt.Errorf("driver: execute %s: %w", hex(insn), err)
	}

	if result.Died {
		d.log.Warn("traced child died", "insn", hex(insn))
		d.counters.Checked++
		return nil
	}

	if !isIllegalInstruction(result.Signal) {
		d.counters.HiddenFound++
		if err := d.sink.LogHidden(insn, result.Signal, result.RegsBefore, result.RegsAfter); err != nil {
			return fmt.Errorf("driver: log hidden instruction: %w", err)
		}
	}
	d.counters.Checked++
	return nil
}

// sigill is the POSIX SIGILL number on linux/arm and linux/arm64.
const sigill = 4

func isIllegalInstruction(signal int) bool { return signal == sigill }

func (d *Driver) publishStatus(current uint32, csText, libopcText string) error {
	now := time.Now()
	elapsed := now.Sub(d.lastTick).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(d.counters.Visited-d.lastN) / elapsed
	}
	d.lastTick = now
	d.lastN = d.counters.Visited

	return d.sink.WriteStatus(statuslog.Status{
		CurrentInsn:   current,
		CSText:        csText,
		LibopcText:    libopcText,
		Visited:       d.counters.Visited,
		Checked:       d.counters.Checked,
		Skipped:       d.counters.Skipped,
		Filtered:      d.counters.Filtered,
		Discrepancies: d.counters.Discrepancies,
		HiddenFound:   d.counters.HiddenFound,
		InsnsPerSec:   rate,
		Started:       d.started,
		RangeEnd:      d.cfg.End,
	})
}

func hex(insn uint32) string {
	return fmt.Sprintf("%#08x", insn)
}
