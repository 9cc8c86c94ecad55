/*
 * ARM fuzzer - Main process.
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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/armfuzz/internal/armenc"
	"github.com/rcornwell/armfuzz/internal/driver"
	"github.com/rcornwell/armfuzz/internal/exec32"
	"github.com/rcornwell/armfuzz/internal/fuzzconfig"
	"github.com/rcornwell/armfuzz/internal/fuzzlog"
	"github.com/rcornwell/armfuzz/internal/hexfmt"
	"github.com/rcornwell/armfuzz/internal/opctable"
	"github.com/rcornwell/armfuzz/internal/oracle"
	"github.com/rcornwell/armfuzz/internal/statuslog"
	"github.com/rcornwell/armfuzz/internal/trace"
)

var Logger *slog.Logger

func main() {
	if set, ok := trace.ParseChildEnv(os.Getenv(trace.ChildEnv)); ok {
		if err := trace.RunChildLoop(set); err != nil {
			os.Exit(1)
		}
		return
	}

	optStart := getopt.StringLong("start", 's', "0x00000000", "Start of encoding range")
	optEnd := getopt.StringLong("end", 'e', "0xFFFFFFFF", "End of encoding range")
	optNoExec := getopt.BoolLong("no-exec", 'n', "Count only, do not execute")
	optLogSuffix := getopt.StringLong("log-suffix", 'l', "", "Suffix for data/log and data/status")
	optQuiet := getopt.BoolLong("quiet", 'q', "Suppress status-line rendering")
	optDiscreps := getopt.BoolLong("discreps", 'c', "Log disassembler discrepancies")
	optPtrace := getopt.BoolLong("ptrace", 'p', "Use the traced-child executor")
	optExecAll := getopt.BoolLong("exec-all", 'x', "Bypass oracle and filter gates")
	optPrintRegs := getopt.BoolLong("print-regs", 'r', "Print reg diff (traced-child only)")
	optSingleExec := getopt.BoolLong("single-exec", 'i', "Execute only the start encoding")
	optFilter := getopt.BoolLong("filter", 'f', "Enable the encoding filter")
	optMask := getopt.StringLong("mask", 'm', "0xffffffff", "Iteration mask")
	optThumb := getopt.BoolLong("thumb", 't', "Thumb instruction set (A32 only)")
	optArch := getopt.StringLong("arch", 'a', "arm64", "Target architecture: arm or arm64")
	optWatchdog := getopt.StringLong("watchdog", 'w', "2s", "Per-encoding wait timeout (traced-child)")
	optLibopcPath := getopt.StringLong("libopc-path", 0, "objdump", "Path to the libopc oracle helper")
	optMaxRespawns := getopt.IntLong("max-respawns", 0, 8, "Max consecutive traced-child respawns before giving up")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(1)
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	Logger = slog.New(fuzzlog.NewHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel}))
	slog.SetDefault(Logger)

	cfg, err := buildConfig(startupFlags{
		start: *optStart, end: *optEnd, mask: *optMask, arch: *optArch,
		thumb: *optThumb, noExec: *optNoExec, execAll: *optExecAll, filter: *optFilter,
		ptrace: *optPtrace, printRegs: *optPrintRegs, discreps: *optDiscreps, quiet: *optQuiet,
		singleExec: *optSingleExec, logSuffix: *optLogSuffix, watchdog: *optWatchdog,
		libopcPath: *optLibopcPath, maxRespawns: *optMaxRespawns,
	})
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	Logger.Info("armfuzz started", "start", hex32(cfg.Start), "end", hex32(cfg.End), "arch", *optArch)

	sink, err := statuslog.Open("data", cfg.LogSuffix)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	defer sink.Close()

	oraclePair := &oracle.Pair{
		First:  &oracle.ObjdumpOracle{Path: "objdump"},
		Second: &oracle.LibopcodesOracle{Path: cfg.LibopcPath},
	}

	var filter driver.Filter
	if cfg.Filter {
		thumb := cfg.InsnSet() == armenc.Thumb
		thumb32 := false
		aarch64 := cfg.InsnSet() == armenc.AArch64
		filter = func(insn uint32) bool {
			return opctable.Filter(insn, aarch64, thumb, thumb32)
		}
	}

	var executor driver.Executor
	if !cfg.NoExec {
		executor, err = buildExecutor(cfg)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}

	d := driver.New(driver.Config{
		Start:    cfg.Start,
		End:      cfg.End,
		Mask:     cfg.Mask,
		Set:      cfg.InsnSet(),
		NoExec:   cfg.NoExec,
		ExecAll:  cfg.ExecAll,
		FilterOn: cfg.Filter,
		Discreps: cfg.Discreps,
	}, oraclePair, filter, executor, sink, Logger)

	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		Logger.Info("shutdown requested")
		cancel()
	}()

	if err := d.Run(ctx); err != nil && err != context.Canceled {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	counters := d.Counters()
	Logger.Info("armfuzz finished",
		"visited", counters.Visited, "checked", counters.Checked,
		"skipped", counters.Skipped, "filtered", counters.Filtered,
		"discrepancies", counters.Discrepancies, "hidden", counters.HiddenFound,
		"balanced", counters.Valid())
}

type startupFlags struct {
	start, end, mask, arch, logSuffix, watchdog, libopcPath string
	thumb, noExec, execAll, filter, ptrace, printRegs       bool
	discreps, quiet, singleExec                             bool
	maxRespawns                                             int
}

func buildConfig(f startupFlags) (*fuzzconfig.Config, error) {
	start, err := fuzzconfig.ParseHex(f.start)
	if err != nil {
		return nil, fmt.Errorf("armfuzz: %w", err)
	}
	end, err := fuzzconfig.ParseHex(f.end)
	if err != nil {
		return nil, fmt.Errorf("armfuzz: %w", err)
	}
	mask, err := fuzzconfig.ParseHex(f.mask)
	if err != nil {
		return nil, fmt.Errorf("armfuzz: %w", err)
	}
	watchdog, err := time.ParseDuration(f.watchdog)
	if err != nil {
		return nil, fmt.Errorf("armfuzz: invalid watchdog duration %q: %w", f.watchdog, err)
	}

	return fuzzconfig.New(fuzzconfig.Params{
		Start: start, End: end, Mask: mask, ArchName: f.arch, Thumb: f.thumb,
		NoExec: f.noExec, ExecAll: f.execAll, Filter: f.filter, Ptrace: f.ptrace,
		PrintRegs: f.printRegs, Discreps: f.discreps, Quiet: f.quiet,
		SingleExec: f.singleExec, LogSuffix: f.logSuffix, Watchdog: watchdog,
		LibopcPath: f.libopcPath, MaxRespawns: f.maxRespawns,
	})
}

// buildExecutor adapts the selected backend (internal/exec32 or
// internal/trace) to the driver.Executor interface.
func buildExecutor(cfg *fuzzconfig.Config) (driver.Executor, error) {
	set := cfg.InsnSet()
	if cfg.Ptrace {
		child, err := spawnChild(set, cfg.Watchdog)
		if err != nil {
			return nil, fmt.Errorf("armfuzz: spawn traced child: %w", err)
		}
		return &tracedExecutor{
			child:       child,
			set:         set,
			watchdog:    cfg.Watchdog,
			maxRespawns: cfg.MaxRespawns,
			printRegs:   cfg.PrintRegs,
		}, nil
	}

	harness, err := exec32.New(set)
	if err != nil {
		return nil, fmt.Errorf("armfuzz: create in-process harness: %w", err)
	}
	return &inProcessExecutor{harness: harness}, nil
}

type inProcessExecutor struct {
	harness *exec32.Harness
}

func (e *inProcessExecutor) Execute(insn uint32) (driver.ExecResult, error) {
	result, err := e.harness.Execute(insn)
	if err != nil {
		return driver.ExecResult{}, err
	}
	return driver.ExecResult{Signal: result.Signal}, nil
}

// tracedExecutor adapts internal/trace's ptrace backend to driver.Executor.
// Per spec §7, a traced child that dies mid-run (the tracer sees a
// non-stop wait status) is respawned rather than treated as fatal, since a
// hidden instruction crashing its own process is expected fuzzer traffic,
// not a fuzzer bug. Respawns are capped at maxRespawns consecutive deaths;
// beyond the cap the run falls back to the reference "break" behavior and
// reports a terminal error.
type tracedExecutor struct {
	child       *trace.Child
	set         armenc.InsnSet
	watchdog    time.Duration
	maxRespawns int
	printRegs   bool

	consecutiveDeaths int
}

func spawnChild(set armenc.InsnSet, watchdog time.Duration) (*trace.Child, error) {
	tracee, err := trace.Spawn(os.Args[0], set)
	if err != nil {
		return nil, err
	}
	return trace.NewChild(tracee, set, watchdog), nil
}

func (e *tracedExecutor) Execute(insn uint32) (driver.ExecResult, error) {
	result, err := e.child.Step(context.Background(), insn)
	if err != nil {
		return driver.ExecResult{}, err
	}

	if result.Died {
		e.consecutiveDeaths++
		if e.consecutiveDeaths > e.maxRespawns {
			return driver.ExecResult{}, fmt.Errorf(
				"armfuzz: traced child died %d times in a row at %s, exceeding --max-respawns; "+
					"falling back to reference break behavior", e.consecutiveDeaths, hex32(insn))
		}
		Logger.Warn("traced child died, respawning", "insn", hex32(insn), "attempt", e.consecutiveDeaths)
		e.child.Close()
		child, err := spawnChild(e.set, e.watchdog)
		if err != nil {
			return driver.ExecResult{}, fmt.Errorf("armfuzz: respawn traced child: %w", err)
		}
		e.child = child
		return driver.ExecResult{Died: true}, nil
	}
	e.consecutiveDeaths = 0

	r := driver.ExecResult{Signal: result.Signal}
	if e.printRegs {
		r.RegsBefore = regsHex(result.RegsBefore)
		r.RegsAfter = regsHex(result.RegsAfter)
	}
	return r, nil
}

func regsHex(r trace.Regs) string {
	var parts []string
	for _, v := range r.GPR {
		parts = append(parts, hexfmt.Word(uint32(v)))
	}
	parts = append(parts, hexfmt.Word(uint32(r.PC)))
	return strings.Join(parts, " ")
}

func hex32(v uint32) string {
	return fmt.Sprintf("%#08x", v)
}
