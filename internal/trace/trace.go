/*
 * ARM fuzzer - traced-child execution backend.
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

// Package trace runs candidate encodings in a traced child process instead
// of this process's own address space, isolating the fuzzer from any
// memory side effects an encoding might have. The child sits in a tight
// breakpoint/nop/branch loop; the tracer overwrites the loop's nop slot
// with the candidate encoding, lets the child run one iteration, and reads
// back whichever signal stopped it.
package trace

import (
	"context"
	"fmt"
	"time"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

// Regs is an architecture-neutral view over a tracee's general-purpose
// registers and program counter, wide enough to hold either an A32/Thumb
// register file or an AArch64 one.
type Regs struct {
	GPR  [31]uint64 // X0-X30 on AArch64; R0-R12, LR (and padding) on A32/Thumb
	SP   uint64     // stack pointer, kept outside GPR on both architectures
	PC   uint64
	CPSR uint64 // mode/condition bits; unused on AArch64
}

// Tracee is the thin capability trait over the platform ptrace primitive
// that the algorithm in Child.Step is written against. A linux/arm64 and a
// linux/arm implementation satisfy it; both are driven by the same
// architecture-portable stepping logic.
type Tracee interface {
	// ReadRegs reads the full register file.
	ReadRegs() (Regs, error)
	// WriteRegs writes the full register file.
	WriteRegs(Regs) error
	// ReadWord reads one machine word at addr in the tracee's address space.
	ReadWord(addr uint64) (uint32, error)
	// WriteWord writes one machine word at addr in the tracee's address space.
	WriteWord(addr uint64, word uint32) error
	// Continue resumes the tracee, delivering signal (0 for none).
	Continue(signal int) error
	// Wait blocks until the tracee stops or exits. stopSignal is the
	// signal that caused the stop; exited reports process termination.
	Wait() (stopSignal int, exited bool, err error)
	// Kill terminates the tracee immediately.
	Kill() error
	// Close releases any resources (pipes, the underlying process).
	Close() error
}

// Breakpoint words for the child loop's own {breakpoint; nop; branch back}
// body. AArch64 uses BRK #0, A32 uses UDF #16, Thumb uses UDF #1 packed
// into the low halfword with a 16-bit NOP in the high halfword. Each traps
// via SIGTRAP without polluting the kernel log, and is the only
// instruction in the loop that ever naturally traps.
const (
	breakpointAArch64 = 0xd4200000 // brk #0
	breakpointA32     = 0xe7f001f0 // udf #16
	breakpointThumb   = 0xbf00de01 // udf #1 ; nop (low halfword executes first)
	loopNop           = 0xe1a00000 // mov r0, r0 (A32); unused on AArch64/Thumb loop bodies
	sigtrap           = 5          // SIGTRAP, avoids importing syscall just for one constant
)

// breakpointWord returns the loop body's breakpoint instruction for set.
func breakpointWord(set armenc.InsnSet) uint32 {
	switch set {
	case armenc.AArch64:
		return breakpointAArch64
	case armenc.Thumb:
		return breakpointThumb
	default:
		return breakpointA32
	}
}

// userModeCPSR clears the mode bits of cpsr and sets USR32, OR'd with the
// Thumb bit when the candidate encoding is a Thumb encoding, per §4.5
// step 4.
func userModeCPSR(cpsr uint64, thumb bool) uint64 {
	const modeMask = 0x1f
	const usr32 = 0x10
	const thumbBit = 1 << 5
	cpsr &^= modeMask
	cpsr |= usr32
	if thumb {
		cpsr |= thumbBit
	} else {
		cpsr &^= thumbBit
	}
	return cpsr
}

// Result mirrors spec §4 execution-result shape: the signal raised (0 if
// the encoding ran to completion), whether the tracee died and must be
// respawned, and the register state before and after for diagnostics.
type Result struct {
	Signal    int
	Died      bool
	RegsBefore Regs
	RegsAfter  Regs
}

// Child drives one traced tracee through the per-encoding algorithm from
// spec §4.5: lazily resolve the loop's instruction slot, write the
// candidate encoding into it, zero the general registers, run one
// iteration, and classify the stop.
type Child struct {
	tracee     Tracee
	set        armenc.InsnSet
	slotAddr   uint64
	slotKnown  bool
	watchdog   time.Duration
}

// NewChild wraps an already-attached Tracee. watchdog is the per-encoding
// wait timeout from §5's permitted extension; 0 disables it.
func NewChild(tracee Tracee, set armenc.InsnSet, watchdog time.Duration) *Child {
	return &Child{tracee: tracee, set: set, watchdog: watchdog}
}

// Step executes one candidate encoding and returns its classification.
// ctx is used only to bound the wait primitives when c.watchdog > 0; the
// Tracee's Wait is otherwise non-cancellable, matching §5's "waits are
// non-cancellable" base behavior.
func (c *Child) Step(ctx context.Context, insn uint32) (Result, error) {
	before, err := c.tracee.ReadRegs()
	if err != nil {
		return Result{}, fmt.Errorf("trace: read regs: %w", err)
	}

	if !c.slotKnown {
		// before.PC is where the child's own loop breakpoint trapped; the
		// nop slot the tracer overwrites follows it by one instruction.
		c.slotAddr = before.PC + 4
		c.slotKnown = true
	}

	if err := c.writeSlot(insn); err != nil {
		return Result{}, fmt.Errorf("trace: write slot: %w", err)
	}

	ready := before
	for i := range ready.GPR {
		ready.GPR[i] = 0
	}
	ready.SP = 0
	ready.PC = c.slotAddr
	if c.set != armenc.AArch64 {
		ready.CPSR = userModeCPSR(ready.CPSR, c.set == armenc.Thumb)
	}
	if err := c.tracee.WriteRegs(ready); err != nil {
		return Result{}, fmt.Errorf("trace: write regs: %w", err)
	}

	signum, died, err := c.continueAndWait(ctx)
	if err != nil {
		return Result{}, err
	}
	if died {
		return Result{Died: true, RegsBefore: before}, nil
	}

	after, err := c.tracee.ReadRegs()
	if err != nil {
		return Result{}, fmt.Errorf("trace: read regs after stop: %w", err)
	}

	result := Result{Signal: signum, RegsBefore: before, RegsAfter: after}

	if after.PC == c.slotAddr {
		// The stop happened synchronously on the injected instruction
		// itself: this signal is the real verdict. Back PC up one word
		// onto the loop's own breakpoint, then continue once more so the
		// child stops there, ready for the next cycle.
		rewound := after
		rewound.PC = c.slotAddr - 4
		if err := c.tracee.WriteRegs(rewound); err != nil {
			return Result{}, fmt.Errorf("trace: rewind pc: %w", err)
		}
		if _, died, err := c.continueAndWait(ctx); err != nil {
			return Result{}, err
		} else if died {
			result.Died = true
			return result, nil
		}
		result.Signal = signum
		return result, nil
	}

	// The stop signal came from the loop's own breakpoint on the next
	// iteration: the injected encoding ran cleanly.
	if signum == sigtrap {
		result.Signal = 0
	}
	return result, nil
}

// writeSlot writes the candidate encoding into the loop's instruction slot.
// insn's canonical form left-aligns a 16-bit Thumb-1 candidate in the high
// 16 bits (opctable's convention), and holds a 32-bit Thumb-2 candidate's
// first halfword there too; the slot, fetched low-halfword-first, needs
// the opposite layout per spec §3: a 16-bit candidate in the low 16 bits
// with 0xBF00 (NOP) padding the high 16 bits so it executes first, and a
// 32-bit candidate with its halfwords swapped (armenc.Bytes' order). A32
// and AArch64 encodings pass through unchanged.
func (c *Child) writeSlot(insn uint32) error {
	word := insn
	if c.set == armenc.Thumb {
		if armenc.IsThumb32(insn) {
			word = insn<<16 | insn>>16
		} else {
			word = (uint32(0xbf00) << 16) | (insn >> 16)
		}
	}
	return c.tracee.WriteWord(c.slotAddr, word)
}

func (c *Child) continueAndWait(ctx context.Context) (signum int, died bool, err error) {
	if err := c.tracee.Continue(0); err != nil {
		return 0, false, fmt.Errorf("trace: continue: %w", err)
	}

	if c.watchdog <= 0 {
		s, exited, err := c.tracee.Wait()
		return s, exited, err
	}

	type waitResult struct {
		signum int
		exited bool
		err    error
	}
	done := make(chan waitResult, 1)
	go func() {
		s, exited, err := c.tracee.Wait()
		done <- waitResult{s, exited, err}
	}()

	timer := time.NewTimer(c.watchdog)
	defer timer.Stop()
	select {
	case r := <-done:
		return r.signum, r.exited, r.err
	case <-timer.C:
		_ = c.tracee.Kill()
		<-done // reap so the goroutine above does not leak
		return 0, true, nil
	case <-ctx.Done():
		_ = c.tracee.Kill()
		<-done
		return 0, true, ctx.Err()
	}
}

// Close releases the underlying tracee.
func (c *Child) Close() error {
	return c.tracee.Close()
}
