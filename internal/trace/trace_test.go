/*
 * ARM fuzzer - traced-child stepping algorithm tests.
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

package trace

import (
	"context"
	"testing"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

// fakeTracee simulates a loop-body tracee entirely in memory: Continue
// advances a tiny state machine instead of touching a real process, so
// Child.Step's algorithm can be exercised without ptrace or root.
type fakeTracee struct {
	mem         map[uint64]uint32
	regs        Regs
	loopAddr    uint64
	slotAddr    uint64
	atSlotFault bool // true when the pending stop should look like a fault on the slot itself
	faultSignal int
	died        bool
	closed      bool
}

func newFakeTracee(loopAddr uint64) *fakeTracee {
	return &fakeTracee{
		mem:      map[uint64]uint32{},
		regs:     Regs{PC: loopAddr},
		loopAddr: loopAddr,
		slotAddr: loopAddr + 4,
	}
}

func (f *fakeTracee) ReadRegs() (Regs, error)      { return f.regs, nil }
func (f *fakeTracee) WriteRegs(r Regs) error       { f.regs = r; return nil }
func (f *fakeTracee) ReadWord(a uint64) (uint32, error) { return f.mem[a], nil }
func (f *fakeTracee) WriteWord(a uint64, w uint32) error { f.mem[a] = w; return nil }
func (f *fakeTracee) Kill() error                  { f.died = true; return nil }
func (f *fakeTracee) Close() error                 { f.closed = true; return nil }

func (f *fakeTracee) Continue(signal int) error { return nil }

func (f *fakeTracee) Wait() (int, bool, error) {
	if f.died {
		return 0, true, nil
	}
	if f.atSlotFault {
		f.regs.PC = f.slotAddr
		f.atSlotFault = false
		return f.faultSignal, false, nil
	}
	f.regs.PC = f.loopAddr
	return sigtrap, false, nil
}

func TestStepCleanExecution(t *testing.T) {
	tracee := newFakeTracee(0x1000)
	child := NewChild(tracee, armenc.A32, 0)

	result, err := child.Step(context.Background(), 0xe3a00000) // mov r0, #0
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if result.Signal != 0 {
		t.Errorf("Signal = %d, expected 0 for clean execution", result.Signal)
	}
	if result.Died {
		t.Errorf("Died = true, expected false")
	}
	if tracee.mem[tracee.slotAddr] != 0xe3a00000 {
		t.Errorf("slot word = %#x, expected the written encoding", tracee.mem[tracee.slotAddr])
	}
}

func TestStepFaultingEncoding(t *testing.T) {
	tracee := newFakeTracee(0x2000)
	tracee.atSlotFault = true
	tracee.faultSignal = 11 // SIGSEGV
	child := NewChild(tracee, armenc.A32, 0)

	result, err := child.Step(context.Background(), 0xe5901000) // ldr r1, [r0]
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if result.Signal != 11 {
		t.Errorf("Signal = %d, expected 11 (SIGSEGV)", result.Signal)
	}
	if result.Died {
		t.Errorf("Died = true, expected false")
	}
}

func TestStepChildDied(t *testing.T) {
	tracee := newFakeTracee(0x3000)
	tracee.died = true
	child := NewChild(tracee, armenc.AArch64, 0)

	result, err := child.Step(context.Background(), 0xd4200000)
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if !result.Died {
		t.Errorf("Died = false, expected true")
	}
}

func TestWriteSlotThumb16PacksLowHalfword(t *testing.T) {
	tracee := newFakeTracee(0x4000)
	child := &Child{tracee: tracee, set: armenc.Thumb, slotAddr: 0x4004, slotKnown: true}

	// 0xbe000000: a 16-bit Thumb candidate (BKPT #0, canonically left-
	// aligned in the high 16 bits per opctable's convention).
	if err := child.writeSlot(0xbe000000); err != nil {
		t.Fatalf("writeSlot returned error: %v", err)
	}

	got := tracee.mem[0x4004]
	want := uint32(0xbf00be00) // NOP padding high, candidate low (fetched first)
	if got != want {
		t.Errorf("slot word = %#x, expected %#x", got, want)
	}
}

func TestWriteSlotThumb32SwapsHalfwords(t *testing.T) {
	tracee := newFakeTracee(0x5000)
	child := &Child{tracee: tracee, set: armenc.Thumb, slotAddr: 0x5004, slotKnown: true}

	insn := uint32(0xf000b800) // a 32-bit Thumb-2 encoding (BL-shaped bit pattern)
	if !armenc.IsThumb32(insn) {
		t.Fatalf("test fixture %#x is not recognized as 32-bit Thumb", insn)
	}
	if err := child.writeSlot(insn); err != nil {
		t.Fatalf("writeSlot returned error: %v", err)
	}
	want := uint32(0xb800f000) // first halfword (0xf000) low, fetched first
	if got := tracee.mem[0x5004]; got != want {
		t.Errorf("slot word = %#x, expected the 32-bit Thumb encoding halfword-swapped (%#x)", got, want)
	}
}

func TestWriteSlotA32PassesThrough(t *testing.T) {
	tracee := newFakeTracee(0x6000)
	child := &Child{tracee: tracee, set: armenc.A32, slotAddr: 0x6004, slotKnown: true}

	insn := uint32(0xe3a00000) // mov r0, #0
	if err := child.writeSlot(insn); err != nil {
		t.Fatalf("writeSlot returned error: %v", err)
	}
	if got := tracee.mem[0x6004]; got != insn {
		t.Errorf("slot word = %#x, expected the A32 encoding unchanged (%#x)", got, insn)
	}
}

func TestUserModeCPSR(t *testing.T) {
	got := userModeCPSR(0xffffffff, false)
	if got&0x1f != 0x10 {
		t.Errorf("userModeCPSR mode bits = %#x, expected USR32 (0x10)", got&0x1f)
	}
	if got&(1<<5) != 0 {
		t.Errorf("userModeCPSR Thumb bit set for A32 request")
	}

	got = userModeCPSR(0, true)
	if got&(1<<5) == 0 {
		t.Errorf("userModeCPSR Thumb bit clear for Thumb request")
	}
}
