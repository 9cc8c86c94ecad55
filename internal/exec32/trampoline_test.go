/*
 * ARM fuzzer - trampoline encoding tests.
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

package exec32

import (
	"encoding/binary"
	"testing"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

func TestA32MovZero(t *testing.T) {
	if got := a32MovZero(0); got != 0xe3a00000 {
		t.Errorf("a32MovZero(0) = %#x, expected: %#x", got, 0xe3a00000)
	}
	if got := a32MovZero(12); got != 0xe3a0c000 {
		t.Errorf("a32MovZero(12) = %#x, expected: %#x", got, 0xe3a0c000)
	}
}

func TestAArch64Movz64(t *testing.T) {
	if got := aarch64Movz64(0); got != 0xd2800000 {
		t.Errorf("aarch64Movz64(0) = %#x, expected: %#x", got, 0xd2800000)
	}
	if got := aarch64Movz64(30); got != 0xd280001e {
		t.Errorf("aarch64Movz64(30) = %#x, expected: %#x", got, 0xd280001e)
	}
}

// TestAArch64StorePair64PreIndex checks the known literal encoding of
// "stp x29, x30, [sp, #-16]!" used as the AArch64 trampoline prologue.
func TestAArch64StorePair64PreIndex(t *testing.T) {
	got := aarch64StorePair64(29, 30, -16/8, true)
	want := uint32(0xa9bf7bfd)
	if got != want {
		t.Errorf("aarch64StorePair64(29,30,-2,true) = %#x, expected: %#x", got, want)
	}
}

// TestAArch64LoadPair64PostIndex checks the corresponding epilogue
// "ldp x29, x30, [sp], #16".
func TestAArch64LoadPair64PostIndex(t *testing.T) {
	got := aarch64LoadPair64(29, 30, 16/8, false)
	want := uint32(0xa8c17bfd)
	if got != want {
		t.Errorf("aarch64LoadPair64(29,30,2,false) = %#x, expected: %#x", got, want)
	}
}

func TestBuildA32SlotIsNop(t *testing.T) {
	tr := Build(armenc.A32)
	slot := binary.LittleEndian.Uint32(tr.Bytes[tr.SlotOffset:])
	if slot != a32Nop {
		t.Errorf("a32 trampoline slot = %#x, expected nop %#x", slot, uint32(a32Nop))
	}
	if tr.SlotOffset%4 != 0 || tr.SlotOffset+4 > len(tr.Bytes) {
		t.Fatalf("a32 slot offset %d out of bounds for %d-byte trampoline", tr.SlotOffset, len(tr.Bytes))
	}
}

func TestBuildAArch64SlotAligned(t *testing.T) {
	tr := Build(armenc.AArch64)
	if tr.SlotOffset%4 != 0 || tr.SlotOffset+4 > len(tr.Bytes) {
		t.Fatalf("aarch64 slot offset %d out of bounds for %d-byte trampoline", tr.SlotOffset, len(tr.Bytes))
	}
	if len(tr.Bytes)%4 != 0 {
		t.Errorf("aarch64 trampoline length %d is not word-aligned", len(tr.Bytes))
	}
}

func TestBuildEndsInReturn(t *testing.T) {
	a32 := Build(armenc.A32)
	last := binary.LittleEndian.Uint32(a32.Bytes[len(a32.Bytes)-4:])
	if last != a32BxLR {
		t.Errorf("a32 trampoline last word = %#x, expected bx lr %#x", last, uint32(a32BxLR))
	}

	a64 := Build(armenc.AArch64)
	last = binary.LittleEndian.Uint32(a64.Bytes[len(a64.Bytes)-4:])
	if last != aarch64Ret {
		t.Errorf("aarch64 trampoline last word = %#x, expected ret %#x", last, uint32(aarch64Ret))
	}
}
