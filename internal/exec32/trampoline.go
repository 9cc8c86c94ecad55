/*
 * ARM fuzzer - Architecture-conditional trampoline byte arrays.
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

	"github.com/rcornwell/armfuzz/internal/armenc"
)

// a32MovZero returns "MOV rd, #0" (cond=AL, opcode=MOV, S=0, imm12=0).
func a32MovZero(rd uint32) uint32 {
	return 0xe3a00000 | (rd << 12)
}

const (
	a32PushR0R12LR = 0xe92d5fff // stmfd sp!, {r0-r12, lr}
	a32PopR0R12LR  = 0xe8bd5fff // ldmfd sp!, {r0-r12, lr}
	a32BxLR        = 0xe12fff1e // bx lr
	a32MrsR0CPSR   = 0xe10f0000 // mrs r0, cpsr
	a32BicUserMode = 0xe3c0001f // bic r0, r0, #0x1f (clear mode bits)
	a32OrrUserMode = 0xe3800010 // orr r0, r0, #0x10 (USR32)
	a32MsrCPSRc    = 0xe129f000 // msr cpsr_fc, r0
	a32VmovS0SP    = 0xee00da10 // vmov s0, sp (save SP into an FP register)
	a32VmovSPS0    = 0xee10da10 // vmov sp, s0 (restore SP from the FP register)
	a32Nop         = 0xe1a00000 // mov r0, r0
)

// aarch64Movz64 returns "MOVZ Xd, #0" (sf=1, opc=10, hw=0, imm16=0).
func aarch64Movz64(rd uint32) uint32 {
	return 0xd2800000 | (rd & 0x1f)
}

// aarch64StorePair64 and aarch64LoadPair64 encode STP/LDP Xt, Xt2, [SP, #imm]
// in the pre-indexed (store, writeback on entry) or post-indexed (load,
// writeback on exit) forms used to save and restore the frame/link and
// callee-saved registers around the test call. imm7 is in units of 8 bytes, matching
// the instruction's own scaled-immediate field.
func aarch64StorePair64(rt, rt2 uint32, imm7 int32, preIndex bool) uint32 {
	return aarch64Pair(0, rt, rt2, imm7, preIndex)
}

func aarch64LoadPair64(rt, rt2 uint32, imm7 int32, preIndex bool) uint32 {
	return aarch64Pair(1, rt, rt2, imm7, preIndex)
}

func aarch64Pair(load, rt, rt2 uint32, imm7 int32, preIndex bool) uint32 {
	idx := uint32(0b001) // post-index, writeback after access
	if preIndex {
		idx = 0b011 // pre-index, writeback before access
	}
	return (0b10 << 30) | (0b101 << 27) | (idx << 23) | (load << 22) |
		((uint32(imm7) & 0x7f) << 15) | ((rt2 & 0x1f) << 10) | (31 << 5) | (rt & 0x1f)
}

const aarch64Ret = 0xd65f03c0 // ret (x30)

// Trampoline is a realized prologue/slot/epilogue byte sequence and the
// byte offset of the writable instruction slot within it.
type Trampoline struct {
	Bytes      []byte
	SlotOffset int
}

func appendWord(b []byte, w uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], w)
	return append(b, buf[:]...)
}

// Build assembles the trampoline for set (A32 or AArch64). The prologue
// saves the registers the caller relies on (A32: r0-r12 and lr; AArch64:
// x29/x30 and x19-x28) and zeroes the general registers so the test
// instruction cannot observe or corrupt fuzzer
// state; the epilogue mirrors it. On A32 the prologue additionally forces
// user-mode CPSR and stashes SP in a floating-point register so a
// corrupted SP can be recovered before the epilogue's stack-relative
// restores run.
func Build(set armenc.InsnSet) Trampoline {
	if set == armenc.AArch64 {
		return buildAArch64()
	}
	return buildA32()
}

func buildA32() Trampoline {
	var b []byte
	b = appendWord(b, a32PushR0R12LR)
	b = appendWord(b, a32VmovS0SP)
	b = appendWord(b, a32MrsR0CPSR)
	b = appendWord(b, a32BicUserMode)
	b = appendWord(b, a32OrrUserMode)
	b = appendWord(b, a32MsrCPSRc)
	for r := uint32(0); r <= 12; r++ {
		b = appendWord(b, a32MovZero(r))
	}

	slotOffset := len(b)
	b = appendWord(b, a32Nop)

	b = appendWord(b, a32VmovSPS0)
	b = appendWord(b, a32PopR0R12LR)
	b = appendWord(b, a32BxLR)

	return Trampoline{Bytes: b, SlotOffset: slotOffset}
}

func buildAArch64() Trampoline {
	var b []byte
	b = appendWord(b, aarch64StorePair64(29, 30, -16/8, true)) // stp x29, x30, [sp, #-16]!
	for r := uint32(19); r <= 27; r += 2 {
		b = appendWord(b, aarch64StorePair64(r, r+1, -16/8, true)) // stp xr, xr+1, [sp, #-16]!
	}
	for r := uint32(0); r <= 28; r += 2 {
		if r == 28 {
			b = appendWord(b, aarch64Movz64(r))
			break
		}
		b = appendWord(b, aarch64Movz64(r))
		b = appendWord(b, aarch64Movz64(r+1))
	}

	slotOffset := len(b)
	b = appendWord(b, 0xd503201f) // nop placeholder, overwritten before first use

	for r := uint32(27); r >= 19; r -= 2 {
		b = appendWord(b, aarch64LoadPair64(r, r+1, 16/8, false)) // ldp xr, xr+1, [sp], #16
	}
	b = appendWord(b, aarch64LoadPair64(29, 30, 16/8, false)) // ldp x29, x30, [sp], #16
	b = appendWord(b, aarch64Ret)

	return Trampoline{Bytes: b, SlotOffset: slotOffset}
}
