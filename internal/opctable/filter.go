/*
 * ARM fuzzer - SBO and SBZ unpredictable-encoding filter.
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

package opctable

// sboSBZViolation searches table in declaration order for the first entry
// whose non-SBO/SBZ bits match insn. If found, it reports whether the SBO
// bits also match exactly: an exact match means insn is a legal encoding
// (do not skip); a non-exact match means insn sets the fixed bits
// incorrectly (constrained-unpredictable, skip). If no entry's non-SBO
// bits match, it reports (false, false): no verdict from this table.
func sboSBZViolation(insn uint32, table []Entry, thumb16 bool) (violation, matched bool) {
	for _, e := range table {
		value, mask, sbMask := e.Value, e.Mask, e.SBMask
		if thumb16 {
			value <<= 16
			mask <<= 16
			sbMask <<= 16
		}
		maskedInsn := insn & mask
		sbMaskedInsn := maskedInsn &^ sbMask
		sbMaskedValue := value &^ sbMask
		if sbMaskedInsn == sbMaskedValue {
			return maskedInsn != value, true
		}
	}
	return false, false
}

// HasIncorrectSBBits applies the SBO/SBZ rule from spec §4.2 item 3: for
// the A32 base and coprocessor tables (in that order, OR'd), or for the
// matching Thumb table, find the first non-SBO match and report whether
// its fixed bits are also satisfied exactly.
func HasIncorrectSBBits(insn uint32, thumb bool, thumb32 bool) bool {
	if thumb {
		table := Thumb16Opcodes
		isThumb16 := true
		if thumb32 {
			table = Thumb32Opcodes
			isThumb16 = false
		}
		violation, _ := sboSBZViolation(insn, table, isThumb16)
		return violation
	}

	if v, matched := sboSBZViolation(insn, BaseOpcodes, false); matched {
		if v {
			return true
		}
	}
	if v, matched := sboSBZViolation(insn, CoprocOpcodes, false); matched {
		return v
	}
	return false
}

// ldpswMask1/ldpswValue1 and ldpswMask2/ldpswValue2 are the two base
// encodings of AArch64 LDPSW (signed load pair, 32-bit), pre- and
// post-indexed vs. offset forms.
const (
	ldpswMask1  = 0xfec00000
	ldpswValue1 = 0x68c00000
	ldpswMask2  = 0xffc00000
	ldpswValue2 = 0x69400000
)

// IsUnpredictableLDPSW implements spec §4.2 item 1 (AArch64 only): LDPSW is
// unpredictable when a writeback destination aliases the base register, or
// when both destinations alias each other on a load.
func IsUnpredictableLDPSW(insn uint32) bool {
	if insn&ldpswMask1 != ldpswValue1 && insn&ldpswMask2 != ldpswValue2 {
		return false
	}
	t := insn & 0x1f
	n := (insn >> 5) & 0x1f
	t2 := (insn >> 10) & 0x1f

	writeback := insn&(1<<23) != 0
	load := insn&(1<<22) != 0

	if writeback && (t == n || t2 == n) && n != 31 {
		return true
	}
	if load && t == t2 {
		return true
	}
	return false
}

// undefBreakpointMask/Value is A32 `UDF #16` under any condition prefix:
// the kernel hooks this specific encoding as a breakpoint trap, not an
// illegal-instruction trap, which would confuse the executor.
const (
	undefBreakpointMask  = 0x0fffffff
	undefBreakpointValue = 0x07f001f0
)

// IsUndefBreakpoint implements spec §4.2 item 2 (A32 only).
func IsUndefBreakpoint(insn uint32) bool {
	return insn&undefBreakpointMask == undefBreakpointValue
}

// Filter implements the combined skip decision of spec §4.2: true means
// skip execution of insn. aarch64 selects the LDPSW rule; thumb/thumb32
// select which opcode table backs the SBO/SBZ check.
func Filter(insn uint32, aarch64, thumb, thumb32 bool) bool {
	if aarch64 && IsUnpredictableLDPSW(insn) {
		return true
	}
	if !aarch64 && !thumb && IsUndefBreakpoint(insn) {
		return true
	}
	return HasIncorrectSBBits(insn, thumb, thumb32)
}
