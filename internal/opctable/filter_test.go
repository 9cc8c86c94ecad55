/*
 * ARM fuzzer - Filter test routines.
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

import "testing"

func TestSBOSBZTableEntries(t *testing.T) {
	for _, tbl := range [][]Entry{BaseOpcodes, CoprocOpcodes} {
		for _, e := range tbl {
			if e.Mask == 0 {
				continue // catch-all entry matches everything trivially
			}
			if got := sboOneEntryViolates(e, e.Value); got {
				t.Errorf("entry %#08x/%#08x: exact match flagged as violation", e.Value, e.Mask)
			}
			if e.SBMask != 0 {
				flipped := e.Value ^ e.SBMask
				if got := sboOneEntryViolates(e, flipped); !got {
					t.Errorf("entry %#08x/%#08x: SBO/SBZ bits flipped but not flagged", e.Value, e.Mask)
				}
			}
		}
	}
}

// sboOneEntryViolates checks a single entry in isolation, bypassing table
// search order, to validate invariant #3 entry-by-entry.
func sboOneEntryViolates(e Entry, insn uint32) bool {
	masked := insn & e.Mask
	sbMaskedInsn := masked &^ e.SBMask
	sbMaskedValue := e.Value &^ e.SBMask
	if sbMaskedInsn == sbMaskedValue {
		return masked != e.Value
	}
	return false
}

func TestUndefBreakpointA32(t *testing.T) {
	// Boundary scenario 3: A32 UDF #16 with filter on is skipped.
	if !Filter(0xe7f001f0, false, false, false) {
		t.Errorf("UDF #16 (0xe7f001f0) expected to be filtered")
	}
	// Any condition prefix still matches.
	if !Filter(0x07f001f0, false, false, false) {
		t.Errorf("UDF #16 with EQ condition (0x07f001f0) expected to be filtered")
	}
}

func TestMovR0R0NotFiltered(t *testing.T) {
	// Boundary scenario 4: MOV R0, R0 is a defined, exactly-matching
	// encoding; the filter must not flag it.
	if Filter(0xe1a00000, false, false, false) {
		t.Errorf("MOV R0, R0 (0xe1a00000) should not be filtered")
	}
}

func TestAArch64UDF0NotFiltered(t *testing.T) {
	// Boundary scenario 2: AArch64 UDF #0 (0x00000000) is not an LDPSW
	// encoding, so the AArch64-only filter rule leaves it unfiltered;
	// both oracles reject it as undefined and the executor takes over.
	if Filter(0x00000000, true, false, false) {
		t.Errorf("AArch64 0x00000000 should not be filtered")
	}
}

func TestUnpredictableLDPSW(t *testing.T) {
	// Writeback form with Rt == Rn: t=0, n=0, writeback bit (23) set.
	insn := uint32(ldpswValue1) | (1 << 23)
	if !IsUnpredictableLDPSW(insn) {
		t.Errorf("LDPSW with writeback aliasing base should be unpredictable")
	}

	// Offset form (no writeback), Rt != Rt2, Rn != 31: predictable.
	insn = uint32(ldpswValue2) | 1 // t=1, n=0, t2=0
	if IsUnpredictableLDPSW(insn) {
		t.Errorf("LDPSW offset form with distinct registers should be predictable")
	}

	if IsUnpredictableLDPSW(0xe1a00000) {
		t.Errorf("non-LDPSW encoding misclassified as unpredictable LDPSW")
	}
}

func TestThumb16SBOShift(t *testing.T) {
	// bkpt #0 (0xbe00) left-aligned into the high half-word, as the
	// executor stores Thumb-16 encodings.
	insn := uint32(0xbe00) << 16
	if Filter(insn, false, true, false) {
		t.Errorf("bkpt #0 should not be filtered")
	}
}
