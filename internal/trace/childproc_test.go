/*
 * ARM fuzzer - traced-child loop body tests.
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
	"encoding/binary"
	"testing"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

func TestBuildLoopPageThumbWordsAreValidThumb16Pairs(t *testing.T) {
	page := buildLoopPage(armenc.Thumb)
	if len(page) != 12 {
		t.Fatalf("page length = %d, expected 12", len(page))
	}

	bp := binary.LittleEndian.Uint32(page[0:])
	if bp != breakpointThumb {
		t.Errorf("word 0 = %#x, expected breakpointThumb %#x", bp, breakpointThumb)
	}
	// Low halfword (fetched first) must be the UDF breakpoint.
	if lo := bp & 0xffff; lo != 0xde01 {
		t.Errorf("breakpoint low halfword = %#x, expected UDF #1 (0xde01)", lo)
	}

	nop := binary.LittleEndian.Uint32(page[4:])
	if lo := nop & 0xffff; lo != 0xbf00 {
		t.Errorf("nop slot low halfword = %#x, expected Thumb NOP (0xbf00)", lo)
	}
	if hi := nop >> 16; hi != 0xbf00 {
		t.Errorf("nop slot high halfword = %#x, expected Thumb NOP (0xbf00)", hi)
	}

	branch := binary.LittleEndian.Uint32(page[8:])
	lo := branch & 0xffff
	if lo>>11 != 0b11100 {
		t.Errorf("branch low halfword %#x is not a T1 unconditional branch (top5 bits != 11100)", lo)
	}
	imm11 := int32(lo & 0x7ff)
	if imm11 >= 0x400 { // sign-extend 11 bits
		imm11 -= 0x800
	}
	// Target = (word-2 address) + 4 (breakpoint word, offset 0) relative
	// to this instruction's PC (instr_addr + 4, itself at offset 8).
	const branchInstrOffset = 8
	const pcBias = 4
	target := branchInstrOffset + pcBias + int32(imm11)*2
	if target != 0 {
		t.Errorf("branch targets offset %d from loop start, expected 0", target)
	}
}

func TestBuildLoopPageA32Unchanged(t *testing.T) {
	page := buildLoopPage(armenc.A32)
	bp := binary.LittleEndian.Uint32(page[0:])
	if bp != breakpointA32 {
		t.Errorf("word 0 = %#x, expected breakpointA32 %#x", bp, breakpointA32)
	}
	nop := binary.LittleEndian.Uint32(page[4:])
	if nop != loopNop {
		t.Errorf("word 1 = %#x, expected loopNop %#x", nop, loopNop)
	}
	branch := binary.LittleEndian.Uint32(page[8:])
	if branch != a32BranchBack {
		t.Errorf("word 2 = %#x, expected a32BranchBack %#x", branch, a32BranchBack)
	}
}
