/*
 * ARM fuzzer - Encoding type and masked-increment iterator.
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

// Package armenc provides the encoding type, the masked-increment iterator,
// and the byte-order rules shared by the oracle and executor back-ends.
package armenc

// InsnSet selects which instruction set an encoding is interpreted under.
// Thumb is only meaningful on A32; AArch64 has no Thumb mode.
type InsnSet int

const (
	A32 InsnSet = iota
	AArch64
	Thumb
)

// IsThumb32 reports whether the Thumb encoding held in the high 16 bits of i
// is a 32-bit Thumb-2 instruction rather than a 16-bit Thumb-1 one.
// Bits [31:27] of 0b11101, 0b11110 or 0b11111 mark the first halfword of a
// 32-bit encoding per the ARM architecture reference.
func IsThumb32(i uint32) bool {
	top5 := i >> 27
	return top5 == 0b11101 || top5 == 0b11110 || top5 == 0b11111
}

// Iterator produces the finite sequence of encodings in [start, end]
// reachable by the masked-increment operation described in spec §4.1:
//
//	next(i, m) = (i & ^m) | (((i | ^m) + 1) & m)
//
// mask's bits above 31 are forced to 1 so that natural 64-bit wrap-around
// after the highest 32-bit value terminates the loop.
type Iterator struct {
	cur     uint64
	end     uint64
	mask    uint64
	thumb   bool
	started bool
	done    bool
}

// NewIterator builds an iterator over [start, end] advancing only the bits
// set in mask. thumb enables the additional Thumb-16 half-word rule: while
// the current encoding is a 16-bit Thumb instruction, the upper 16 bits are
// added to mask, so once the masked low bits exhaust their space the carry
// advances the high half-word that holds the 16-bit instruction.
func NewIterator(start, end, mask uint32, thumb bool) *Iterator {
	return &Iterator{
		cur:   uint64(start),
		end:   uint64(end),
		mask:  uint64(mask) | 0xffffffff00000000,
		thumb: thumb,
	}
}

// Next returns the next encoding in the sequence and true, or (0, false)
// once the range is exhausted.
func (it *Iterator) Next() (uint32, bool) {
	if it.done {
		return 0, false
	}
	if !it.started {
		it.started = true
		if it.cur > it.end {
			it.done = true
			return 0, false
		}
		return uint32(it.cur), true
	}

	m := it.mask
	if it.thumb && !IsThumb32(uint32(it.cur)) {
		m |= 0xffff0000
	}
	next := (it.cur &^ m) | (((it.cur | ^m) + 1) & m)
	if next <= it.cur || next > it.end {
		it.done = true
		return 0, false
	}
	it.cur = next
	return uint32(it.cur), true
}
