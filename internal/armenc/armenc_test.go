/*
 * ARM fuzzer - Encoding and iterator test routines.
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

package armenc

import "testing"

func TestIsThumb32(t *testing.T) {
	cases := []struct {
		insn uint32
		want bool
	}{
		{0xe8000000, true},  // 11101...
		{0xf0000000, true},  // 11110...
		{0xf8000000, true},  // 11111...
		{0xbe000000, false}, // 10111... (BKPT, 16-bit)
		{0x46c00000, false}, // 01000... (MOV, 16-bit)
	}
	for _, c := range cases {
		got := IsThumb32(c.insn)
		if got != c.want {
			t.Errorf("IsThumb32(%#08x) = %v, expected: %v", c.insn, got, c.want)
		}
	}
}

func TestIteratorMaskedSweep(t *testing.T) {
	it := NewIterator(0xe1a00000, 0xffffffff, 0x0000000f, false)
	var got []uint32
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if len(got) != 16 {
		t.Fatalf("len(got) = %d, expected: 16", len(got))
	}
	for k, v := range got {
		want := 0xe1a00000 + uint32(k)
		if v != want {
			t.Errorf("got[%d] = %#08x, expected: %#08x", k, v, want)
		}
	}
}

func TestIteratorMonotonic(t *testing.T) {
	it := NewIterator(0x00000000, 0x000000ff, 0x000000ff, false)
	prev, ok := it.Next()
	if !ok {
		t.Fatalf("expected at least one encoding")
	}
	count := 1
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if v <= prev {
			t.Errorf("iterator not monotonic: %#08x followed by %#08x", prev, v)
		}
		prev = v
		count++
	}
	if count != 256 {
		t.Errorf("count = %d, expected: 256", count)
	}
}

func TestIteratorZeroMaskCollapsesToOneEncoding(t *testing.T) {
	// mask=0x00000000 holds every bit fixed: the iterator must report
	// exactly one encoding (start) and stop, never advance past it.
	it := NewIterator(0xe1a00000, 0xffffffff, 0x00000000, false)
	v, ok := it.Next()
	if !ok || v != 0xe1a00000 {
		t.Fatalf("first Next() = (%#08x, %v), expected: (0xe1a00000, true)", v, ok)
	}
	if _, ok := it.Next(); ok {
		t.Errorf("expected exhaustion with mask=0, the zero mask fixes every bit")
	}
}

func TestIteratorFullMaskSweepsWholeRange(t *testing.T) {
	// mask=0xffffffff is --mask's default: every bit advances, so the
	// full [start, end] range is enumerated.
	it := NewIterator(0x00000000, 0x0000000f, 0xffffffff, false)
	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	if count != 16 {
		t.Errorf("count = %d, expected: 16 (full sweep over a 16-value range)", count)
	}
}

func TestIteratorSingleInsn(t *testing.T) {
	it := NewIterator(0x12345678, 0x12345678, 0xffffffff, false)
	v, ok := it.Next()
	if !ok || v != 0x12345678 {
		t.Fatalf("first Next() = (%#08x, %v), expected: (0x12345678, true)", v, ok)
	}
	if _, ok := it.Next(); ok {
		t.Errorf("expected exhaustion after single-instruction range")
	}
}

func TestBytesWordOrder(t *testing.T) {
	got := Bytes(0x12345678, A32)
	want := []byte{0x78, 0x56, 0x34, 0x12}
	if !bytesEqual(got, want) {
		t.Errorf("Bytes(A32) = % x, expected: % x", got, want)
	}
}

func TestBytesThumb16(t *testing.T) {
	got := Bytes(0xbe000000, Thumb)
	want := []byte{0x00, 0xbe}
	if !bytesEqual(got, want) {
		t.Errorf("Bytes(Thumb, 16-bit) = % x, expected: % x", got, want)
	}
}

func TestBytesThumb32(t *testing.T) {
	got := Bytes(0xe8901234, Thumb)
	want := []byte{0x90, 0xe8, 0x34, 0x12}
	if !bytesEqual(got, want) {
		t.Errorf("Bytes(Thumb, 32-bit) = % x, expected: % x", got, want)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
