/*
 * ARM fuzzer - Byte-order encodings for disassembly and execution.
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

// Bytes renders encoding i as the little-endian (or Thumb half-word swapped)
// byte sequence that both the oracle adapters and the executors must feed
// to their respective consumers. The three shapes are fixed by spec §6 and
// must be bit-for-bit identical across every call site: oracle verdicts and
// executed behavior both depend on them.
func Bytes(i uint32, set InsnSet) []byte {
	switch set {
	case Thumb:
		if IsThumb32(i) {
			return thumb32Bytes(i)
		}
		return thumb16Bytes(i)
	default:
		return wordBytes(i)
	}
}

// wordBytes is the plain little-endian form used by A32 and AArch64:
// b0 = i[7:0], b1 = i[15:8], b2 = i[23:16], b3 = i[31:24].
func wordBytes(i uint32) []byte {
	return []byte{
		byte(i),
		byte(i >> 8),
		byte(i >> 16),
		byte(i >> 24),
	}
}

// thumb16Bytes extracts the 16-bit Thumb instruction carried in the high
// half of i: b0 = i[23:16], b1 = i[31:24].
func thumb16Bytes(i uint32) []byte {
	return []byte{
		byte(i >> 16),
		byte(i >> 24),
	}
}

// thumb32Bytes lays out a 32-bit Thumb-2 encoding with its first half-word
// (carried in the high 16 bits of i, per the executor's left-alignment
// convention) stored before the second: b0 = i[23:16], b1 = i[31:24],
// b2 = i[7:0], b3 = i[15:8].
func thumb32Bytes(i uint32) []byte {
	return []byte{
		byte(i >> 16),
		byte(i >> 24),
		byte(i),
		byte(i >> 8),
	}
}
