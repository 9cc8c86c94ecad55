/*
 * ARM fuzzer - Hex formatting helpers.
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

// Package hexfmt renders encodings and register dumps as fixed-width hex
// text for the log and status sinks.
package hexfmt

import "strings"

var hexMap = "0123456789ABCDEF"

// AppendWord writes full as 8 upper-case hex digits with no separator,
// e.g. the HHHHHHHH field of a log record.
func AppendWord(str *strings.Builder, full uint32) {
	shift := 28
	for range 8 {
		str.WriteByte(hexMap[(full>>shift)&0xf])
		shift -= 4
	}
}

// Word is the string form of AppendWord.
func Word(full uint32) string {
	var b strings.Builder
	AppendWord(&b, full)
	return b.String()
}

// AppendBytes writes data as hex digit pairs, space-separated when space is
// true, used for register-diff dumps in hidden-instruction log records.
func AppendBytes(str *strings.Builder, space bool, data []byte) {
	for i, by := range data {
		if space && i != 0 {
			str.WriteByte(' ')
		}
		str.WriteByte(hexMap[(by>>4)&0xf])
		str.WriteByte(hexMap[by&0xf])
	}
}
