/*
 * ARM fuzzer - Oracle pair test routines.
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

package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

type fakeOracle struct {
	name      string
	undefined bool
	text      string
	err       error
}

func (f *fakeOracle) Name() string { return f.name }

func (f *fakeOracle) Disassemble(ctx context.Context, insn uint32, set armenc.InsnSet) (Verdict, error) {
	if f.err != nil {
		return Verdict{}, f.err
	}
	return Verdict{Undefined: f.undefined, Text: f.text}, nil
}

func TestClassifyBothUndefined(t *testing.T) {
	p := &Pair{
		First:  &fakeOracle{name: "cs", undefined: true, text: ""},
		Second: &fakeOracle{name: "libopc", undefined: true, text: "undefined"},
	}
	r, err := p.Classify(context.Background(), 0x00000000, armenc.AArch64)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if !r.BothUndefined {
		t.Errorf("BothUndefined = false, expected: true")
	}
	if r.Discrepancy {
		t.Errorf("Discrepancy = true, expected: false")
	}
}

func TestClassifyDiscrepancy(t *testing.T) {
	p := &Pair{
		First:  &fakeOracle{name: "cs", undefined: true},
		Second: &fakeOracle{name: "libopc", undefined: false, text: "mov r0, r0"},
	}
	r, err := p.Classify(context.Background(), 0xe1a00000, armenc.A32)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if !r.Discrepancy {
		t.Errorf("Discrepancy = false, expected: true")
	}
	if r.BothUndefined {
		t.Errorf("BothUndefined = true, expected: false")
	}
}

func TestClassifyBothDefined(t *testing.T) {
	p := &Pair{
		First:  &fakeOracle{name: "cs", undefined: false, text: "mov r0, r0"},
		Second: &fakeOracle{name: "libopc", undefined: false, text: "mov r0, r0"},
	}
	r, err := p.Classify(context.Background(), 0xe1a00000, armenc.A32)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if r.BothUndefined || r.Discrepancy {
		t.Errorf("got BothUndefined=%v Discrepancy=%v, expected both false", r.BothUndefined, r.Discrepancy)
	}
}

func TestClassifyOracleError(t *testing.T) {
	p := &Pair{
		First:  &fakeOracle{name: "cs", err: errors.New("boom")},
		Second: &fakeOracle{name: "libopc"},
	}
	if _, err := p.Classify(context.Background(), 0, armenc.A32); err == nil {
		t.Errorf("expected error when first oracle fails")
	}
}

func TestLastInstructionLine(t *testing.T) {
	output := "\n/tmp/x.bin:     file format binary\n\n\nDisassembly of section .data:\n\n00000000 <.data>:\n   0:\te1a00000 \tmov\tr0, r0\n"
	got := lastInstructionLine(output)
	want := "mov r0, r0"
	if got != want {
		t.Errorf("lastInstructionLine() = %q, expected: %q", got, want)
	}
}

func TestLastInstructionLineBad(t *testing.T) {
	output := "00000000 <.data>:\n   0:\tffffffff \t(bad)\n"
	got := lastInstructionLine(output)
	if got != "(bad)" {
		t.Errorf("lastInstructionLine() = %q, expected: %q", got, "(bad)")
	}
}
