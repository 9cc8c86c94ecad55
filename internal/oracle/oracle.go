/*
 * ARM fuzzer - Two-oracle disassembler arbitration.
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

// Package oracle wraps two independent reference disassemblers behind a
// uniform verdict, intersecting their "undefined" classifications to
// suppress the false positives either one carries alone, and reporting
// discrepancies between them as likely disassembler bugs.
package oracle

import (
	"context"
	"fmt"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

// Verdict is one disassembler's classification of an encoding.
type Verdict struct {
	Undefined bool
	Text      string
}

// Disassembler is the black-box contract every oracle adapter implements.
// insn is the raw 32-bit encoding; set selects the byte-order and width
// used to render it for the underlying tool.
type Disassembler interface {
	Name() string
	Disassemble(ctx context.Context, insn uint32, set armenc.InsnSet) (Verdict, error)
}

// Pair wraps two disassemblers behind the spec's "undefined-by-both" gate
// and discrepancy accounting.
type Pair struct {
	First  Disassembler
	Second Disassembler
}

// Result is the joint verdict for one encoding.
type Result struct {
	First         Verdict
	Second        Verdict
	Discrepancy   bool
	BothUndefined bool
}

// Classify invokes both oracles and reports their joint verdict. An error
// from either oracle is an oracle error per spec §7: the run cannot be
// trusted if a disassembler itself fails, so the caller should treat it as
// fatal rather than retry.
func (p *Pair) Classify(ctx context.Context, insn uint32, set armenc.InsnSet) (Result, error) {
	first, err := p.First.Disassemble(ctx, insn, set)
	if err != nil {
		return Result{}, fmt.Errorf("oracle %s: %w", p.First.Name(), err)
	}
	second, err := p.Second.Disassemble(ctx, insn, set)
	if err != nil {
		return Result{}, fmt.Errorf("oracle %s: %w", p.Second.Name(), err)
	}
	return Result{
		First:         first,
		Second:        second,
		Discrepancy:   first.Undefined != second.Undefined,
		BothUndefined: first.Undefined && second.Undefined,
	}, nil
}
