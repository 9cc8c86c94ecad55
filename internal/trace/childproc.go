/*
 * ARM fuzzer - traced-child loop body.
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

	"github.com/rcornwell/armfuzz/internal/armenc"
)

// ChildEnv is the environment variable the traced child re-exec checks for
// on startup; its value, when set, selects the instruction set whose loop
// body RunChildLoop should build.
const ChildEnv = "ARMFUZZ_TRACE_CHILD"

// buildLoopPage lays out the child's {breakpoint; nop; branch back} body:
// word 0 is the breakpoint (also the tracer's lazily-resolved slot
// address), word 1 is the nop the tracer overwrites per encoding, word 2
// branches back to word 0. For Thumb each "word" packs two 16-bit Thumb
// instructions, low halfword first (the halfword at the lower address is
// fetched first), since the child executes natively in Thumb state.
func buildLoopPage(set armenc.InsnSet) []byte {
	bp := breakpointWord(set)
	var nop, branch uint32
	switch set {
	case armenc.AArch64:
		nop = 0xd503201f // nop
		branch = aarch64BranchBack
	case armenc.Thumb:
		nop = thumbNopSlot
		branch = thumbBranchBack
	default:
		nop = loopNop
		branch = a32BranchBack
	}

	page := make([]byte, 12)
	binary.LittleEndian.PutUint32(page[0:], bp)
	binary.LittleEndian.PutUint32(page[4:], nop)
	binary.LittleEndian.PutUint32(page[8:], branch)
	return page
}

const (
	a32BranchBack     = 0xeafffffc // b . - 8  (branch back two instructions)
	aarch64BranchBack = 0x17fffffe // b . - 8

	// thumbNopSlot is two packed 16-bit Thumb NOPs (0xbf00 each), the
	// loop body's resting state before the tracer writes a candidate
	// encoding into the low halfword.
	thumbNopSlot = 0xbf00bf00

	// thumbBranchBack packs, low halfword first: a T1 unconditional
	// branch (`1 1100 imm11`, opcode 0xe000) back to word 0, 12 bytes
	// behind the branch instruction's own PC-relative base (PC reads as
	// instr_addr+4 in Thumb state), so imm11 = -12/2 = -6 = 0x7fa; the
	// high halfword is an unreached NOP padding the 32-bit slot.
	thumbBranchBack = 0xbf00e7fa
)

// RunChildLoop maps the loop body for set into an executable page and
// transfers control to it. It never returns under normal operation: the
// tracer attached via PTRACE_TRACEME in TRACEME (see spawn.go) drives the
// loop from the outside, and the process is expected to be killed by the
// tracer (or its parent dying) rather than exit on its own.
func RunChildLoop(set armenc.InsnSet) error {
	return runChildLoop(buildLoopPage(set), set == armenc.Thumb)
}
