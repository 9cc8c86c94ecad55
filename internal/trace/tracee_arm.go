/*
 * ARM fuzzer - A32/Thumb ptrace register access.
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

//go:build linux && arm

package trace

import (
	"fmt"
	"os/exec"

	"golang.org/x/sys/unix"
)

// armTracee backs the A32/Thumb ptrace Tracee. unix.PtraceRegs on
// linux/arm carries Uregs[18]: R0-R12, SP, LR, PC, CPSR, ORIG_R0.
type armTracee struct {
	procTracee
}

func newTracee(cmd *exec.Cmd) (Tracee, error) {
	return &armTracee{procTracee{cmd: cmd, pid: cmd.Process.Pid}}, nil
}

const (
	uregSP   = 13
	uregLR   = 14
	uregPC   = 15
	uregCPSR = 16
)

func (t *armTracee) ReadRegs() (Regs, error) {
	var regs unix.PtraceRegs
	if err := unix.PtraceGetRegs(t.pid, &regs); err != nil {
		return Regs{}, fmt.Errorf("trace: getregs: %w", err)
	}
	var out Regs
	for i := 0; i < 13; i++ {
		out.GPR[i] = uint64(regs.Uregs[i])
	}
	out.GPR[13] = uint64(regs.Uregs[uregLR]) // LR, kept alongside R0-R12 for the diff
	out.SP = uint64(regs.Uregs[uregSP])
	out.PC = uint64(regs.Uregs[uregPC])
	out.CPSR = uint64(regs.Uregs[uregCPSR])
	return out, nil
}

func (t *armTracee) WriteRegs(r Regs) error {
	var regs unix.PtraceRegs
	for i := 0; i < 13; i++ {
		regs.Uregs[i] = uint32(r.GPR[i])
	}
	regs.Uregs[uregLR] = uint32(r.GPR[13])
	regs.Uregs[uregSP] = uint32(r.SP)
	regs.Uregs[uregPC] = uint32(r.PC)
	regs.Uregs[uregCPSR] = uint32(r.CPSR)
	if err := unix.PtraceSetRegs(t.pid, &regs); err != nil {
		return fmt.Errorf("trace: setregs: %w", err)
	}
	return nil
}
