/*
 * ARM fuzzer - AArch64 ptrace register access.
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

//go:build linux && arm64

package trace

import (
	"fmt"
	"os/exec"

	"golang.org/x/sys/unix"
)

type arm64Tracee struct {
	procTracee
}

func newTracee(cmd *exec.Cmd) (Tracee, error) {
	return &arm64Tracee{procTracee{cmd: cmd, pid: cmd.Process.Pid}}, nil
}

func (t *arm64Tracee) ReadRegs() (Regs, error) {
	var regs unix.PtraceRegsArm64
	if err := unix.PtraceGetRegSetArm64(t.pid, unix.NT_PRSTATUS, &regs); err != nil {
		return Regs{}, fmt.Errorf("trace: getregset: %w", err)
	}
	var out Regs
	copy(out.GPR[:], regs.Regs[:])
	out.SP = regs.Sp
	out.PC = regs.Pc
	out.CPSR = regs.Pstate
	return out, nil
}

func (t *arm64Tracee) WriteRegs(r Regs) error {
	var regs unix.PtraceRegsArm64
	copy(regs.Regs[:], r.GPR[:])
	regs.Sp = r.SP
	regs.Pc = r.PC
	regs.Pstate = r.CPSR
	if err := unix.PtraceSetRegSetArm64(t.pid, unix.NT_PRSTATUS, &regs); err != nil {
		return fmt.Errorf("trace: setregset: %w", err)
	}
	return nil
}
