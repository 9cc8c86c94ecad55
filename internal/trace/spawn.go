/*
 * ARM fuzzer - traced-child process spawn.
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
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

// Spawn starts this same binary as a traced child re-executing
// RunChildLoop for set (selected via ChildEnv, read by main at startup),
// waits for the exec-induced initial stop, runs the child on until its
// loop breakpoint traps, and returns a ready-to-drive Tracee stopped
// there. self is the path to re-exec, normally os.Args[0].
func Spawn(self string, set armenc.InsnSet) (Tracee, error) {
	cmd := exec.Command(self)
	cmd.Env = append(os.Environ(), ChildEnv+"="+childEnvValue(set))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Ptrace: true}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("trace: spawn child: %w", err)
	}

	var ws syscall.WaitStatus
	if _, err := syscall.Wait4(cmd.Process.Pid, &ws, 0, nil); err != nil {
		return nil, fmt.Errorf("trace: wait for initial exec stop: %w", err)
	}
	if !ws.Stopped() {
		return nil, fmt.Errorf("trace: child did not stop at exec, status %v", ws)
	}
	// Run on to the loop's own breakpoint, passing other signals through.
	for sig := 0; ; sig = int(ws.StopSignal()) {
		if err := syscall.PtraceCont(cmd.Process.Pid, sig); err != nil {
			return nil, fmt.Errorf("trace: resume child to its loop: %w", err)
		}
		if _, err := syscall.Wait4(cmd.Process.Pid, &ws, 0, nil); err != nil {
			return nil, fmt.Errorf("trace: wait for loop breakpoint: %w", err)
		}
		if !ws.Stopped() {
			return nil, fmt.Errorf("trace: child ended before its loop breakpoint, status %v", ws)
		}
		if ws.StopSignal() == syscall.SIGTRAP {
			break
		}
	}

	return newTracee(cmd)
}

func childEnvValue(set armenc.InsnSet) string {
	switch set {
	case armenc.AArch64:
		return "aarch64"
	case armenc.Thumb:
		return "thumb"
	default:
		return "a32"
	}
}

// ParseChildEnv maps ChildEnv's value back to an InsnSet. Used by the
// re-exec'd child's own startup path (see main in main.go).
func ParseChildEnv(value string) (armenc.InsnSet, bool) {
	switch value {
	case "aarch64":
		return armenc.AArch64, true
	case "thumb":
		return armenc.Thumb, true
	case "a32":
		return armenc.A32, true
	default:
		return 0, false
	}
}

// procTracee is the common os/exec.Cmd-backed part of a Tracee; the
// register and word-access methods are implemented per architecture in
// tracee_arm64.go / tracee_arm.go.
type procTracee struct {
	cmd *exec.Cmd
	pid int
}

func (p *procTracee) Continue(signal int) error {
	return syscall.PtraceCont(p.pid, signal)
}

func (p *procTracee) Wait() (int, bool, error) {
	var ws syscall.WaitStatus
	if _, err := syscall.Wait4(p.pid, &ws, 0, nil); err != nil {
		return 0, false, fmt.Errorf("trace: wait4: %w", err)
	}
	if ws.Exited() || ws.Signaled() {
		return 0, true, nil
	}
	if ws.Stopped() {
		return int(ws.StopSignal()), false, nil
	}
	return 0, false, fmt.Errorf("trace: unexpected wait status %v", ws)
}

func (p *procTracee) Kill() error {
	return p.cmd.Process.Kill()
}

func (p *procTracee) Close() error {
	_ = p.cmd.Process.Kill()
	return p.cmd.Wait()
}

func (p *procTracee) ReadWord(addr uint64) (uint32, error) {
	var buf [4]byte
	n, err := syscall.PtracePeekData(p.pid, uintptr(addr), buf[:])
	if err != nil {
		return 0, fmt.Errorf("trace: peekdata: %w", err)
	}
	if n != len(buf) {
		return 0, fmt.Errorf("trace: short peekdata read: %d bytes", n)
	}
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24, nil
}

func (p *procTracee) WriteWord(addr uint64, word uint32) error {
	buf := [4]byte{byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)}
	n, err := syscall.PtracePokeData(p.pid, uintptr(addr), buf[:])
	if err != nil {
		return fmt.Errorf("trace: pokedata: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("trace: short pokedata write: %d bytes", n)
	}
	return nil
}
