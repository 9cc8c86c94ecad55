/*
 * ARM fuzzer - cgo signal-handling glue for the in-process executor.
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

// Package exec32 runs a single candidate encoding directly in this process,
// trapping the SIGILL/SIGSEGV/SIGBUS/SIGTRAP it raises and resuming past it.
// Go's signal package cannot rewrite a trap context's program counter or
// call a raw memory buffer as a function, so the handler and the call into
// the instruction slot are implemented in a small cgo shim that mirrors the
// signal_handler/init_signal_handler/execute_insn_buffer pattern of the
// original C fuzzer.
package exec32

/*
#include <signal.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
#include <ucontext.h>

static volatile uint32_t *armfuzz_slot_addr;
static volatile int armfuzz_executing;
static volatile int armfuzz_last_signal;
static volatile uint64_t armfuzz_fault_pc;

static void armfuzz_signal_handler(int signum, siginfo_t *info, void *ucontext_arg) {
	ucontext_t *uc = (ucontext_t *)ucontext_arg;

	armfuzz_last_signal = signum;
	if (!armfuzz_executing) {
		psignal(signum, "armfuzz: signal outside the test window");
		abort();
	}
	armfuzz_executing = 0;

#if defined(__aarch64__)
	armfuzz_fault_pc = (uint64_t)uc->uc_mcontext.pc;
	uc->uc_mcontext.pc = (uint64_t)armfuzz_slot_addr + 4;
#elif defined(__arm__)
	armfuzz_fault_pc = (uint64_t)uc->uc_mcontext.arm_pc;
	uc->uc_mcontext.arm_pc = (uint64_t)(uintptr_t)armfuzz_slot_addr + 4;
#else
	armfuzz_fault_pc = 0;
#endif
}

static int armfuzz_install_handler(int signum) {
	struct sigaction sa;
	memset(&sa, 0, sizeof(sa));
	sa.sa_sigaction = armfuzz_signal_handler;
	sa.sa_flags = SA_SIGINFO;
	sigemptyset(&sa.sa_mask);
	return sigaction(signum, &sa, NULL);
}

static void armfuzz_set_slot_addr(void *addr) {
	armfuzz_slot_addr = (volatile uint32_t *)addr;
}

static int armfuzz_take_last_signal(void) {
	int s = armfuzz_last_signal;
	armfuzz_last_signal = 0;
	return s;
}

typedef void (*armfuzz_entry_fn)(void);

static void armfuzz_call_entry(void *addr) {
	__builtin___clear_cache((char *)armfuzz_slot_addr, (char *)armfuzz_slot_addr + 4);
	armfuzz_executing = 1;
	((armfuzz_entry_fn)addr)();
	armfuzz_executing = 0;
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// trappedSignals are the signals a malformed or privileged encoding can
// raise when executed as ordinary user-mode code: illegal instruction,
// addressing fault, alignment fault, and the breakpoint trap used by the
// UDF-based breakpoint filter in internal/opctable.
var trappedSignals = []C.int{C.SIGILL, C.SIGSEGV, C.SIGBUS, C.SIGTRAP}

func installSignalHandlers() error {
	for _, signum := range trappedSignals {
		if rc, err := C.armfuzz_install_handler(signum); rc != 0 {
			return fmt.Errorf("exec32: sigaction(%d): %w", signum, err)
		}
	}
	return nil
}

func setSlotAddr(addr unsafe.Pointer) {
	C.armfuzz_set_slot_addr(addr)
}

func takeLastSignal() int {
	return int(C.armfuzz_take_last_signal())
}

// callEntry invokes the trampoline at addr. It returns once the trampoline
// runs to completion (BX LR / RET reached) or the installed handler has
// rewritten the trap context to resume past the slot and unwound back here
// through the trampoline's own epilogue.
func callEntry(addr unsafe.Pointer) {
	C.armfuzz_call_entry(addr)
}
