/*
 * ARM fuzzer - cgo jump into the traced child's loop page.
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

/*
typedef void (*armfuzz_loop_fn)(void);

static void armfuzz_jump(void *addr) {
	((armfuzz_loop_fn)addr)();
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// runChildLoop maps page-sized executable memory, copies body in, and
// jumps to its first word. The jump never returns: the loop branches on
// itself forever and is only ever interrupted by the tracer attached via
// PTRACE_TRACEME, which single-steps it through one nop-slot execution per
// fuzzer encoding.
//
// thumb selects a mode-switching jump: ARM/Thumb interworking identifies a
// Thumb entry point by bit 0 of the target address, and the AAPCS32 calling
// convention lowers an indirect C function-pointer call to BLX reg, which
// reads that bit and switches processor state accordingly. Without it the
// page's Thumb encodings would be fetched and decoded as A32 instructions.
func runChildLoop(body []byte, thumb bool) error {
	pageSize := unix.Getpagesize()
	page, err := unix.Mmap(-1, 0, pageSize, unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return fmt.Errorf("trace: mmap loop page: %w", err)
	}
	copy(page, body)

	entry := unsafe.Pointer(&page[0])
	if thumb {
		entry = unsafe.Pointer(uintptr(entry) | 1)
	}
	C.armfuzz_jump(entry)
	return nil // unreachable under normal operation
}
