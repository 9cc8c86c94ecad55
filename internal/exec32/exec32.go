/*
 * ARM fuzzer - in-process execution harness.
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

package exec32

import (
	"encoding/binary"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

// Result is the outcome of executing one candidate encoding in-process.
type Result struct {
	// Signal is the POSIX signal number the encoding raised, or 0 if the
	// trampoline ran to completion without trapping.
	Signal int
	// Crashed reports a signal this harness cannot safely resume from
	// (SIGBUS or SIGSEGV from a wild memory reference outside the
	// mapped trampoline page); the caller should treat the whole
	// process as unsafe to reuse and fall back to the traced-child
	// backend for this encoding.
	Crashed bool
}

// Harness owns one RWX trampoline page and serializes execution on it:
// only one encoding may be resident in the writable slot at a time, and
// the global signal-handler state in harness_cgo.go is process-wide.
type Harness struct {
	mu    sync.Mutex
	page  []byte
	tramp Trampoline
	set   armenc.InsnSet
}

var installOnce sync.Once
var installErr error

// New maps one executable page and builds the prologue/epilogue trampoline
// for set. The page is sized to a full OS page regardless of trampoline
// length, matching the original fuzzer's page-granular mmap.
func New(set armenc.InsnSet) (*Harness, error) {
	installOnce.Do(func() {
		installErr = installSignalHandlers()
	})
	if installErr != nil {
		return nil, installErr
	}

	pageSize := unix.Getpagesize()
	page, err := unix.Mmap(-1, 0, pageSize, unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("exec32: mmap trampoline page: %w", err)
	}

	tramp := Build(set)
	if len(tramp.Bytes) > pageSize {
		unix.Munmap(page)
		return nil, fmt.Errorf("exec32: trampoline length %d exceeds page size %d", len(tramp.Bytes), pageSize)
	}
	copy(page, tramp.Bytes)

	h := &Harness{page: page, tramp: tramp, set: set}
	setSlotAddr(unsafe.Pointer(&h.page[h.tramp.SlotOffset]))
	return h, nil
}

// Close unmaps the trampoline page. The Harness must not be used afterward.
func (h *Harness) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.page == nil {
		return nil
	}
	err := unix.Munmap(h.page)
	h.page = nil
	return err
}

// Execute writes insn into the trampoline's instruction slot and calls the
// trampoline. It returns the signal the encoding raised, if any.
//
// Callers running a sweep across many harnesses on the same goroutine
// should reuse one Harness rather than opening a new mapping per
// encoding: New() reinstalls process-wide signal handlers on first call
// only, but each mmap is a syscall round trip.
func (h *Harness) Execute(insn uint32) (Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.page == nil {
		return Result{}, fmt.Errorf("exec32: harness closed")
	}

	setSlotAddr(unsafe.Pointer(&h.page[h.tramp.SlotOffset]))
	binary.LittleEndian.PutUint32(h.page[h.tramp.SlotOffset:], insn)

	takeLastSignal() // drain any stale signal from a prior call
	callEntry(unsafe.Pointer(&h.page[0]))
	signum := takeLastSignal()

	crashed := signum == int(unix.SIGSEGV) || signum == int(unix.SIGBUS)
	return Result{Signal: signum, Crashed: crashed}, nil
}
