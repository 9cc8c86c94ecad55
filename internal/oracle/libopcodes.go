/*
 * ARM fuzzer - libopcodes-backed disassembler oracle.
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
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

// LibopcodesOracle shells out to a small helper binary linked against
// libopcodes that prints the disassembly of one encoding to stdout. It
// plays the "libopc" role from spec §4.3: textual output containing the
// case-sensitive substring "undefined", "UNDEFINED", or "NYI" marks the
// encoding undefined.
type LibopcodesOracle struct {
	// Path to the helper binary. It is invoked as:
	//   <Path> <arch> <1|0> <hex-encoding>
	// (1 selects Thumb) and expected to print the disassembled mnemonic line to stdout.
	Path string
}

func (o *LibopcodesOracle) Name() string { return "libopc" }

var undefinedMarkers = []string{"undefined", "UNDEFINED", "NYI"}

func (o *LibopcodesOracle) Disassemble(ctx context.Context, insn uint32, set armenc.InsnSet) (Verdict, error) {
	arch := "arm"
	thumb := "0"
	switch set {
	case armenc.AArch64:
		arch = "aarch64"
	case armenc.Thumb:
		thumb = "1"
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, o.Path, arch, thumb, "0x"+strconv.FormatUint(uint64(insn), 16))
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return Verdict{}, fmt.Errorf("libopc oracle: run %s: %w", o.Path, err)
	}

	text := strings.TrimSpace(out.String())
	undefined := text == ""
	for _, marker := range undefinedMarkers {
		if strings.Contains(text, marker) {
			undefined = true
			break
		}
	}
	return Verdict{Undefined: undefined, Text: text}, nil
}
