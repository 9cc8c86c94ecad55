/*
 * ARM fuzzer - objdump-backed disassembler oracle.
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
	"os"
	"os/exec"
	"strings"

	"github.com/rcornwell/armfuzz/internal/armenc"
)

// ObjdumpOracle shells out to binutils objdump against a raw binary blob
// holding exactly one encoding, acting as the "cs"-style oracle from spec
// §4.3: an encoding is undefined iff disassembly produces zero real
// instructions, surfaced by objdump as a "(bad)" operand.
type ObjdumpOracle struct {
	// Path to the objdump binary, e.g. "objdump" or an arm-none-eabi
	// cross binutils path.
	Path string
}

func (o *ObjdumpOracle) Name() string { return "objdump" }

func (o *ObjdumpOracle) Disassemble(ctx context.Context, insn uint32, set armenc.InsnSet) (Verdict, error) {
	data := armenc.Bytes(insn, set)

	f, err := os.CreateTemp("", "armfuzz-objdump-*.bin")
	if err != nil {
		return Verdict{}, fmt.Errorf("objdump oracle: create temp file: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return Verdict{}, fmt.Errorf("objdump oracle: write temp file: %w", err)
	}

	args := []string{"-D", "-b", "binary"}
	switch set {
	case armenc.AArch64:
		args = append(args, "-m", "aarch64")
	case armenc.Thumb:
		args = append(args, "-m", "arm", "-M", "force-thumb")
	default:
		args = append(args, "-m", "arm")
	}
	args = append(args, f.Name())

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, o.Path, args...)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return Verdict{}, fmt.Errorf("objdump oracle: run %s: %w", o.Path, err)
	}

	text := lastInstructionLine(out.String())
	undefined := text == "" || strings.Contains(text, "(bad)")
	return Verdict{Undefined: undefined, Text: text}, nil
}

// lastInstructionLine finds the disassembly line for the single synthetic
// instruction objdump emits from our one-word binary, skipping the file
// header and section banner lines that precede it, and strips the leading
// "offset:\tbytes" columns to leave just the mnemonic and operands.
func lastInstructionLine(output string) string {
	lines := strings.Split(output, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 || !strings.HasSuffix(strings.TrimSpace(fields[0]), ":") {
			continue
		}
		return strings.TrimSpace(strings.Join(fields[2:], " "))
	}
	return ""
}
