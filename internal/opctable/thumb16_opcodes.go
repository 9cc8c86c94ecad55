/*
 * ARM fuzzer - Thumb-16 opcode table.
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

package opctable

// Thumb16Opcodes is the 16-bit Thumb-1 instruction table. Values are
// compared against an encoding left-shifted 16 bits, because the executor
// left-aligns Thumb-16 encodings within a 32-bit word.
var Thumb16Opcodes = []Entry{
	{0x4784, 0xff87, 0, "blxns\t%3-6r"},
	{0x4704, 0xff87, 0, "bxns\t%3-6r"},
	{0xbf50, 0xffff, 0, "sevl%c"},
	{0xba80, 0xffc0, 0, "hlt\t%0-5x"},
	{0xb610, 0xfff7, 0x0017, "setpan\t#%3-3d"},
	{0xbf00, 0xffff, 0, "nop%c"},
	{0xbf10, 0xffff, 0, "yield%c"},
	{0xbf20, 0xffff, 0, "wfe%c"},
	{0xbf30, 0xffff, 0, "wfi%c"},
	{0xbf40, 0xffff, 0, "sev%c"},
	{0xbf00, 0xff0f, 0, "nop%c\t{%4-7d}"},
	{0xb900, 0xfd00, 0, "cbnz\t%0-2r, %b%X"},
	{0xb100, 0xfd00, 0, "cbz\t%0-2r, %b%X"},
	{0xbf00, 0xff00, 0, "it%I%X"},
	{0xb660, 0xfff8, 0x0008, "cpsie\t%2'a%1'i%0'f%X"},
	{0xb670, 0xfff8, 0x0008, "cpsid\t%2'a%1'i%0'f%X"},
	{0x4600, 0xffc0, 0, "mov%c\t%0-2r, %3-5r"},
	{0xba00, 0xffc0, 0, "rev%c\t%0-2r, %3-5r"},
	{0xba40, 0xffc0, 0, "rev16%c\t%0-2r, %3-5r"},
	{0xbac0, 0xffc0, 0, "revsh%c\t%0-2r, %3-5r"},
	{0xb650, 0xfff7, 0x0017, "setend\t%3?ble%X"},
	{0xb200, 0xffc0, 0, "sxth%c\t%0-2r, %3-5r"},
	{0xb240, 0xffc0, 0, "sxtb%c\t%0-2r, %3-5r"},
	{0xb280, 0xffc0, 0, "uxth%c\t%0-2r, %3-5r"},
	{0xb2c0, 0xffc0, 0, "uxtb%c\t%0-2r, %3-5r"},
	{0xbe00, 0xff00, 0, "bkpt\t%0-7x"},
	{0x4780, 0xff87, 0x0007, "blx%c\t%3-6r%x"},
	{0x46c0, 0xffff, 0, "nop%c\t\t\t; (mov r8, r8)"},
	{0x4000, 0xffc0, 0, "and%C\t%0-2r, %3-5r"},
	{0x4040, 0xffc0, 0, "eor%C\t%0-2r, %3-5r"},
	{0x4080, 0xffc0, 0, "lsl%C\t%0-2r, %3-5r"},
	{0x40c0, 0xffc0, 0, "lsr%C\t%0-2r, %3-5r"},
	{0x4100, 0xffc0, 0, "asr%C\t%0-2r, %3-5r"},
	{0x4140, 0xffc0, 0, "adc%C\t%0-2r, %3-5r"},
	{0x4180, 0xffc0, 0, "sbc%C\t%0-2r, %3-5r"},
	{0x41c0, 0xffc0, 0, "ror%C\t%0-2r, %3-5r"},
	{0x4200, 0xffc0, 0, "tst%c\t%0-2r, %3-5r"},
	{0x4240, 0xffc0, 0, "neg%C\t%0-2r, %3-5r"},
	{0x4280, 0xffc0, 0, "cmp%c\t%0-2r, %3-5r"},
	{0x42c0, 0xffc0, 0, "cmn%c\t%0-2r, %3-5r"},
	{0x4300, 0xffc0, 0, "orr%C\t%0-2r, %3-5r"},
	{0x4340, 0xffc0, 0, "mul%C\t%0-2r, %3-5r"},
	{0x4380, 0xffc0, 0, "bic%C\t%0-2r, %3-5r"},
	{0x43c0, 0xffc0, 0, "mvn%C\t%0-2r, %3-5r"},
	{0xb000, 0xff80, 0, "add%c\tsp, #%0-6W"},
	{0xb080, 0xff80, 0, "sub%c\tsp, #%0-6W"},
	{0x4700, 0xff80, 0x0007, "bx%c\t%S%x"},
	{0x4400, 0xff00, 0, "add%c\t%D, %S"},
	{0x4500, 0xff00, 0, "cmp%c\t%D, %S"},
	{0x4600, 0xff00, 0, "mov%c\t%D, %S"},
	{0xb400, 0xfe00, 0, "push%c\t%N"},
	{0xbc00, 0xfe00, 0, "pop%c\t%O"},
	{0x1800, 0xfe00, 0, "add%C\t%0-2r, %3-5r, %6-8r"},
	{0x1a00, 0xfe00, 0, "sub%C\t%0-2r, %3-5r, %6-8r"},
	{0x1c00, 0xfe00, 0, "add%C\t%0-2r, %3-5r, #%6-8d"},
	{0x1e00, 0xfe00, 0, "sub%C\t%0-2r, %3-5r, #%6-8d"},
	{0x5200, 0xfe00, 0, "strh%c\t%0-2r, [%3-5r, %6-8r]"},
	{0x5a00, 0xfe00, 0, "ldrh%c\t%0-2r, [%3-5r, %6-8r]"},
	{0x5600, 0xf600, 0, "ldrs%11?hb%c\t%0-2r, [%3-5r, %6-8r]"},
	{0x5000, 0xfa00, 0, "str%10'b%c\t%0-2r, [%3-5r, %6-8r]"},
	{0x5800, 0xfa00, 0, "ldr%10'b%c\t%0-2r, [%3-5r, %6-8r]"},
	{0x0000, 0xffc0, 0, "mov%C\t%0-2r, %3-5r"},
	{0x0000, 0xf800, 0, "lsl%C\t%0-2r, %3-5r, #%6-10d"},
	{0x0800, 0xf800, 0, "lsr%C\t%0-2r, %3-5r, %s"},
	{0x1000, 0xf800, 0, "asr%C\t%0-2r, %3-5r, %s"},
	{0x2000, 0xf800, 0, "mov%C\t%8-10r, #%0-7d"},
	{0x2800, 0xf800, 0, "cmp%c\t%8-10r, #%0-7d"},
	{0x3000, 0xf800, 0, "add%C\t%8-10r, #%0-7d"},
	{0x3800, 0xf800, 0, "sub%C\t%8-10r, #%0-7d"},
	{0x4800, 0xf800, 0, "ldr%c\t%8-10r, [pc, #%0-7W]\t; (%0-7a)"},
	{0x6000, 0xf800, 0, "str%c\t%0-2r, [%3-5r, #%6-10W]"},
	{0x6800, 0xf800, 0, "ldr%c\t%0-2r, [%3-5r, #%6-10W]"},
	{0x7000, 0xf800, 0, "strb%c\t%0-2r, [%3-5r, #%6-10d]"},
	{0x7800, 0xf800, 0, "ldrb%c\t%0-2r, [%3-5r, #%6-10d]"},
	{0x8000, 0xf800, 0, "strh%c\t%0-2r, [%3-5r, #%6-10H]"},
	{0x8800, 0xf800, 0, "ldrh%c\t%0-2r, [%3-5r, #%6-10H]"},
	{0x9000, 0xf800, 0, "str%c\t%8-10r, [sp, #%0-7W]"},
	{0x9800, 0xf800, 0, "ldr%c\t%8-10r, [sp, #%0-7W]"},
	{0xa000, 0xf800, 0, "add%c\t%8-10r, pc, #%0-7W\t; (adr %8-10r, %0-7a)"},
	{0xa800, 0xf800, 0, "add%c\t%8-10r, sp, #%0-7W"},
	{0xc000, 0xf800, 0, "stmia%c\t%8-10r!, %M"},
	{0xc800, 0xf800, 0, "ldmia%c\t%8-10r%W, %M"},
	{0xdf00, 0xff00, 0, "svc%c\t%0-7d"},
	{0xde00, 0xff00, 0, "udf%c\t#%0-7d"},
	{0xde00, 0xfe00, 0, "UNDEFINED"},
	{0xd000, 0xf000, 0, "b%8-11c.n\t%0-7B%X"},
	{0xe000, 0xf800, 0, "b%c.n\t%0-10B%x"},
	{0x0000, 0x0000, 0, "UNDEFINED"},
}
