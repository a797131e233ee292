/*
 * Hollerith punch code handling for IBM 029 keypunch characters.
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

package hollerith

import "fmt"

// Code holds the punch pattern for one card column as a 12 bit mask.
// Bit 0x800 is row 12, 0x400 row 11, 0x200 row 0, then 0x100 down to
// 0x001 for rows 1 to 9. Masks outside the character table are legal,
// binary cards punch arbitrary patterns.
type Code uint16

// Mask covers the 12 valid punch bits of a Code.
const Mask Code = 0xfff

// Physical row order on a card, top edge first.
var rowOrder = [12]int{12, 11, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// Return the bit for a row number, 0 for invalid rows.
func rowBit(row int) Code {
	switch {
	case row == 12:
		return 0x800
	case row == 11:
		return 0x400
	case row == 0:
		return 0x200
	case row >= 1 && row <= 9:
		return 0x100 >> (row - 1)
	}
	return 0
}

// FromRows builds a Code from a set of row numbers. Duplicate and
// invalid rows are ignored.
func FromRows(rows []int) Code {
	var c Code
	for _, r := range rows {
		c |= rowBit(r)
	}
	return c
}

// Rows returns the punched rows in physical order 12, 11, 0, 1..9.
func (c Code) Rows() []int {
	rows := []int{}
	for _, r := range rowOrder {
		if c&rowBit(r) != 0 {
			rows = append(rows, r)
		}
	}
	return rows
}

// Punched reports whether the given row is punched.
func (c Code) Punched(row int) bool {
	return c&rowBit(row) != 0
}

// Blank reports whether no rows are punched.
func (c Code) Blank() bool {
	return c&Mask == 0
}

// IBM 029 keypunch character set. Digits are a single numeric punch,
// letters combine a zone punch (12, 11 or 0) with a numeric punch, and
// the specials use fixed combinations, most with an 8 punch.
var charToCode = map[rune]Code{
	' ': 0x000,

	'0': 0x200, '1': 0x100, '2': 0x080, '3': 0x040, '4': 0x020,
	'5': 0x010, '6': 0x008, '7': 0x004, '8': 0x002, '9': 0x001,

	'A': 0x900, 'B': 0x880, 'C': 0x840, 'D': 0x820, 'E': 0x810,
	'F': 0x808, 'G': 0x804, 'H': 0x802, 'I': 0x801,

	'J': 0x500, 'K': 0x480, 'L': 0x440, 'M': 0x420, 'N': 0x410,
	'O': 0x408, 'P': 0x404, 'Q': 0x402, 'R': 0x401,

	'S': 0x280, 'T': 0x240, 'U': 0x220, 'V': 0x210, 'W': 0x208,
	'X': 0x204, 'Y': 0x202, 'Z': 0x201,

	'&': 0x800, '-': 0x400, '/': 0x300,

	'¢': 0x882, '.': 0x842, '<': 0x822, '(': 0x812, '+': 0x80a, '|': 0x806,
	'!': 0x482, '$': 0x442, '*': 0x422, ')': 0x412, ';': 0x40a, '¬': 0x406,
	'\\': 0x282, ',': 0x242, '%': 0x222, '_': 0x212, '>': 0x20a, '?': 0x206,
	':': 0x082, '#': 0x042, '@': 0x022, '\'': 0x012, '=': 0x00a, '"': 0x006,
}

var codeToChar map[Code]rune

// Build the reverse table and verify the character set is a bijection.
func init() {
	codeToChar = make(map[Code]rune, len(charToCode))
	for ch, code := range charToCode {
		if prev, ok := codeToChar[code]; ok {
			s := fmt.Sprintf("Translation error %03x is both %q and %q", uint16(code), prev, ch)
			panic(s)
		}
		codeToChar[code] = ch
	}
}

// EncodeChar returns the punch code for a character. The second result
// is false for characters outside the 64 character set. The table does
// not case fold, callers uppercase keypunch input first.
func EncodeChar(ch rune) (Code, bool) {
	code, ok := charToCode[ch]
	return code, ok
}

// Decode returns the character for a punch code. The second result is
// false when the pattern is not in the table, the normal case for
// columns holding binary data.
func Decode(c Code) (rune, bool) {
	ch, ok := codeToChar[c&Mask]
	return ch, ok
}
