/*
 * EBCDIC code points for the keypunch character set.
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

// Package ebcdic maps the 64 keypunch characters to their EBCDIC code
// points. This is the byte encoding used for 80 byte card records, it
// is independent of the Hollerith punch patterns.
package ebcdic

import "fmt"

var charToByte = map[rune]uint8{
	' ': 0x40,

	'¢': 0x4a, '.': 0x4b, '<': 0x4c, '(': 0x4d, '+': 0x4e, '|': 0x4f,
	'&': 0x50,
	'!': 0x5a, '$': 0x5b, '*': 0x5c, ')': 0x5d, ';': 0x5e, '¬': 0x5f,
	'-': 0x60, '/': 0x61,
	',': 0x6b, '%': 0x6c, '_': 0x6d, '>': 0x6e, '?': 0x6f,
	':': 0x7a, '#': 0x7b, '@': 0x7c, '\'': 0x7d, '=': 0x7e, '"': 0x7f,

	'A': 0xc1, 'B': 0xc2, 'C': 0xc3, 'D': 0xc4, 'E': 0xc5,
	'F': 0xc6, 'G': 0xc7, 'H': 0xc8, 'I': 0xc9,

	'J': 0xd1, 'K': 0xd2, 'L': 0xd3, 'M': 0xd4, 'N': 0xd5,
	'O': 0xd6, 'P': 0xd7, 'Q': 0xd8, 'R': 0xd9,

	'\\': 0xe0,
	'S':  0xe2, 'T': 0xe3, 'U': 0xe4, 'V': 0xe5, 'W': 0xe6,
	'X':  0xe7, 'Y': 0xe8, 'Z': 0xe9,

	'0': 0xf0, '1': 0xf1, '2': 0xf2, '3': 0xf3, '4': 0xf4,
	'5': 0xf5, '6': 0xf6, '7': 0xf7, '8': 0xf8, '9': 0xf9,
}

var byteToChar map[uint8]rune

// Build the reverse table and verify the assignment is a bijection.
func init() {
	byteToChar = make(map[uint8]rune, len(charToByte))
	for ch, b := range charToByte {
		if prev, ok := byteToChar[b]; ok {
			s := fmt.Sprintf("Translation error EBCDIC %02x is both %q and %q", b, prev, ch)
			panic(s)
		}
		byteToChar[b] = ch
	}
}

// CharToByte returns the EBCDIC code point for a character. The second
// result is false for characters outside the 64 character set.
func CharToByte(ch rune) (uint8, bool) {
	b, ok := charToByte[ch]
	return b, ok
}

// ByteToChar returns the character for an EBCDIC code point. The second
// result is false for bytes outside the mapped set.
func ByteToChar(b uint8) (rune, bool) {
	ch, ok := byteToChar[b]
	return ch, ok
}
