/*
 * Punch card byte record conversion.
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

package card

import (
	"github.com/vintagedata/keypunch/card/ebcdic"
	"github.com/vintagedata/keypunch/card/hollerith"
)

// Both card records are exactly 80 bytes, one byte per column, with no
// header or length prefix.
//
// Text records hold the EBCDIC code point of each column's character.
// Binary records hold the top eight punch rows of each column, row 12
// in the high bit down to row 5 in the low bit. Rows 6-9 do not fit a
// single byte, the lossless path for object data is the 4 column to 3
// word packing in card/ibm1130.

// Bytes serializes the card to its 80 byte record. Text cards go
// through the EBCDIC table, binary cards store raw punch bits.
func (c Card) Bytes() [Columns]byte {
	var buf [Columns]byte

	if c.Type == TypeBinary {
		for col := 0; col < Columns; col++ {
			buf[col] = byte(c.Column[col].Punches >> 4)
		}
		return buf
	}

	for col := 0; col < Columns; col++ {
		ch := c.Column[col].Printed
		if ch == 0 {
			// No printed character, fall back on what the
			// punches decode to, blank if they decode to
			// nothing.
			ch = ' '
			if d, ok := hollerith.Decode(c.Column[col].Punches); ok {
				ch = d
			}
		}
		b, ok := ebcdic.CharToByte(ch)
		if !ok {
			b, _ = ebcdic.CharToByte(' ')
		}
		buf[col] = b
	}
	return buf
}

// FromBytes restores a text card from an 80 byte EBCDIC record. Fails
// with ErrLengthMismatch unless the buffer is exactly 80 bytes. Each
// byte is decoded to its character and then re-encoded through the
// Hollerith table, so restored cards always carry the canonical 029
// punch pattern no matter what produced the record. Unmapped bytes
// become blank columns.
func FromBytes(buf []byte) (Card, error) {
	if len(buf) != Columns {
		return Card{}, ErrLengthMismatch
	}
	c := Blank(TypeText)
	for col := 0; col < Columns; col++ {
		ch, ok := ebcdic.ByteToChar(buf[col])
		if !ok || ch == ' ' {
			// Unmapped bytes and spaces both restore as blank
			// columns.
			continue
		}
		code, _ := hollerith.EncodeChar(ch)
		c.Column[col] = Column{Punches: code, Printed: ch}
	}
	return c, nil
}

// FromBinaryBytes restores a binary card from an 80 byte punch record.
// Fails with ErrLengthMismatch unless the buffer is exactly 80 bytes.
// The inverse of Bytes for binary cards, no characters are printed.
func FromBinaryBytes(buf []byte) (Card, error) {
	if len(buf) != Columns {
		return Card{}, ErrLengthMismatch
	}
	c := Blank(TypeBinary)
	for col := 0; col < Columns; col++ {
		c.Column[col] = Column{Punches: hollerith.Code(buf[col]) << 4}
	}
	return c, nil
}
