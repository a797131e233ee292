/*
 * Card byte record test cases.
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
	"errors"
	"testing"

	"github.com/vintagedata/keypunch/card/hollerith"
)

func TestBytesText(t *testing.T) {
	c, err := EncodeText("A1 .")
	if err != nil {
		t.Fatal(err)
	}
	buf := c.Bytes()
	want := []byte{0xc1, 0xf1, 0x40, 0x4b}
	for i, b := range want {
		if buf[i] != b {
			t.Errorf("Byte %d is %02x expected %02x", i, buf[i], b)
		}
	}
	// Remaining columns are blanks.
	for i := 4; i < 80; i++ {
		if buf[i] != 0x40 {
			t.Errorf("Byte %d is %02x expected 40", i, buf[i])
		}
	}
}

func TestBytesFallback(t *testing.T) {
	// A punched pattern with no printed character stores what it
	// decodes to, an undecodable pattern stores a blank.
	c := Blank(TypeText)
	if err := c.PunchCode(1, hollerith.FromRows([]int{12, 1})); err != nil {
		t.Fatal(err)
	}
	if err := c.PunchCode(2, hollerith.FromRows([]int{12, 11, 0})); err != nil {
		t.Fatal(err)
	}
	buf := c.Bytes()
	if buf[0] != 0xc1 {
		t.Errorf("Byte 0 is %02x expected c1", buf[0])
	}
	if buf[1] != 0x40 {
		t.Errorf("Byte 1 is %02x expected 40", buf[1])
	}
}

func TestFromBytesRoundTrip(t *testing.T) {
	orig, err := EncodeText("START DC   0  /$.¢-&")
	if err != nil {
		t.Fatal(err)
	}
	buf := orig.Bytes()
	back, err := FromBytes(buf[:])
	if err != nil {
		t.Fatal(err)
	}
	if back.Type != TypeText {
		t.Error("Restored card has wrong type")
	}
	for col := 0; col < Columns; col++ {
		if back.Column[col] != orig.Column[col] {
			t.Errorf("Column %d differs %+v != %+v", col+1, back.Column[col], orig.Column[col])
		}
	}
}

func TestFromBytesCanonical(t *testing.T) {
	// Restored punch patterns come from the character tables, not
	// from the bytes.
	var buf [80]byte
	for i := range buf {
		buf[i] = 0x40
	}
	buf[0] = 0xc1 // A
	buf[1] = 0x00 // unmapped, becomes a blank column
	c, err := FromBytes(buf[:])
	if err != nil {
		t.Fatal(err)
	}
	if c.Column[0].Punches != 0x900 || c.Column[0].Printed != 'A' {
		t.Errorf("Column 1 restored as %+v", c.Column[0])
	}
	if !c.Column[1].Blank() || c.Column[1].Printed != 0 {
		t.Errorf("Unmapped byte restored as %+v", c.Column[1])
	}
}

func TestFromBytesLength(t *testing.T) {
	for _, n := range []int{0, 79, 81, 160} {
		_, err := FromBytes(make([]byte, n))
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("%d bytes should fail with ErrLengthMismatch, got %v", n, err)
		}
		_, err = FromBinaryBytes(make([]byte, n))
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("%d binary bytes should fail with ErrLengthMismatch, got %v", n, err)
		}
	}
}

func TestBinaryBytesRoundTrip(t *testing.T) {
	c := Blank(TypeBinary)
	// Patterns restricted to the top 8 rows survive the record.
	for col := 1; col <= 80; col++ {
		if err := c.PunchCode(col, hollerith.Code(col*37)&0xff0); err != nil {
			t.Fatal(err)
		}
	}
	buf := c.Bytes()
	back, err := FromBinaryBytes(buf[:])
	if err != nil {
		t.Fatal(err)
	}
	if back.Type != TypeBinary {
		t.Error("Restored card has wrong type")
	}
	for col := 0; col < Columns; col++ {
		if back.Column[col].Punches != c.Column[col].Punches {
			t.Errorf("Column %d is %03x expected %03x", col+1,
				uint16(back.Column[col].Punches), uint16(c.Column[col].Punches))
		}
		if back.Column[col].Printed != 0 {
			t.Errorf("Column %d has printed character %q", col+1, back.Column[col].Printed)
		}
	}
}
