/*
 * Punch card model and text encoding.
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

// Package card models an 80 column, 12 row punch card and converts it
// between printable text, EBCDIC card records and binary column images.
package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vintagedata/keypunch/card/hollerith"
)

// Columns on a standard card. Never changes, card stock is cut that way.
const Columns = 80

// Placeholder printed for punch patterns with no matching character.
const Placeholder = '?'

// Card type tag.
type Type int

const (
	// TypeText cards carry one printed character per column.
	TypeText Type = iota + 1
	// TypeBinary cards carry raw punch data in columns 1-72 with an
	// identification field in columns 73-80.
	TypeBinary
)

// Column is one card column: its punch pattern plus the character the
// keypunch printed along the top edge. Printed is 0 on binary cards,
// on blank columns and on columns restored from unmapped bytes.
type Column struct {
	Punches hollerith.Code
	Printed rune
}

// Blank reports whether the column has no punches.
func (col Column) Blank() bool {
	return col.Punches.Blank()
}

// Char returns the character for the column punch pattern, or the
// placeholder when the pattern is not a printable character.
func (col Column) Char() rune {
	ch, ok := hollerith.Decode(col.Punches)
	if !ok {
		return Placeholder
	}
	return ch
}

// Card is a complete punch card. The column array is fixed at 80, all
// exported operations address columns 1 based as printed on the card.
type Card struct {
	Column [Columns]Column
	Type   Type
}

var (
	// ErrLengthExceeded reports text longer than the 80 columns of a
	// card. Encoding never truncates.
	ErrLengthExceeded = errors.New("text longer than 80 columns")
	// ErrLengthMismatch reports a card record that is not exactly 80
	// bytes.
	ErrLengthMismatch = errors.New("card record not 80 bytes")
)

// UnsupportedCharError reports a character outside the keypunch set,
// with the 1 based column it was destined for.
type UnsupportedCharError struct {
	Char rune
	Col  int
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("unsupported character %q in column %d", e.Char, e.Col)
}

// Blank returns a card of the given type with no punches.
func Blank(t Type) Card {
	return Card{Type: t}
}

// Keypunch operators hit the same key for either case.
func upper(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

// EncodeText punches a text card from a string. Input is uppercased
// before lookup, as the 029 keyboard did. A character outside the
// keypunch set fails the whole card with UnsupportedCharError, and
// more than 80 characters fails with ErrLengthExceeded.
func EncodeText(text string) (Card, error) {
	c := Blank(TypeText)
	col := 0
	for _, ch := range text {
		if col >= Columns {
			return Blank(TypeText), ErrLengthExceeded
		}
		ch = upper(ch)
		code, ok := hollerith.EncodeChar(ch)
		if !ok {
			return Blank(TypeText), &UnsupportedCharError{Char: ch, Col: col + 1}
		}
		// Blank columns carry no printed character.
		if !code.Blank() {
			c.Column[col] = Column{Punches: code, Printed: ch}
		}
		col++
	}
	return c, nil
}

// Text decodes all 80 columns to a string. Patterns outside the
// character table become the placeholder, trailing blanks are kept.
func (c Card) Text() string {
	var sb strings.Builder
	for col := 0; col < Columns; col++ {
		sb.WriteRune(c.Column[col].Char())
	}
	return sb.String()
}

// TrimmedText is Text with trailing blanks removed.
func (c Card) TrimmedText() string {
	return strings.TrimRight(c.Text(), " ")
}

// PunchedCount returns the number of non blank columns.
func (c Card) PunchedCount() int {
	n := 0
	for col := 0; col < Columns; col++ {
		if !c.Column[col].Blank() {
			n++
		}
	}
	return n
}

func checkCol(col int) error {
	if col < 1 || col > Columns {
		return fmt.Errorf("column %d out of range 1-%d", col, Columns)
	}
	return nil
}

// PunchChar punches a single character into a column, replacing any
// previous punches there. The column is 1 based.
func (c *Card) PunchChar(col int, ch rune) error {
	if err := checkCol(col); err != nil {
		return err
	}
	ch = upper(ch)
	code, ok := hollerith.EncodeChar(ch)
	if !ok {
		return &UnsupportedCharError{Char: ch, Col: col}
	}
	c.Column[col-1] = Column{}
	if !code.Blank() {
		c.Column[col-1] = Column{Punches: code, Printed: ch}
	}
	return nil
}

// PunchCode punches a raw pattern into a column with no printed
// character. The column is 1 based.
func (c *Card) PunchCode(col int, code hollerith.Code) error {
	if err := checkCol(col); err != nil {
		return err
	}
	c.Column[col-1] = Column{Punches: code & hollerith.Mask}
	return nil
}

// ClearColumn blanks a single column. The column is 1 based.
func (c *Card) ClearColumn(col int) error {
	if err := checkCol(col); err != nil {
		return err
	}
	c.Column[col-1] = Column{}
	return nil
}

// Clear blanks the whole card, keeping its type.
func (c *Card) Clear() {
	c.Column = [Columns]Column{}
}
