/*
 * IBM 1130 source and object deck cards.
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

// Package ibm1130 builds IBM 1130 assembler source and object deck
// cards. Object decks pack three 16 bit words into four card columns,
// 4x12 = 3x16 = 48 bits, using columns 1-72. Columns 73-80 hold the
// card identification and are never part of the packing.
package ibm1130

import (
	"errors"
	"fmt"

	"github.com/vintagedata/keypunch/card"
	"github.com/vintagedata/keypunch/card/hollerith"
)

// DataColumns is the binary data region of an object card.
const DataColumns = 72

var (
	// ErrInvalidWordCount reports a word slice that cannot pack
	// into whole columns inside the data region.
	ErrInvalidWordCount = errors.New("word count not a multiple of 3 or over 54 words")
	// ErrInvalidColumnCount reports a column count that cannot
	// unpack into whole words.
	ErrInvalidColumnCount = errors.New("column count not a multiple of 4 or over 72 columns")
)

// Common IBM 1130 opcode mnemonics.
const (
	OpLD  = "LD"  // Load accumulator
	OpSTO = "STO" // Store accumulator
	OpADD = "ADD" // Add to accumulator
	OpSUB = "SUB" // Subtract from accumulator
	OpMPY = "MPY" // Multiply
	OpDIV = "DIV" // Divide
	OpBSC = "BSC" // Branch or skip conditional
	OpDC  = "DC"  // Define constant
	OpDSA = "DSA" // Define storage area
	OpEND = "END" // End of assembly
)

// PackWords converts three 16 bit words into four 12 bit column
// patterns per group. The 48 bits of a group run MSB first, the first
// word's top bit lands in row 12 of the first column. The word count
// must be a multiple of 3 and fit the 72 column data region.
func PackWords(words []uint16) ([]hollerith.Code, error) {
	if len(words)%3 != 0 || len(words)/3*4 > DataColumns {
		return nil, ErrInvalidWordCount
	}
	codes := make([]hollerith.Code, 0, len(words)/3*4)
	for i := 0; i < len(words); i += 3 {
		w0, w1, w2 := words[i], words[i+1], words[i+2]
		codes = append(codes,
			hollerith.Code(w0>>4),
			hollerith.Code((w0&0x00f)<<8|w1>>8),
			hollerith.Code((w1&0x0ff)<<4|w2>>12),
			hollerith.Code(w2&0xfff))
	}
	return codes, nil
}

// UnpackColumns is the inverse of PackWords, four column patterns back
// into three words per group. The column count must be a multiple of 4
// and no more than 72.
func UnpackColumns(codes []hollerith.Code) ([]uint16, error) {
	if len(codes)%4 != 0 || len(codes) > DataColumns {
		return nil, ErrInvalidColumnCount
	}
	words := make([]uint16, 0, len(codes)/4*3)
	for i := 0; i < len(codes); i += 4 {
		c0 := uint16(codes[i] & hollerith.Mask)
		c1 := uint16(codes[i+1] & hollerith.Mask)
		c2 := uint16(codes[i+2] & hollerith.Mask)
		c3 := uint16(codes[i+3] & hollerith.Mask)
		words = append(words,
			c0<<4|c1>>8,
			(c1&0x0ff)<<8|c2>>4,
			(c2&0x00f)<<12|c3)
	}
	return words, nil
}

// ObjectCard builds a binary card with the words packed into columns
// 1-72 and the identification punched into columns 73-80. The ident
// may be up to 8 keypunch characters and is uppercased, it is punched
// but not printed, object decks went through the punch with printing
// off.
func ObjectCard(words []uint16, ident string) (card.Card, error) {
	codes, err := PackWords(words)
	if err != nil {
		return card.Card{}, err
	}
	c := card.Blank(card.TypeBinary)
	for i, code := range codes {
		if err := c.PunchCode(i+1, code); err != nil {
			return card.Card{}, err
		}
	}
	col := DataColumns + 1
	for _, ch := range ident {
		if col > card.Columns {
			return card.Card{}, fmt.Errorf("identification %q longer than 8 columns", ident)
		}
		if ch >= 'a' && ch <= 'z' {
			ch = ch - 'a' + 'A'
		}
		code, ok := hollerith.EncodeChar(ch)
		if !ok {
			return card.Card{}, &card.UnsupportedCharError{Char: ch, Col: col}
		}
		if err := c.PunchCode(col, code); err != nil {
			return card.Card{}, err
		}
		col++
	}
	return c, nil
}

// CardWords unpacks the first cols columns of an object card back into
// words. Fails with ErrInvalidColumnCount unless cols is a positive
// multiple of 4 within the data region.
func CardWords(c card.Card, cols int) ([]uint16, error) {
	if cols <= 0 || cols%4 != 0 || cols > DataColumns {
		return nil, ErrInvalidColumnCount
	}
	codes := make([]hollerith.Code, cols)
	for i := range codes {
		codes[i] = c.Column[i].Punches
	}
	return UnpackColumns(codes)
}

// Ident returns the identification field of a card, columns 73-80
// decoded as characters.
func Ident(c card.Card) string {
	ident := ""
	for col := DataColumns; col < card.Columns; col++ {
		ident += string(c.Column[col].Char())
	}
	return ident
}

// ExampleSourceCard returns a sample assembler source card. The 1130
// card layout is label in columns 1-5, continuation in column 6,
// opcode in columns 7-10 and operands with comments from column 11.
func ExampleSourceCard() card.Card {
	c, _ := card.EncodeText("START DC   0             IBM 1130 EXAMPLE PROGRAM")
	return c
}

// Example object data, 54 words filling all 72 data columns.
func exampleWords() []uint16 {
	pattern := []uint16{0xf0cc, 0xaa99, 0xccf0, 0x99aa, 0xf099, 0xaacc}
	words := make([]uint16, DataColumns/4*3)
	for i := range words {
		words[i] = pattern[i%len(pattern)]
	}
	return words
}

// ExampleObjectCard returns a sample object deck card with sequence
// identification 00000001.
func ExampleObjectCard() card.Card {
	c, _ := ObjectCard(exampleWords(), "00000001")
	return c
}

// ValidateSource checks a card against source deck conventions.
func ValidateSource(c card.Card) error {
	if c.Type != card.TypeText {
		return errors.New("source cards must be text type")
	}
	return nil
}

// ValidateObject checks a card against object deck conventions.
func ValidateObject(c card.Card) error {
	if c.Type != card.TypeBinary {
		return errors.New("object cards must be binary type")
	}
	if c.PunchedCount() == 0 {
		return errors.New("object card cannot be blank")
	}
	return nil
}
