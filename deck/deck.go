/*
 * Card deck file handling.
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

// Package deck reads and punches card deck files. A context holds a
// hopper of cards attached to a file in one of three formats:
//
//	Text:   one ASCII line per card, newline terminated.
//	EBCDIC: exact 80 byte records, one EBCDIC byte per column.
//	Binary: exact 80 byte records of raw punch data.
//
// All file access lives here, the card package itself never touches
// the filesystem. Text files load on a best effort basis, characters
// outside the keypunch set become blank columns and long lines are
// cut at 80. The strict keypunch rules live in card.EncodeText.
package deck

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vintagedata/keypunch/card"
	"github.com/vintagedata/keypunch/card/ebcdic"
	"github.com/vintagedata/keypunch/card/hollerith"
)

// Deck file format.
type Format int

const (
	// FormatAuto detects the format on read and picks text or
	// binary per card on punch.
	FormatAuto Format = iota + 1
	FormatText
	FormatEBCDIC
	FormatBinary
)

// ErrHopperEmpty reports a read with no cards left in the hopper.
var ErrHopperEmpty = errors.New("hopper empty")

// ParseFormat maps a format name from the command line to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ebcdic":
		return FormatEBCDIC, nil
	case "binary":
		return FormatBinary, nil
	}
	return 0, fmt.Errorf("unknown deck format %q", name)
}

// Context is a card hopper attached to a deck file.
type Context struct {
	file   *os.File // punch output file, nil when reading
	format Format
	hopper []card.Card
	pos    int
}

// NewContext returns a detached context using the given format.
func NewContext(format Format) *Context {
	return &Context{format: format}
}

// SetFormat changes the format used for later reads and punches.
func (ctx *Context) SetFormat(format Format) {
	ctx.format = format
}

// Attached reports whether the context has an open punch file or
// loaded hopper.
func (ctx *Context) Attached() bool {
	return ctx.file != nil || len(ctx.hopper) > 0
}

// Attach connects the context to a deck file. With write set the file
// is created and cards punched to it, otherwise the whole file is read
// into the hopper.
func (ctx *Context) Attach(fileName string, write bool) error {
	ctx.Detach()
	if write {
		file, err := os.Create(fileName)
		if err != nil {
			return err
		}
		ctx.file = file
		return nil
	}
	return ctx.readDeck(fileName)
}

// Detach closes any punch file and empties the hopper.
func (ctx *Context) Detach() {
	if ctx.file != nil {
		ctx.file.Close()
		ctx.file = nil
	}
	ctx.EmptyHopper()
}

// HopperSize returns the number of cards left to read.
func (ctx *Context) HopperSize() int {
	return len(ctx.hopper) - ctx.pos
}

// EmptyHopper discards all cards in the hopper.
func (ctx *Context) EmptyHopper() {
	ctx.hopper = nil
	ctx.pos = 0
}

// BlankDeck adds n blank text cards to the hopper.
func (ctx *Context) BlankDeck(n int) {
	for i := 0; i < n; i++ {
		ctx.hopper = append(ctx.hopper, card.Blank(card.TypeText))
	}
}

// ReadCard takes the next card from the hopper.
func (ctx *Context) ReadCard() (card.Card, error) {
	if ctx.pos >= len(ctx.hopper) {
		return card.Card{}, ErrHopperEmpty
	}
	c := ctx.hopper[ctx.pos]
	ctx.pos++
	return c, nil
}

// PunchCard writes one card to the attached punch file. Text format
// writes a trimmed ASCII line, EBCDIC and binary write the 80 byte
// record. Auto picks text for text cards and binary records for
// binary cards.
func (ctx *Context) PunchCard(c card.Card) error {
	if ctx.file == nil {
		return errors.New("not attached for punching")
	}

	format := ctx.format
	if format == FormatAuto {
		format = FormatBinary
		if c.Type == card.TypeText {
			format = FormatText
		}
	}

	var err error
	switch format {
	case FormatText:
		_, err = ctx.file.WriteString(c.TrimmedText() + "\n")
	case FormatEBCDIC, FormatBinary:
		buf := c.Bytes()
		_, err = ctx.file.Write(buf[:])
	default:
		err = fmt.Errorf("unknown deck format %d", format)
	}
	return err
}

// Read a deck file into the hopper, detecting the format if needed.
func (ctx *Context) readDeck(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	format := ctx.format
	if format == FormatAuto {
		format = detectFormat(data)
	}

	switch format {
	case FormatText:
		return ctx.parseText(data)
	case FormatEBCDIC, FormatBinary:
		if len(data)%card.Columns != 0 {
			return fmt.Errorf("deck %s: %w", fileName, card.ErrLengthMismatch)
		}
		for off := 0; off < len(data); off += card.Columns {
			var c card.Card
			if format == FormatEBCDIC {
				c, err = card.FromBytes(data[off : off+card.Columns])
			} else {
				c, err = card.FromBinaryBytes(data[off : off+card.Columns])
			}
			if err != nil {
				return err
			}
			ctx.hopper = append(ctx.hopper, c)
		}
		return nil
	}
	return fmt.Errorf("unknown deck format %d", format)
}

// Pick a format for a deck file. Printable ASCII with line endings is
// a text deck. Whole 80 byte records where every byte is a mapped
// EBCDIC code are an EBCDIC deck, anything else is binary punch data.
func detectFormat(data []byte) Format {
	text := true
	for _, b := range data {
		if b == '\n' || b == '\r' || b == '\t' {
			continue
		}
		if b < 0x20 || b > 0x7e {
			text = false
			break
		}
	}
	if text {
		return FormatText
	}
	if len(data)%card.Columns != 0 {
		return FormatText
	}
	for _, b := range data {
		if _, ok := ebcdic.ByteToChar(b); !ok {
			return FormatBinary
		}
	}
	return FormatEBCDIC
}

// Convert text lines to cards. Unsupported characters punch as blank
// and columns past 80 are dropped, file loads never fail on content.
func (ctx *Context) parseText(data []byte) error {
	lines := strings.Split(string(data), "\n")
	// A trailing newline leaves an empty last element, not a card.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		c := card.Blank(card.TypeText)
		col := 1
		for _, ch := range line {
			if col > card.Columns {
				break
			}
			if ch == '\t' {
				// Expand to the next tab stop of 8, as the
				// old readers did.
				col = ((col - 1) | 7) + 2
				continue
			}
			if ch >= 'a' && ch <= 'z' {
				ch = ch - 'a' + 'A'
			}
			if code, ok := hollerith.EncodeChar(ch); ok {
				_ = c.PunchCode(col, code)
				if !code.Blank() {
					c.Column[col-1].Printed = ch
				}
			}
			col++
		}
		ctx.hopper = append(ctx.hopper, c)
	}
	return nil
}
