/*
 * Card deck file test cases.
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
package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/vintagedata/keypunch/card"
	"github.com/vintagedata/keypunch/card/ibm1130"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadTextDeck(t *testing.T) {
	var data []byte
	for i := 0; i < 10; i++ {
		data = append(data, fmt.Sprintf("%05d HELLO WORLD\n", i)...)
	}
	path := writeFile(t, "deck.txt", data)

	ctx := NewContext(FormatText)
	if err := ctx.Attach(path, false); err != nil {
		t.Fatal(err)
	}
	defer ctx.Detach()

	if ctx.HopperSize() != 10 {
		t.Fatalf("Read %d cards expected 10", ctx.HopperSize())
	}
	for i := 0; i < 10; i++ {
		c, err := ctx.ReadCard()
		if err != nil {
			t.Fatal(err)
		}
		want := fmt.Sprintf("%05d HELLO WORLD", i)
		if c.TrimmedText() != want {
			t.Errorf("Card %d is %q expected %q", i, c.TrimmedText(), want)
		}
	}
	if _, err := ctx.ReadCard(); !errors.Is(err, ErrHopperEmpty) {
		t.Errorf("Read past end should report ErrHopperEmpty, got %v", err)
	}
}

func TestReadTextLowerAndUnsupported(t *testing.T) {
	path := writeFile(t, "deck.txt", []byte("hello~world\n"))
	ctx := NewContext(FormatText)
	if err := ctx.Attach(path, false); err != nil {
		t.Fatal(err)
	}
	defer ctx.Detach()
	c, err := ctx.ReadCard()
	if err != nil {
		t.Fatal(err)
	}
	// The tilde punches nothing but keeps its column.
	if c.TrimmedText() != "HELLO WORLD" {
		t.Errorf("Card is %q expected HELLO WORLD", c.TrimmedText())
	}
}

func TestPunchAndReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	ctx := NewContext(FormatText)
	if err := ctx.Attach(path, true); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		c, err := card.EncodeText(fmt.Sprintf("CARD %d", i))
		if err != nil {
			t.Fatal(err)
		}
		if err = ctx.PunchCard(c); err != nil {
			t.Fatal(err)
		}
	}
	ctx.Detach()

	if err := ctx.Attach(path, false); err != nil {
		t.Fatal(err)
	}
	defer ctx.Detach()
	if ctx.HopperSize() != 5 {
		t.Fatalf("Read %d cards expected 5", ctx.HopperSize())
	}
	c, err := ctx.ReadCard()
	if err != nil {
		t.Fatal(err)
	}
	if c.TrimmedText() != "CARD 0" {
		t.Errorf("Card is %q expected CARD 0", c.TrimmedText())
	}
}

func TestPunchAndReadEBCDIC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ebc")
	ctx := NewContext(FormatEBCDIC)
	if err := ctx.Attach(path, true); err != nil {
		t.Fatal(err)
	}
	orig, err := card.EncodeText("START DC   0")
	if err != nil {
		t.Fatal(err)
	}
	if err = ctx.PunchCard(orig); err != nil {
		t.Fatal(err)
	}
	ctx.Detach()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 80 {
		t.Errorf("Record is %d bytes expected 80", info.Size())
	}

	if err = ctx.Attach(path, false); err != nil {
		t.Fatal(err)
	}
	defer ctx.Detach()
	c, err := ctx.ReadCard()
	if err != nil {
		t.Fatal(err)
	}
	if c != orig {
		t.Error("EBCDIC deck did not round trip")
	}
}

func TestPunchAndReadBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	ctx := NewContext(FormatBinary)
	if err := ctx.Attach(path, true); err != nil {
		t.Fatal(err)
	}
	// The 80 byte record round trips byte for byte.
	orig, err := ibm1130.ObjectCard([]uint16{0xaa00, 0xbb00, 0xcc00}, "00000001")
	if err != nil {
		t.Fatal(err)
	}
	if err = ctx.PunchCard(orig); err != nil {
		t.Fatal(err)
	}
	ctx.Detach()

	if err = ctx.Attach(path, false); err != nil {
		t.Fatal(err)
	}
	defer ctx.Detach()
	c, err := ctx.ReadCard()
	if err != nil {
		t.Fatal(err)
	}
	if c.Type != card.TypeBinary {
		t.Error("Binary deck card has wrong type")
	}
	buf, origBuf := c.Bytes(), orig.Bytes()
	if buf != origBuf {
		t.Error("Binary deck did not round trip")
	}
}

func TestBadRecordLength(t *testing.T) {
	path := writeFile(t, "short.ebc", make([]byte, 79))
	ctx := NewContext(FormatEBCDIC)
	if err := ctx.Attach(path, false); !errors.Is(err, card.ErrLengthMismatch) {
		t.Errorf("79 byte deck should fail with ErrLengthMismatch, got %v", err)
	}
}

func TestDetectFormats(t *testing.T) {
	if f := detectFormat([]byte("HELLO WORLD\n")); f != FormatText {
		t.Errorf("ASCII detected as %d", f)
	}
	ebc := make([]byte, 80)
	for i := range ebc {
		ebc[i] = 0x40
	}
	ebc[0] = 0xc1
	if f := detectFormat(ebc); f != FormatEBCDIC {
		t.Errorf("EBCDIC detected as %d", f)
	}
	bin := make([]byte, 80)
	for i := range bin {
		bin[i] = byte(i)
	}
	if f := detectFormat(bin); f != FormatBinary {
		t.Errorf("Binary detected as %d", f)
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"auto": FormatAuto, "text": FormatText, "EBCDIC": FormatEBCDIC, "Binary": FormatBinary,
	} {
		got, err := ParseFormat(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%q parsed as %d expected %d", name, got, want)
		}
	}
	if _, err := ParseFormat("punched"); err == nil {
		t.Error("Bad format name should fail")
	}
}

func TestBlankDeck(t *testing.T) {
	ctx := NewContext(FormatText)
	ctx.BlankDeck(10)
	if ctx.HopperSize() != 10 {
		t.Fatalf("Hopper has %d cards expected 10", ctx.HopperSize())
	}
	for i := 0; i < 10; i++ {
		c, err := ctx.ReadCard()
		if err != nil {
			t.Fatal(err)
		}
		if c.PunchedCount() != 0 {
			t.Error("Blank card not blank")
		}
	}
	ctx.EmptyHopper()
	if ctx.HopperSize() != 0 {
		t.Error("EmptyHopper left cards behind")
	}
}
