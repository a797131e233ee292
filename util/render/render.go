/*
 * Render a punch card as text.
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

// Package render draws punch cards as text for the command line
// tools. Display only, nothing here feeds back into the card model.
package render

import (
	"fmt"
	"strings"

	"github.com/vintagedata/keypunch/card"
)

// Rows from the top edge of a card down.
var rowOrder = [12]int{12, 11, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// Card draws the card as a 12 row punch grid under the printed line.
// Punches show as X, text cards print their characters along the top
// edge the way the 029 did.
func Card(c card.Card) string {
	var sb strings.Builder

	edge := " +" + strings.Repeat("-", card.Columns) + "+\n"
	sb.WriteString(edge)

	sb.WriteString(" |")
	for col := 0; col < card.Columns; col++ {
		ch := c.Column[col].Printed
		if ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
	}
	sb.WriteString("|\n")

	for _, row := range rowOrder {
		fmt.Fprintf(&sb, "%2d|", row)
		for col := 0; col < card.Columns; col++ {
			if c.Column[col].Punches.Punched(row) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}

	sb.WriteString(edge)
	return sb.String()
}
