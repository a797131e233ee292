/*
 * Keypunch - interactive console.
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

// Package reader runs the interactive keypunch console. Each line typed
// becomes one card, shown as a punch grid and dropped into the output
// stacker if one is attached. Lines starting with a dot are console
// commands.
package reader

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/peterh/liner"

	"github.com/vintagedata/keypunch/card"
	"github.com/vintagedata/keypunch/deck"
	"github.com/vintagedata/keypunch/util/render"
)

var commands = []string{".attach", ".detach", ".format", ".help", ".quit", ".show"}

// ConsoleReader loops reading lines from the terminal and punching
// them until .quit or control-C.
func ConsoleReader(stacker *deck.Context) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completeCmd)

	var last card.Card
	punched := false

	for {
		input, err := line.Prompt("punch> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			slog.Error("error reading line: " + err.Error())
			return
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, ".") {
			if quit := processCommand(input, stacker, last, punched); quit {
				return
			}
			continue
		}

		c, err := card.EncodeText(input)
		if err != nil {
			fmt.Println("Error: " + err.Error())
			continue
		}
		last, punched = c, true
		fmt.Print(render.Card(c))
		if stacker.Attached() {
			if err = stacker.PunchCard(c); err != nil {
				fmt.Println("Error: " + err.Error())
			}
		}
	}
}

// Complete console commands, card text has no completion.
func completeCmd(line string) []string {
	if !strings.HasPrefix(line, ".") {
		return nil
	}
	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, line) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// Handle one dot command. Returns true on .quit.
func processCommand(input string, stacker *deck.Context, last card.Card, punched bool) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case ".quit":
		return true

	case ".help":
		fmt.Println("Type a line to punch it as a card.")
		fmt.Println(" .attach <file>   punch following cards to file")
		fmt.Println(" .detach          close the punch file")
		fmt.Println(" .format <fmt>    set deck format: auto, text, ebcdic, binary")
		fmt.Println(" .show            redraw the last card")
		fmt.Println(" .quit            leave the keypunch")

	case ".attach":
		if len(fields) != 2 {
			fmt.Println("Usage: .attach <file>")
			break
		}
		if err := stacker.Attach(fields[1], true); err != nil {
			fmt.Println("Error: " + err.Error())
			break
		}
		fmt.Println("Punching to " + fields[1])

	case ".detach":
		stacker.Detach()

	case ".format":
		if len(fields) != 2 {
			fmt.Println("Usage: .format auto|text|ebcdic|binary")
			break
		}
		format, err := deck.ParseFormat(fields[1])
		if err != nil {
			fmt.Println("Error: " + err.Error())
			break
		}
		stacker.SetFormat(format)

	case ".show":
		if !punched {
			fmt.Println("No card punched yet.")
			break
		}
		fmt.Print(render.Card(last))

	default:
		fmt.Println("Unknown command " + fields[0])
	}
	return false
}
