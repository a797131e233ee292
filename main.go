/*
 * Keypunch - Main process.
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

package main

import (
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/vintagedata/keypunch/card"
	"github.com/vintagedata/keypunch/card/ibm1130"
	"github.com/vintagedata/keypunch/command/reader"
	"github.com/vintagedata/keypunch/deck"
	"github.com/vintagedata/keypunch/util/logger"
	"github.com/vintagedata/keypunch/util/render"
)

func main() {
	optEncode := getopt.StringLong("encode", 'e', "", "Punch one line of text and show the card")
	optRead := getopt.StringLong("read", 'r', "", "Read a deck file and list its cards")
	optPunch := getopt.StringLong("punch", 'o', "", "Punch cards to this deck file")
	optFormat := getopt.StringLong("format", 'f', "auto", "Deck format: auto, text, ebcdic, binary")
	optSource := getopt.BoolLong("source", 'S', "Punch the IBM 1130 example source card")
	optObject := getopt.BoolLong("object", 'O', "Punch the IBM 1130 example object card")
	optKeypunch := getopt.BoolLong("keypunch", 'k', "Interactive keypunch console")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger := slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, optDebug))
	slog.SetDefault(Logger)

	format, err := deck.ParseFormat(*optFormat)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	stacker := deck.NewContext(format)
	if *optPunch != "" {
		if err = stacker.Attach(*optPunch, true); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		defer stacker.Detach()
	}

	switch {
	case *optKeypunch:
		Logger.Info("Keypunch started")
		reader.ConsoleReader(stacker)
		Logger.Info("Keypunch stopped")

	case *optRead != "":
		if err = listDeck(*optRead, format, stacker); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}

	case *optEncode != "":
		var c card.Card
		if c, err = card.EncodeText(*optEncode); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		if err = showAndPunch(c, stacker); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}

	case *optSource:
		if err = showAndPunch(ibm1130.ExampleSourceCard(), stacker); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}

	case *optObject:
		if err = showAndPunch(ibm1130.ExampleObjectCard(), stacker); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}

	default:
		getopt.Usage()
		os.Exit(0)
	}
}

// Draw the card and punch it to the stacker when one is attached.
func showAndPunch(c card.Card, stacker *deck.Context) error {
	fmt.Print(render.Card(c))
	if stacker.Attached() {
		return stacker.PunchCard(c)
	}
	return nil
}

// Read a whole deck file and draw every card in it. With a punch file
// attached the cards also pass through to it, which converts decks
// between formats.
func listDeck(fileName string, format deck.Format, stacker *deck.Context) error {
	hopper := deck.NewContext(format)
	if err := hopper.Attach(fileName, false); err != nil {
		return err
	}
	defer hopper.Detach()

	slog.Debug("read deck", "file", fileName, "cards", fmt.Sprint(hopper.HopperSize()))
	for n := 1; ; n++ {
		c, err := hopper.ReadCard()
		if err != nil {
			return nil
		}
		fmt.Printf("Card %d:\n", n)
		fmt.Print(render.Card(c))
		if stacker.Attached() {
			if err = stacker.PunchCard(c); err != nil {
				return err
			}
		}
	}
}
