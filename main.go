/*
 * LC3 - Main process.
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
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/LC3/emu/console"
	"github.com/rcornwell/LC3/emu/cpu"
	"github.com/rcornwell/LC3/emu/loader"
	"github.com/rcornwell/LC3/emu/memory"
	"github.com/rcornwell/LC3/util/logger"
)

// Exit statuses. Image and usage failures follow the small codes
// convention, a fatal opcode exits like an abort, an interrupt like
// a signal death.
const (
	exitOK        = 0
	exitLoadError = 1
	exitUsage     = 2
	exitFatal     = 134
	exitInterrupt = 254
)

func main() {
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Mirror debug records to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.SetParameters("image-file [image-file ...]")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(exitOK)
	}

	images := getopt.Args()
	if len(images) == 0 {
		getopt.Usage()
		os.Exit(exitUsage)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	slog.SetDefault(slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, *optDebug)))

	mem := memory.New()
	for _, path := range images {
		if err := loader.Load(path, mem); err != nil {
			fmt.Printf("failed to load image: %s\n", path)
			slog.Error("Image load failed", "path", path, "error", err.Error())
			os.Exit(exitLoadError)
		}
		slog.Debug("Image loaded", "path", path)
	}

	con := console.New()
	mem.SetKeyboard(con)

	if err := con.Raw(); err != nil {
		slog.Error("Terminal setup failed", "error", err.Error())
		os.Exit(exitLoadError)
	}

	// Put the terminal back before dying on Ctrl-C.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		con.Restore()
		fmt.Println()
		os.Exit(exitInterrupt)
	}()

	slog.Debug("LC3 started")
	machine := cpu.New(mem, con)
	err := machine.Run()
	con.Restore()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(exitFatal)
	}
	slog.Debug("LC3 halted")
}
