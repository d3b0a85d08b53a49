// seehuhn.de/go/ink - freehand ink annotations for document pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Inkreplay replays a recorded gesture script against an ink session and
// prints the resulting annotations.
//
// Usage:
//
//	inkreplay [options] [script.txt]
//
// Without a script file, commands are read from standard input.  If
// standard input is a terminal, an interactive prompt is shown.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/internal/preview"
	"seehuhn.de/go/ink/internal/script"
	"seehuhn.de/go/ink/stroke"
)

func main() {
	pngFile := flag.String("png", "", "write the ink layer of a page to this PNG file")
	pageNum := flag.Int("page", 0, "page to render with -png (0-based)")
	width := flag.Int("width", 2000, "page width in pixels")
	height := flag.Int("height", 2000, "page height in pixels")
	dragErase := flag.Bool("drag", false, "erase along the whole pointer path")
	restore := flag.Bool("restore", false, "restore the paint order on undo")
	verbose := flag.Bool("v", false, "log all events to stderr")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Printf("Usage: %s [options] [script.txt]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		ink.SetLogger(slog.New(h))
	}

	s := ink.NewSession(&ink.Options{
		PageWidth:    float64(*width),
		PageHeight:   float64(*height),
		DragErase:    *dragErase,
		RestoreOrder: *restore,
	})
	defer s.Close()

	var err error
	switch {
	case flag.NArg() == 1:
		err = replayFile(s, flag.Arg(0))
	case term.IsTerminal(int(os.Stdin.Fd())):
		err = interactive(s)
	default:
		err = script.Run(s, os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying script: %v\n", err)
		os.Exit(1)
	}

	printSummary(os.Stdout, s)

	if *pngFile != "" {
		err = writePNG(s, *pngFile, *pageNum, *width, *height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
			os.Exit(1)
		}
	}
}

func replayFile(s *ink.Session, fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	return script.Run(s, f)
}

// interactive reads commands from the terminal until EOF.  Malformed
// commands are reported and skipped.
func interactive(s *ink.Session) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "ink> ")
	for {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		cmd, ok, err := script.ParseLine(line)
		if err != nil {
			fmt.Fprintf(t, "error: %v\n", err)
			continue
		}
		if !ok {
			continue
		}
		if err := script.Exec(s, cmd); err != nil {
			fmt.Fprintf(t, "error: %v\n", err)
			continue
		}
		if cmd.Kind == script.Up || cmd.Kind == script.Undo || cmd.Kind == script.Redo {
			pen, marker := s.StrokesToDraw(s.CurrentPage())
			fmt.Fprintf(t, "page %d: %d pen, %d marker\n", s.CurrentPage(), len(pen), len(marker))
		}
	}
}

func printSummary(w io.Writer, s *ink.Session) {
	for _, i := range s.Pages() {
		pen, marker := s.StrokesToDraw(i)
		if len(pen) == 0 && len(marker) == 0 {
			continue
		}
		fmt.Fprintf(w, "page %d: %d pen, %d marker\n", i, len(pen), len(marker))
		for _, st := range pen {
			printStroke(w, st)
		}
		for _, st := range marker {
			printStroke(w, st)
		}
	}
	fmt.Fprintf(w, "undo: %t, redo: %t\n", s.CanUndo(), s.CanRedo())
}

func printStroke(w io.Writer, st *stroke.Stroke) {
	b := st.BBox()
	fmt.Fprintf(w, "  %-6s %s  %3d points  [%g,%g]-[%g,%g]\n",
		st.Category, st.ID, st.Len(), b.LLx, b.LLy, b.URx, b.URy)
}

func writePNG(s *ink.Session, fname string, page, width, height int) error {
	pen, marker := s.StrokesToDraw(page)

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = preview.WritePNG(out, width, height, pen, marker)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
