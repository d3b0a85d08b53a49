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

// Package script reads and replays recorded pointer gestures.
//
// A script is a text file with one command per line.  Blank lines and
// lines starting with "#" are ignored.  The commands are
//
//	page N          select page N
//	size W H        set the size of the rendered page
//	tool NAME       select a tool: none, pen, marker or eraser
//	down X Y        pointer down
//	move X Y ...    pointer moves, one or more coordinate pairs
//	up              pointer up
//	undo
//	redo
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/gesture"
	"seehuhn.de/go/ink/internal/logging"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errArgCount       = errors.New("wrong number of arguments")
)

// SyntaxError reports a malformed script line.
type SyntaxError struct {
	Line int
	Err  error
}

func (err *SyntaxError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// Kind identifies a script command.
type Kind uint8

// These are the script commands.
const (
	Page Kind = iota + 1
	Size
	Tool
	Down
	Move
	Up
	Undo
	Redo
)

var kindNames = map[string]Kind{
	"page": Page,
	"size": Size,
	"tool": Tool,
	"down": Down,
	"move": Move,
	"up":   Up,
	"undo": Undo,
	"redo": Redo,
}

func (k Kind) String() string {
	for name, kk := range kindNames {
		if kk == k {
			return name
		}
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one parsed script line.
type Command struct {
	Kind Kind

	// Page is the argument of a page command.
	Page int

	// Tool is the argument of a tool command.
	Tool gesture.Tool

	// Points holds the coordinates of down and move commands.  For size
	// commands, Points[0] holds the width and height.
	Points []vec.Vec2
}

// Target receives the commands of a script.  The Session type of the ink
// package implements this interface.
type Target interface {
	SetCurrentPage(i int) error
	SetPageSize(width, height float64)
	SetTool(t gesture.Tool)
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
	Undo() (page int, ok bool)
	Redo() (page int, ok bool)
}

// ParseLine parses a single script line.  For blank lines and comments,
// ok is false.  Errors are not wrapped in a [SyntaxError].
func ParseLine(line string) (cmd Command, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, false, nil
	}

	fields := strings.Fields(line)
	kind, known := kindNames[strings.ToLower(fields[0])]
	if !known {
		return Command{}, false, fmt.Errorf("%q: %w", fields[0], errUnknownCommand)
	}
	args := fields[1:]
	cmd.Kind = kind

	switch kind {
	case Page:
		if len(args) != 1 {
			return Command{}, false, fmt.Errorf("page: %w", errArgCount)
		}
		cmd.Page, err = strconv.Atoi(args[0])
		if err != nil {
			return Command{}, false, err
		}
	case Tool:
		if len(args) != 1 {
			return Command{}, false, fmt.Errorf("tool: %w", errArgCount)
		}
		cmd.Tool, err = gesture.ParseTool(args[0])
		if err != nil {
			return Command{}, false, err
		}
	case Size, Down, Move:
		if len(args) == 0 || len(args)%2 != 0 || (kind != Move && len(args) != 2) {
			return Command{}, false, fmt.Errorf("%s: %w", kind, errArgCount)
		}
		cmd.Points, err = parsePoints(args)
		if err != nil {
			return Command{}, false, err
		}
	default:
		if len(args) != 0 {
			return Command{}, false, fmt.Errorf("%s: %w", kind, errArgCount)
		}
	}
	return cmd, true, nil
}

func parsePoints(args []string) ([]vec.Vec2, error) {
	res := make([]vec.Vec2, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, err
		}
		res = append(res, vec.Vec2{X: x, Y: y})
	}
	return res, nil
}

// Parse reads a complete script.
func Parse(r io.Reader) ([]Command, error) {
	var res []Command
	err := scan(r, func(cmd Command) error {
		res = append(res, cmd)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Run executes the commands from r one by one, as they are read.
// Execution stops at the first error.
func Run(t Target, r io.Reader) error {
	return scan(r, func(cmd Command) error {
		return Exec(t, cmd)
	})
}

func scan(r io.Reader, fn func(Command) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		cmd, ok, err := ParseLine(sc.Text())
		if err != nil {
			return &SyntaxError{Line: lineNo, Err: err}
		}
		if !ok {
			continue
		}
		if err := fn(cmd); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return sc.Err()
}

// Exec applies a single command to t.
func Exec(t Target, cmd Command) error {
	log := logging.Logger()
	switch cmd.Kind {
	case Page:
		return t.SetCurrentPage(cmd.Page)
	case Size:
		t.SetPageSize(cmd.Points[0].X, cmd.Points[0].Y)
	case Tool:
		t.SetTool(cmd.Tool)
	case Down:
		t.PointerDown(cmd.Points[0].X, cmd.Points[0].Y)
	case Move:
		for _, p := range cmd.Points {
			t.PointerMove(p.X, p.Y)
		}
	case Up:
		t.PointerUp()
	case Undo:
		page, ok := t.Undo()
		log.Debug("script undo", "page", page, "ok", ok)
	case Redo:
		page, ok := t.Redo()
		log.Debug("script redo", "page", page, "ok", ok)
	default:
		return fmt.Errorf("%s: %w", cmd.Kind, errUnknownCommand)
	}
	return nil
}
