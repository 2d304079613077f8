// Package libdiff computes line diffs between renderings of trees.
package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (op Op) Prefix() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

type Colors struct {
	Insert func(string, ...any) string
	Delete func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Insert: color.New(color.FgGreen).SprintfFunc(),
		Delete: color.New(color.FgRed).SprintfFunc(),
	}
}

// Write prints lines with their prefix. colors may be nil.
func Write(w io.Writer, lines []Line, colors *Colors) error {
	for _, ln := range lines {
		s := ln.Op.Prefix() + ln.Text
		if colors != nil {
			switch ln.Op {
			case Insert:
				s = colors.Insert("%s", s)
			case Delete:
				s = colors.Delete("%s", s)
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
