package xymap

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/go-errors/errors"
)

// GenOptions controls WriteGo.
type GenOptions struct {
	// Package is the package clause of the generated file. Defaults to "xymap".
	Package string
	// Table names the generated array. Defaults to "table".
	Table string
	// Command is quoted in the generated header, e.g. "xymap gen".
	Command string
}

// WriteGo writes a gofmt'ed Go source file declaring the dimension constants
// and the lookup table of l, so a layout drawn as a mask can be compiled in
// as fixed configuration.
func WriteGo(w io.Writer, l *Layout, opts GenOptions) error {
	if opts.Package == "" {
		opts.Package = "xymap"
	}
	if opts.Table == "" {
		opts.Table = "table"
	}
	if opts.Command == "" {
		opts.Command = "xymap gen"
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by %s; DO NOT EDIT.\n\n", opts.Command)
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)

	var diagram strings.Builder
	if err := Format(&diagram, l); err != nil {
		return err
	}
	b.WriteString("// Pixel layout\n//\n")
	for _, line := range strings.Split(strings.TrimRight(diagram.String(), "\n"), "\n") {
		fmt.Fprintf(&b, "//\t%s\n", line)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "const (\n")
	fmt.Fprintf(&b, "Width uint8 = %d\n", l.w)
	fmt.Fprintf(&b, "Height uint8 = %d\n", l.h)
	fmt.Fprintf(&b, "NumLEDs = int(Width) * int(Height)\n")
	fmt.Fprintf(&b, "LastVisibleLED uint8 = %d\n", l.LastVisible())
	fmt.Fprintf(&b, "BufferLen = %d\n", l.BufferLen())
	fmt.Fprintf(&b, ")\n\n")

	fmt.Fprintf(&b, "var %s = [NumLEDs]uint8{\n", opts.Table)
	for y := 0; y < int(l.h); y++ {
		row := l.table[y*int(l.w) : (y+1)*int(l.w)]
		for _, idx := range row {
			fmt.Fprintf(&b, "%d, ", idx)
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return errors.WrapPrefix(err, "xymap: formatting generated source", 0)
	}
	if _, err := w.Write(src); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}
