// seehuhn.de/go/scanfill - integer scanline polygon filling
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

// Command hershey converts a Hershey font file into Go source code.
//
// Usage:
//
//	hershey [flags] fontfile [prefix]
//
// The generated code is written to standard output.  The identifiers in
// the generated code start with prefix, which defaults to the base name
// of the font file without extension.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/scanfill/hershey"
)

var (
	packageName = flag.String("package", "main", "package name of the generated code")
	verbose     = flag.Bool("v", false, "log glyph statistics to stderr")
	pngFile     = flag.String("png", "", "write a preview of all glyphs to this PNG file")
	scale       = flag.Int("scale", 4, "magnification of the preview")
	stroke      = flag.Int("stroke", 2, "line width of the preview, in pixels before magnification")
)

// errSyntax signals that a diagnostic has already been written.
var errSyntax = errors.New("malformed font file")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: hershey [flags] fontfile [prefix]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		slog.SetDefault(logger)
		hershey.SetLogger(logger)
	}

	fontFile := flag.Arg(0)
	prefix := prefixFromPath(fontFile)
	if flag.NArg() > 1 {
		prefix = flag.Arg(1)
	}

	out := bufio.NewWriter(os.Stdout)
	err := run(out, fontFile, prefix)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", fontFile, err)
		os.Exit(1)
	}
}

// run converts the font file and writes the generated code to w.
//
// A missing font file is reported on w and is not an error.  If the
// file ends in the middle of a glyph, nothing is written.  For malformed
// glyph headers, a diagnostic is written to w and errSyntax is returned.
func run(w io.Writer, fontFile, prefix string) error {
	data, err := os.ReadFile(fontFile)
	if errors.Is(err, fs.ErrNotExist) {
		_, err = fmt.Fprintf(w, "File '%s' not found\n", fontFile)
		return err
	} else if err != nil {
		return err
	}

	font, err := hershey.Parse(data)
	var se *hershey.SyntaxError
	switch {
	case errors.As(err, &se):
		if _, err := io.WriteString(w, "\n\n"+se.Diagnostic()); err != nil {
			return err
		}
		return fmt.Errorf("%w: %w", errSyntax, se)
	case errors.Is(err, io.ErrUnexpectedEOF):
		slog.Debug("truncated font file", "file", fontFile)
		return nil
	case err != nil:
		return err
	}

	font.Normalize()
	if err := font.WriteGo(w, *packageName, prefix); err != nil {
		return err
	}

	if *pngFile != "" {
		if err := writePreview(*pngFile, font, *scale, *stroke); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	return nil
}

// prefixFromPath returns the base name of a file, without extension.
func prefixFromPath(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
