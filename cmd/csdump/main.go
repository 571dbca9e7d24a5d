// github.com/vivster7/pikepdf - PDF content stream parsing and serialization
// Copyright (C) 2026  The pikepdf-go authors
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

// Csdump reads decoded PDF content streams and prints their
// instructions, or re-serializes them with -roundtrip.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vivster7/pikepdf"
	"github.com/vivster7/pikepdf/contentstream"
)

func main() {
	ops := flag.String("ops", "", "space-separated operator whitelist (empty = keep all)")
	roundTrip := flag.Bool("roundtrip", false, "write the re-serialized stream to stdout")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] file ...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	for _, fname := range flag.Args() {
		err := dump(fname, *ops, *roundTrip)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", fname, err)
			os.Exit(1)
		}
	}
}

func dump(fname, ops string, roundTrip bool) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := contentstream.Parse(f, ops)
	if err != nil {
		return err
	}

	if roundTrip {
		items := make([]any, len(entries))
		for i, entry := range entries {
			items[i] = entry
		}
		out, err := contentstream.Unparse(items)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		if err == nil {
			_, err = fmt.Println()
		}
		return err
	}

	for _, entry := range entries {
		switch inst := entry.(type) {
		case *contentstream.Instruction:
			line := ""
			for _, operand := range inst.Operands() {
				line += pikepdf.Format(operand) + " "
			}
			fmt.Println(line + string(inst.Operator()))
		case *contentstream.InlineImageInstruction:
			fmt.Printf("inline image: %d metadata tokens, %d bytes of data\n",
				len(inst.Metadata()), len(inst.ImageData()))
		}
	}
	return nil
}
