// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Command-line tool to compress and decompress .huf files and to inspect
// each stage of the coding pipeline.
//
// Example usage:
//	$ go build -o huf main.go
//	$ ./huf gettysburg.txt
//	Original file size: 1480
//	Compressed file size: 861
//
//	$ ./huf -d gettysburg.txt.huf
//	Decompressed file size: 1480
//
//	$ ./huf -show model gettysburg.txt
//	10:	'\n'	-->	5
//	32:	' '	-->	264
//	44:	','	-->	22
//	...
//
// The model, tree, and codes views run the coding pipeline over the raw
// input file. The bits and text views dump any file as-is.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/dsnet/huff"
	"github.com/dsnet/huff/internal/tool/huf"
)

func main() {
	decomp := flag.Bool("d", false, "decompress the input file instead of compressing it")
	show := flag.String("show", "", "print a view of the input file instead: model|tree|codes|bits|text")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-d] [-show view] file\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	file := flag.Arg(0)

	var err error
	switch {
	case *show != "":
		err = showFile(*show, file)
	case *decomp:
		err = decompressFile(file)
	default:
		err = compressFile(file)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func compressFile(file string) error {
	fi, err := os.Stat(file)
	if err != nil {
		return err
	}
	if _, err := huff.Compress(file); err != nil {
		return err
	}
	fo, err := os.Stat(file + ".huf")
	if err != nil {
		return err
	}
	fmt.Printf("Original file size: %d\n", fi.Size())
	fmt.Printf("Compressed file size: %d\n", fo.Size())
	return nil
}

func decompressFile(file string) error {
	dec, err := huff.Decompress(file)
	if err != nil {
		return err
	}
	fmt.Printf("Decompressed file size: %d\n", len(dec))
	return nil
}

func showFile(view, file string) error {
	switch view {
	case "model", "tree", "codes":
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		m, err := huff.BuildModel(bufio.NewReader(f))
		if err != nil {
			return err
		}
		if view == "model" {
			fmt.Println(huf.FormatModel(m))
			return nil
		}
		tree, err := huff.BuildTree(m)
		if err != nil {
			return err
		}
		if view == "tree" {
			fmt.Println(huf.FormatTree(tree))
			return nil
		}
		fmt.Println(huf.FormatCodes(huff.BuildCodeTable(tree)))
		return nil
	case "bits":
		data, err := ioutil.ReadFile(file)
		if err != nil {
			return err
		}
		fmt.Println(huf.FormatBits(data))
		return nil
	case "text":
		data, err := ioutil.ReadFile(file)
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
		return nil
	default:
		return fmt.Errorf("unknown view: %q", view)
	}
}
