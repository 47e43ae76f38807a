// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Benchmark tool to compare performance between multiple compression
// implementations. Individual implementations are referred to as codecs.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-formats huf,gz        \
//		-tests   ratio         \
//		-codecs  hf,std,kp     \
//		-files   gettysburg.txt \
//		-levels  6             \
//		-sizes   1e4,1e5,1e6
//
//	BENCHMARK: huf:ratio
//		benchmark                  hf ratio  delta
//		gettysburg.txt:6:1e4          1.74x  1.00x
//		gettysburg.txt:6:1e5          1.75x  1.00x
//		gettysburg.txt:6:1e6          1.75x  1.00x
//
//	BENCHMARK: gz:ratio
//		benchmark                 std ratio  delta       kp ratio  delta
//		gettysburg.txt:6:1e4          2.80x  1.00x          2.77x  0.99x
//		gettysburg.txt:6:1e5          2.98x  1.00x          2.95x  0.99x
//		gettysburg.txt:6:1e6          3.01x  1.00x          2.98x  0.99x
//
//	RUNTIME: 1m3.791938126s
package main

import (
	"flag"
	"fmt"
	"go/build"
	"io/ioutil"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dsnet/golib/strconv"
	"github.com/dsnet/huff/internal/tool/bench"
)

// By default, the benchmark tool will look for test data in this "package".
const testPkg = "github.com/dsnet/huff/testdata"

const (
	defaultLevels = "6"
	defaultSizes  = "1e4,1e5,1e6"
)

// The decompression speed benchmark works by decompressing some pre-compressed
// data. In order for the benchmarks to be consistent, the same encoder should
// be used to generate the pre-compressed data for all the trials.
//
// encRefs defines the priority order for which encoders to choose first as the
// reference compressor. If no compressor is found for any of the listed codecs,
// then a random encoder will be chosen.
var encRefs = []string{"std", "kp", "uk", "hf"}

var (
	fmtToEnum = map[string]bench.Format{
		"huf": bench.FormatHuff,
		"fl":  bench.FormatFlate,
		"gz":  bench.FormatGzip,
		"xz":  bench.FormatXZ,
	}
	testToEnum = map[string]int{
		"encRate": bench.TestEncodeRate,
		"decRate": bench.TestDecodeRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestEncodeRate:    "encRate",
		bench.TestDecodeRate:    "decRate",
		bench.TestCompressRatio: "ratio",
	}
)

func defaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultFiles() string {
	p := strings.Split(defaultPaths(), ",")[0]
	fis, err := ioutil.ReadDir(p)
	if err != nil {
		return ""
	}
	var s []string
	for _, fi := range fis {
		if !strings.HasSuffix(fi.Name(), ".go") {
			s = append(s, fi.Name())
		}
	}
	return strings.Join(s, ",")
}

func defaultCodecs() string {
	m := make(map[string]bool)
	for _, v := range bench.Encoders {
		for k := range v {
			m[k] = true
		}
	}
	for _, v := range bench.Decoders {
		for k := range v {
			m[k] = true
		}
	}
	hasHF := m["hf"]
	delete(m, "hf")
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	if hasHF {
		s = append([]string{"hf"}, s...) // Ensure "hf" always appears first
	}
	return strings.Join(s, ",")
}

func defaultFormats() string {
	m := make(map[bench.Format]bool)
	for k := range bench.Encoders {
		m[k] = true
	}
	for k := range bench.Decoders {
		m[k] = true
	}
	var d []int
	for k := range m {
		d = append(d, int(k))
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, bench.Format(v).String())
	}
	return strings.Join(s, ",")
}

func defaultPaths() string {
	pkg, err := build.Import(testPkg, "", build.FindOnly)
	if err != nil {
		return ""
	}
	return pkg.Dir
}

func main() {
	// Setup flag arguments.
	f0 := flag.String("formats", defaultFormats(), "List of formats to benchmark")
	f1 := flag.String("tests", defaultTests(), "List of different benchmark tests")
	f2 := flag.String("codecs", defaultCodecs(), "List of codecs to benchmark")
	f3 := flag.String("paths", defaultPaths(), "List of paths to search for test files")
	f4 := flag.String("files", defaultFiles(), "List of input files to benchmark")
	f5 := flag.String("levels", defaultLevels, "List of compression levels to benchmark")
	f6 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	flag.Parse()

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var codecs, paths, files []string
	var formats []bench.Format
	var tests, levels, sizes []int
	codecs = sep.Split(*f2, -1)
	paths = sep.Split(*f3, -1)
	files = sep.Split(*f4, -1)
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := fmtToEnum[s]; !ok {
			panic("invalid format")
		}
		formats = append(formats, fmtToEnum[s])
	}
	for _, s := range sep.Split(*f1, -1) {
		if _, ok := testToEnum[s]; !ok {
			panic("invalid test")
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f5, -1) {
		lvl, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			panic("invalid level")
		}
		levels = append(levels, int(lvl))
	}
	for _, s := range sep.Split(*f6, -1) {
		var size int
		if nf, err := strconv.ParsePrefix(s, strconv.AutoParse); err == nil {
			size = int(nf)
		}
		sizes = append(sizes, size)
	}

	ts := time.Now()
	bench.Paths = paths
	runBenchmarks(files, codecs, formats, tests, levels, sizes)
	te := time.Now()
	fmt.Printf("RUNTIME: %v\n", te.Sub(ts))
}

func runBenchmarks(files, codecs []string, formats []bench.Format, tests, levels, sizes []int) {
	for _, f := range formats {
		// Get lists of encoders and decoders that exist.
		var encs, decs []string
		for _, c := range codecs {
			if _, ok := bench.Encoders[f][c]; ok {
				encs = append(encs, c)
			}
		}
		for _, c := range codecs {
			if _, ok := bench.Decoders[f][c]; ok {
				decs = append(decs, c)
			}
		}

		for _, t := range tests {
			var results [][]bench.Result
			var names, codecs []string
			var title, suffix string

			// Check that we can actually do this bench.
			fmt.Printf("BENCHMARK: %v:%s\n", f, enumToTest[t])
			if len(encs) == 0 {
				fmt.Println("\tSKIP: There are no encoders available.\n")
				continue
			}
			if len(decs) == 0 && t == bench.TestDecodeRate {
				fmt.Println("\tSKIP: There are no decoders available.\n")
				continue
			}

			// Progress ticker.
			var cnt int
			tick := func() {
				total := len(codecs) * len(files) * len(levels) * len(sizes)
				pct := 100.0 * float64(cnt) / float64(total)
				fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
				cnt++
			}

			// Perform the bench. This may take some time.
			switch t {
			case bench.TestEncodeRate:
				codecs, title, suffix = encs, "MB/s", ""
				results, names = bench.BenchmarkEncoderSuite(f, encs, files, levels, sizes, tick)
			case bench.TestDecodeRate:
				ref := getReferenceEncoder(f)
				codecs, title, suffix = decs, "MB/s", ""
				results, names = bench.BenchmarkDecoderSuite(f, decs, files, levels, sizes, ref, tick)
			case bench.TestCompressRatio:
				codecs, title, suffix = encs, "ratio", "x"
				results, names = bench.BenchmarkRatioSuite(f, encs, files, levels, sizes, tick)
			default:
				panic("unknown test")
			}

			// Print all of the results.
			printResults(results, names, codecs, title, suffix)
			fmt.Println()
		}
		fmt.Println()
	}
}

func getReferenceEncoder(f bench.Format) bench.Encoder {
	for _, c := range encRefs {
		if enc, ok := bench.Encoders[f][c]; ok {
			return enc // Choose by priority
		}
	}
	for _, enc := range bench.Encoders[f] {
		return enc // Choose any random encoder
	}
	return nil // There are no encoders
}

func printResults(results [][]bench.Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
