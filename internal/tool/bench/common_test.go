// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"hash/crc32"
	"io"
	"testing"
)

func testRoundTrip(t *testing.T, enc Encoder, dec Decoder) {
	type entry struct {
		name  string // Name of the test
		file  string // The input test file
		level int    // The compression level
		size  int    // The size of the input
	}
	var vectors []entry
	for _, f := range []string{
		"gettysburg.txt",
	} {
		for _, s := range []int{1e4, 1e5} {
			const l = 6
			vectors = append(vectors, entry{getName(f, l, s), f, l, s})
		}
	}

	for i, v := range vectors {
		input, err := loadFile("../../../testdata/"+v.file, v.size)
		if err != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, err)
			continue
		}
		buf := new(bytes.Buffer)
		wr := enc(buf, v.level)
		_, cpErr := io.Copy(wr, bytes.NewReader(input))
		if err := wr.Close(); err != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, err)
			continue
		}
		if cpErr != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, cpErr)
			continue
		}

		hash := crc32.NewIEEE()
		rd := dec(buf)
		cnt, cpErr := io.Copy(hash, rd)
		if err := rd.Close(); err != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, err)
			continue
		}
		if cpErr != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, cpErr)
			continue
		}

		sum := crc32.ChecksumIEEE(input)
		if int(cnt) != len(input) {
			t.Errorf("test %d, %s: mismatching count: got %d, want %d", i, v.name, cnt, len(input))
		}
		if hash.Sum32() != sum {
			t.Errorf("test %d, %s: mismatching checksum: got 0x%08x, want 0x%08x", i, v.name, hash.Sum32(), sum)
		}
	}
}
