// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_kp_lib

package bench

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
)

func init() {
	RegisterEncoder(FormatFlate, "kp",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := flate.NewWriter(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatFlate, "kp",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})
	RegisterEncoder(FormatGzip, "kp",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := gzip.NewWriterLevel(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatGzip, "kp",
		func(r io.Reader) io.ReadCloser {
			zr, err := gzip.NewReader(r)
			if err != nil {
				panic(err)
			}
			return zr
		})
}
