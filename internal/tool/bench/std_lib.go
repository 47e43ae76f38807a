// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_std_lib

package bench

import (
	"compress/flate"
	"compress/gzip"
	"io"
)

func init() {
	RegisterEncoder(FormatFlate, "std",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := flate.NewWriter(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatFlate, "std",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})
	RegisterEncoder(FormatGzip, "std",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := gzip.NewWriterLevel(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatGzip, "std",
		func(r io.Reader) io.ReadCloser {
			zr, err := gzip.NewReader(r)
			if err != nil {
				panic(err)
			}
			return zr
		})
}
