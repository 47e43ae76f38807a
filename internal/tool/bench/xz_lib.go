// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_xz_lib

package bench

import (
	"io"
	"io/ioutil"

	"github.com/ulikunitz/xz"
)

func init() {
	RegisterEncoder(FormatXZ, "uk",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := xz.NewWriter(w) // The simple API has no levels
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatXZ, "uk",
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				panic(err)
			}
			return ioutil.NopCloser(zr)
		})
}
