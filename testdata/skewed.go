// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Generates skewed.bin. This test file heavily favors prefix based
// compression since its symbol frequencies are highly skewed. Since each
// byte is drawn independently, LZ77 based compression does not benefit as
// much. The benchmark tool picks the file up automatically once generated.
package main

import "io/ioutil"
import "math/rand"

const (
	name = "skewed.bin"
	size = 1 << 18
)

func main() {
	var b []byte
	var r = rand.New(rand.NewSource(0))

	// Each symbol appears roughly twice as often as its successor over an
	// alphabet of the 26 lowercase letters.
	randSym := func() byte {
		k := 0
		for r.Float32() < 0.5 && k < 25 {
			k++
		}
		return byte('a' + k)
	}

	for len(b) < size {
		b = append(b, randSym())
	}

	if err := ioutil.WriteFile(name, b[:size], 0664); err != nil {
		panic(err)
	}
}
