// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// prms returns a set of parameters from pairs of name and value
func prms(nameval ...interface{}) (res utl.Params) {
	for i := 0; i+1 < len(nameval); i += 2 {
		p := &utl.P{N: nameval[i].(string)}
		switch v := nameval[i+1].(type) {
		case int:
			p.V = float64(v)
		case float64:
			p.V = v
		}
		res = append(res, p)
	}
	return
}
