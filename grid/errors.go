// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "errors"

// input validation errors. every failure of the numeric core wraps one of these
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrTooShort      = errors.New("too few points")
	ErrNotIncreasing = errors.New("grid is not strictly increasing")
	ErrNonFinite     = errors.New("non-finite value")
	ErrNonPositive   = errors.New("non-positive value")
	ErrNonUniform    = errors.New("grid spacing is not uniform")
)

// IsInvalidInput tells whether err was caused by malformed input data
func IsInvalidInput(err error) bool {
	for _, e := range []error{ErrShapeMismatch, ErrTooShort, ErrNotIncreasing, ErrNonFinite, ErrNonPositive, ErrNonUniform} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
