// Copyright 2024 The my-poibin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 1e-9
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(int) (float64, error), expect map[int]float64) {
	t.Helper()
	for x, want := range expect {
		got, err := f(x)
		if err != nil {
			t.Errorf("%s(%v): unexpected error %v", name, x, err)
			continue
		}
		if !aeq(want, got) {
			t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
		}
	}
}

// convolvePMF computes the Poisson binomial mass function by direct
// convolution, one trial at a time. Quadratic, but trivially correct;
// it is the oracle for the transform-based construction.
func convolvePMF(p []float64) []float64 {
	pmf := make([]float64, len(p)+1)
	pmf[0] = 1
	for i, pi := range p {
		for k := i + 1; k >= 1; k-- {
			pmf[k] = pmf[k]*(1-pi) + pmf[k-1]*pi
		}
		pmf[0] *= 1 - pi
	}
	return pmf
}
