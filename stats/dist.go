// Copyright 2024 The my-poibin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A DiscreteDist is a probability distribution over the integers
// lo..hi. All distributions in this package have finite support
// starting at 0.
type DiscreteDist interface {
	// PMF returns Pr[X = k]. It fails with an
	// *IndexOutOfRangeError if k is outside the support.
	PMF(k int) (float64, error)

	// PMFEach returns PMF(ks[i]) for each i. A single out of
	// range value fails the whole call.
	PMFEach(ks []int) ([]float64, error)

	// CDF returns the cumulative probability Pr[X <= k]. It fails
	// with an *IndexOutOfRangeError if k is outside the support.
	CDF(k int) (float64, error)

	// CDFEach returns CDF(ks[i]) for each i.
	CDFEach(ks []int) ([]float64, error)

	// Bounds returns the exact support [lo, hi] of the
	// distribution. All mass lies on integers in this interval.
	Bounds() (lo, hi int)

	// Mean returns the expectation of the distribution.
	Mean() float64

	// Variance returns the variance of the distribution.
	Variance() float64
}

// each applies f to every value in ks, failing on the first error.
func each(ks []int, f func(int) (float64, error)) ([]float64, error) {
	out := make([]float64, len(ks))
	for i, k := range ks {
		v, err := f(k)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
