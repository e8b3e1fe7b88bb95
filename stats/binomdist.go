// Copyright 2024 The my-poibin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// BinomialDist is a binomial distribution: the special case of the
// Poisson binomial distribution in which every trial shares the same
// success probability.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 1.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

var _ DiscreteDist = BinomialDist{}

func (d BinomialDist) dist() distuv.Binomial {
	return distuv.Binomial{N: float64(d.N), P: d.P}
}

// PMF is the probability of getting exactly k successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k int) (float64, error) {
	if k < 0 || k > d.N {
		return 0, &IndexOutOfRangeError{K: k, N: d.N}
	}
	return d.dist().Prob(float64(k)), nil
}

// PMFEach returns PMF(ks[i]) for each i.
func (d BinomialDist) PMFEach(ks []int) ([]float64, error) {
	return each(ks, d.PMF)
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k int) (float64, error) {
	if k < 0 || k > d.N {
		return 0, &IndexOutOfRangeError{K: k, N: d.N}
	}
	return d.dist().CDF(float64(k)), nil
}

// CDFEach returns CDF(ks[i]) for each i.
func (d BinomialDist) CDFEach(ks []int) ([]float64, error) {
	return each(ks, d.CDF)
}

func (d BinomialDist) Bounds() (int, int) {
	return 0, d.N
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}
