// Copyright 2024 The my-poibin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/cmplx"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// pmfClipTol bounds the negative rounding noise tolerated in the raw
// mass function. Entries in [-pmfClipTol, 0) are clipped to zero;
// anything more negative fails construction. This is a variable for
// testing.
var pmfClipTol = 1e-10

// pmfNormTol bounds how far the raw mass function's sum may drift from
// 1 before construction fails instead of renormalizing. This is a
// variable for testing.
var pmfNormTol = 1e-7

// parallelThreshold is the number of characteristic function samples
// above which construction spreads the per-frequency products across
// GOMAXPROCS goroutines. The frequencies are independent, so the split
// needs no locking. This is a variable for testing.
var parallelThreshold = 256

// PoissonBinomialDist is the Poisson binomial distribution: the
// distribution of the number of successes among N independent Bernoulli
// trials whose success probabilities need not be equal.
//
// The probability mass function is computed once, at construction, by
// sampling the distribution's characteristic function
//
//	φ(k) = ∏_i (1 + (e^{iωk} − 1) pᵢ),  ω = 2π/(N+1)
//
// at the N+1 Fourier frequencies and inverting with a discrete Fourier
// transform, following Hong (2013), "On computing the distribution
// function for the Poisson binomial distribution", Computational
// Statistics & Data Analysis 59:41-51. The per-trial factors are
// accumulated as log magnitudes and phases rather than by repeated
// complex multiplication, which keeps the product stable when
// probabilities cluster near 0 or 1 or N is large.
//
// A constructed distribution is immutable. All methods are read-only
// and safe to call concurrently.
type PoissonBinomialDist struct {
	p   []float64
	pmf []float64
	cdf []float64
}

var _ DiscreteDist = (*PoissonBinomialDist)(nil)

// NewPoissonBinomial returns the distribution of the sum of independent
// Bernoulli trials with success probabilities p.
//
// It fails with ErrEmptyInput if p is empty and with an
// *InvalidProbabilityError if any entry lies outside [0, 1]. An
// *InstabilityError means the transform produced a mass function that
// could not be repaired by noise clipping; no distribution is returned.
func NewPoissonBinomial(p []float64) (*PoissonBinomialDist, error) {
	if len(p) == 0 {
		return nil, ErrEmptyInput
	}
	for i, v := range p {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return nil, &InvalidProbabilityError{Index: i, Value: v}
		}
	}

	d := &PoissonBinomialDist{p: append([]float64(nil), p...)}
	pmf, err := invertCharacteristic(d.p)
	if err != nil {
		return nil, err
	}
	d.pmf = pmf

	d.cdf = make([]float64, len(pmf))
	sum := 0.0
	for k, v := range pmf {
		sum += v
		d.cdf[k] = sum
	}
	// The mass function is renormalized, so the final cumulative
	// value is 1 up to the last rounding.
	d.cdf[len(d.cdf)-1] = 1
	return d, nil
}

// invertCharacteristic computes the mass function of the trial sum by
// inverting the characteristic function samples.
func invertCharacteristic(p []float64) ([]float64, error) {
	n := len(p)
	omega := 2 * math.Pi / float64(n+1)

	// φ(n+1-k) is the conjugate of φ(k), so only the first half of
	// the frequencies needs the O(n) product.
	half := n/2 + n%2
	chi := make([]complex128, n+1)
	chi[0] = 1
	sampleCharacteristic(chi, p, omega, 1, half+1)
	for k := half + 1; k <= n; k++ {
		chi[k] = cmplx.Conj(chi[n+1-k])
	}
	for k := range chi {
		chi[k] /= complex(float64(n+1), 0)
	}

	// Coefficients computes Σ_j x_j e^{-2πijk/(n+1)}, which applied
	// to φ/(n+1) is exactly the inversion formula for the mass
	// function. The result is real up to rounding because chi is
	// conjugate-even.
	fft := fourier.NewCmplxFFT(n + 1)
	xi := fft.Coefficients(nil, chi)

	pmf := make([]float64, n+1)
	minEntry := 0.0
	for k, v := range xi {
		re := real(v)
		if re < minEntry {
			minEntry = re
		}
		if re < 0 {
			re = 0
		}
		pmf[k] = re
	}
	sum := floats.Sum(pmf)
	if minEntry < -pmfClipTol || math.Abs(sum-1) > pmfNormTol {
		return nil, &InstabilityError{MinEntry: minEntry, Sum: sum}
	}
	floats.Scale(1/sum, pmf)
	return pmf, nil
}

// sampleCharacteristic fills chi[lo:hi] with the characteristic
// function samples φ(k). Each per-trial factor
//
//	1 + (e^{iωk} − 1) pᵢ = 1 − pᵢ + pᵢ e^{iωk}
//
// contributes its log modulus and its phase to running sums, and the
// sample is reconstructed from the totals, so intermediates never
// overflow or underflow however extreme the moduli are.
func sampleCharacteristic(chi []complex128, p []float64, omega float64, lo, hi int) {
	fill := func(lo, hi int) {
		for k := lo; k < hi; k++ {
			sin, cos := math.Sincos(omega * float64(k))
			logMag, phase := 0.0, 0.0
			for _, pi := range p {
				re := 1 - pi + pi*cos
				im := pi * sin
				logMag += 0.5 * math.Log(re*re+im*im)
				phase += math.Atan2(im, re)
			}
			mag := math.Exp(logMag)
			psin, pcos := math.Sincos(phase)
			chi[k] = complex(mag*pcos, mag*psin)
		}
	}

	if hi-lo < parallelThreshold {
		fill(lo, hi)
		return
	}
	workers := runtime.GOMAXPROCS(0)
	step := (hi - lo + workers - 1) / workers
	var wg sync.WaitGroup
	for start := lo; start < hi; start += step {
		end := start + step
		if end > hi {
			end = hi
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fill(lo, hi)
		}(start, end)
	}
	wg.Wait()
}

// N returns the number of trials.
func (d *PoissonBinomialDist) N() int {
	return len(d.p)
}

// Bounds returns the support of the distribution, [0, N].
func (d *PoissonBinomialDist) Bounds() (int, int) {
	return 0, len(d.p)
}

func (d *PoissonBinomialDist) check(k int) error {
	if k < 0 || k > len(d.p) {
		return &IndexOutOfRangeError{K: k, N: len(d.p)}
	}
	return nil
}

// PMF returns Pr[X = k], the probability of exactly k successes.
func (d *PoissonBinomialDist) PMF(k int) (float64, error) {
	if err := d.check(k); err != nil {
		return 0, err
	}
	return d.pmf[k], nil
}

// PMFEach returns PMF(ks[i]) for each i.
func (d *PoissonBinomialDist) PMFEach(ks []int) ([]float64, error) {
	return each(ks, d.PMF)
}

// CDF returns Pr[X <= k], the probability of k or fewer successes.
func (d *PoissonBinomialDist) CDF(k int) (float64, error) {
	if err := d.check(k); err != nil {
		return 0, err
	}
	return d.cdf[k], nil
}

// CDFEach returns CDF(ks[i]) for each i.
func (d *PoissonBinomialDist) CDFEach(ks []int) ([]float64, error) {
	return each(ks, d.CDF)
}

// PVal returns the right-tailed p-value Pr[X >= k]. PVal(0) is 1.
//
// The upper tail is summed directly from the mass function rather than
// computed as 1 − CDF(k−1), which loses precision when the lower tail
// holds almost all of the mass.
func (d *PoissonBinomialDist) PVal(k int) (float64, error) {
	if err := d.check(k); err != nil {
		return 0, err
	}
	if k == 0 {
		return 1, nil
	}
	return floats.Sum(d.pmf[k:]), nil
}

// PValEach returns PVal(ks[i]) for each i.
func (d *PoissonBinomialDist) PValEach(ks []int) ([]float64, error) {
	return each(ks, d.PVal)
}

// Mode returns the number of successes with the highest probability.
// If several counts attain the maximum, the smallest is returned.
func (d *PoissonBinomialDist) Mode() int {
	mode := 0
	for k, v := range d.pmf {
		if v > d.pmf[mode] {
			mode = k
		}
	}
	return mode
}

// ModeProb returns the largest value of the mass function, PMF(Mode()).
func (d *PoissonBinomialDist) ModeProb() float64 {
	return d.pmf[d.Mode()]
}

// Mean returns the expected number of successes, Σ pᵢ.
func (d *PoissonBinomialDist) Mean() float64 {
	return floats.Sum(d.p)
}

// Variance returns Σ pᵢ(1−pᵢ).
func (d *PoissonBinomialDist) Variance() float64 {
	v := 0.0
	for _, p := range d.p {
		v += p * (1 - p)
	}
	return v
}

// StdDev returns the standard deviation of the number of successes.
func (d *PoissonBinomialDist) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment of the number of
// successes. It fails with ErrDegenerateDistribution when the variance
// is zero, that is, when every trial is deterministic.
func (d *PoissonBinomialDist) Skewness() (float64, error) {
	variance, third := 0.0, 0.0
	for _, p := range d.p {
		q := p * (1 - p)
		variance += q
		third += q * (1 - 2*p)
	}
	if variance == 0 {
		return 0, ErrDegenerateDistribution
	}
	return third / math.Pow(variance, 1.5), nil
}

// Quantile returns the smallest k such that CDF(k) >= q. It fails
// with an *InvalidQuantileError if q lies outside [0, 1].
func (d *PoissonBinomialDist) Quantile(q float64) (int, error) {
	if !(q >= 0 && q <= 1) {
		return 0, &InvalidQuantileError{Q: q}
	}
	return sort.SearchFloat64s(d.cdf, q), nil
}

// Rand returns a random number of successes drawn from the
// distribution. If src is nil the global random source is used.
func (d *PoissonBinomialDist) Rand(src rand.Source) int {
	var u float64
	if src == nil {
		u = rand.Float64()
	} else {
		u = rand.New(src).Float64()
	}
	return sort.SearchFloat64s(d.cdf, u)
}
