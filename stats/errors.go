// Copyright 2024 The my-poibin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by NewPoissonBinomial when the probability
// vector has no entries.
var ErrEmptyInput = errors.New("stats: empty probability vector")

// ErrDegenerateDistribution is returned by Skewness when the variance
// is zero, that is, when every trial probability is exactly 0 or 1.
var ErrDegenerateDistribution = errors.New("stats: degenerate distribution has no skewness")

// An InvalidProbabilityError reports a trial probability outside [0, 1].
type InvalidProbabilityError struct {
	Index int
	Value float64
}

func (e *InvalidProbabilityError) Error() string {
	return fmt.Sprintf("stats: probability %v at index %d is outside [0, 1]", e.Value, e.Index)
}

// An IndexOutOfRangeError reports a queried success count outside the
// support [0, N] of a distribution.
type IndexOutOfRangeError struct {
	K int
	N int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("stats: success count %d is outside the support [0, %d]", e.K, e.N)
}

// An InvalidQuantileError reports a requested quantile outside [0, 1].
type InvalidQuantileError struct {
	Q float64
}

func (e *InvalidQuantileError) Error() string {
	return fmt.Sprintf("stats: quantile %v is outside [0, 1]", e.Q)
}

// An InstabilityError reports that the transform of the characteristic
// function produced a mass function that is still invalid after noise
// clipping and renormalization. It is returned from construction and no
// partial distribution is available; it indicates the stabilized
// evaluation failed for the given input, not a recoverable condition.
type InstabilityError struct {
	// MinEntry is the most negative raw PMF entry.
	MinEntry float64
	// Sum is the raw PMF sum before renormalization.
	Sum float64
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("stats: unstable probability mass function (min entry %g, sum %g)", e.MinEntry, e.Sum)
}
