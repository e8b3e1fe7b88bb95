// Copyright 2024 The my-poibin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[int]float64{
			0: 0.32768,
			1: 0.4096,
			2: 0.2048,
			3: 0.0512,
			4: 0.0064,
			5: math.Pow(dist.P, 5),
		})

	// The CDF must be the running total of the PMF.
	sum := 0.0
	for k := 0; k <= dist.N; k++ {
		pmf, err := dist.PMF(k)
		if err != nil {
			t.Fatal(err)
		}
		sum += pmf
		cdf, err := dist.CDF(k)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(cdf-sum) > 1e-6 {
			t.Errorf("want CDF(%d)=%v, got %v", k, sum, cdf)
		}
	}

	if got := dist.Mean(); !aeq(1, got) {
		t.Errorf("want mean 1, got %v", got)
	}
	if got := dist.Variance(); !aeq(0.8, got) {
		t.Errorf("want variance 0.8, got %v", got)
	}
}

func TestBinomialDistOutOfRange(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	for _, k := range []int{-1000, -1, 6, 1000} {
		var oor *IndexOutOfRangeError
		if _, err := dist.PMF(k); !errors.As(err, &oor) {
			t.Errorf("want IndexOutOfRangeError from PMF(%d), got %v", k, err)
		}
		if _, err := dist.CDF(k); !errors.As(err, &oor) {
			t.Errorf("want IndexOutOfRangeError from CDF(%d), got %v", k, err)
		}
	}
	if _, err := dist.PMFEach([]int{0, 3, 6}); err == nil {
		t.Error("want error from PMFEach with an out of range value")
	}
}
