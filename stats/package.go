// Copyright 2024 The my-poibin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats provides discrete probability distributions over counts of
// successes in independent Bernoulli trials, chiefly the Poisson
// binomial distribution.
package stats // import "github.com/maxi-marufo/my-poibin/stats"
