// Copyright 2024 The my-poibin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/maxi-marufo/my-poibin/stats"
)

func TestPrintTable(t *testing.T) {
	defer func(old bool) { color.NoColor = old }(color.NoColor)
	color.NoColor = true

	// The printer works from the DiscreteDist interface, so any
	// distribution in the package can feed it.
	for _, d := range []stats.DiscreteDist{
		stats.BinomialDist{N: 5, P: 0.2},
		mustPoissonBinomial(t, []float64{0.1, 0.4, 0.75}),
	} {
		var buf bytes.Buffer
		if err := printTable(&buf, d); err != nil {
			t.Fatal(err)
		}
		_, hi := d.Bounds()
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != hi+1 {
			t.Errorf("want %d rows, got %d", hi+1, len(lines))
		}
	}
}

func TestPrintQueries(t *testing.T) {
	d := mustPoissonBinomial(t, []float64{0.1, 0.4, 0.75})
	var buf bytes.Buffer
	if err := printQueries(&buf, d, []int{0, 2}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("want 2 rows, got %d", len(lines))
	}

	if err := printQueries(&buf, d, []int{0, 4}); err == nil {
		t.Error("want error for an out of range query")
	}
}

func TestReadProbs(t *testing.T) {
	probs, err := readProbs(nil, strings.NewReader("0.1\n0.4 0.75\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.1, 0.4, 0.75}
	if len(probs) != len(want) {
		t.Fatalf("want %d probabilities, got %d", len(want), len(probs))
	}
	for i := range want {
		if probs[i] != want[i] {
			t.Errorf("want probs[%d]=%v, got %v", i, want[i], probs[i])
		}
	}

	if _, err := readProbs([]string{"0.5", "bogus"}, nil); err == nil {
		t.Error("want error for an unparseable probability")
	}
}

func mustPoissonBinomial(t *testing.T, p []float64) *stats.PoissonBinomialDist {
	t.Helper()
	d, err := stats.NewPoissonBinomial(p)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
