// Copyright 2024 The my-poibin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// poibin reads per-trial success probabilities and describes the
// Poisson binomial distribution of the number of successes.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/fatih/color"

	"github.com/maxi-marufo/my-poibin/stats"
)

type cliArgs struct {
	Probs []string `arg:"positional" help:"per-trial success probabilities; read from stdin when empty"`
	Query []int    `arg:"-x,--at,separate" help:"success count to report PMF, CDF and p-value for (repeatable)"`
	Table bool     `arg:"-t,--table" help:"print the full PMF/CDF table"`
}

func main() {
	var args cliArgs
	arg.MustParse(&args)

	probs, err := readProbs(args.Probs, os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	d, err := stats.NewPoissonBinomial(probs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("n %d  mean %.6g  std dev %.6g  variance %.6g", d.N(), d.Mean(), d.StdDev(), d.Variance())
	if skew, err := d.Skewness(); err == nil {
		fmt.Printf("  skewness %.6g", skew)
	}
	fmt.Println()
	fmt.Printf("mode %d  probability %.6g\n", d.Mode(), d.ModeProb())

	if len(args.Query) > 0 {
		fmt.Println()
		if err := printQueries(os.Stdout, d, args.Query); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if args.Table {
		fmt.Println()
		if err := printTable(os.Stdout, d); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// printQueries writes the PMF, CDF and right-tailed p-value for each
// requested success count.
func printQueries(w io.Writer, d *stats.PoissonBinomialDist, ks []int) error {
	pmfs, err := d.PMFEach(ks)
	if err != nil {
		return err
	}
	cdfs, err := d.CDFEach(ks)
	if err != nil {
		return err
	}
	pvals, err := d.PValEach(ks)
	if err != nil {
		return err
	}
	for i, x := range ks {
		fmt.Fprintf(w, "k=%-6d pmf %.6g  cdf %.6g  pval %.6g\n", x, pmfs[i], cdfs[i], pvals[i])
	}
	return nil
}

// printTable writes one row per success count with a bar proportional
// to its probability. The mode row is highlighted.
func printTable(w io.Writer, d stats.DiscreteDist) error {
	const barWidth = 50
	lo, hi := d.Bounds()
	ks := make([]int, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		ks = append(ks, k)
	}
	pmfs, err := d.PMFEach(ks)
	if err != nil {
		return err
	}
	cdfs, err := d.CDFEach(ks)
	if err != nil {
		return err
	}
	mode := 0
	for i, v := range pmfs {
		if v > pmfs[mode] {
			mode = i
		}
	}
	max := pmfs[mode]
	for i, k := range ks {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("*", int(pmfs[i]/max*barWidth+0.5))
		}
		row := fmt.Sprintf("%6d %.6e %.6e %s", k, pmfs[i], cdfs[i], bar)
		if i == mode {
			row = color.GreenString(row)
		}
		fmt.Fprintln(w, row)
	}
	return nil
}

// readProbs parses the positional arguments as probabilities, or, when
// there are none, reads newline-separated probabilities from r.
func readProbs(fields []string, r io.Reader) ([]float64, error) {
	if len(fields) == 0 {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if l := strings.TrimSpace(scanner.Text()); l != "" {
				fields = append(fields, strings.Fields(l)...)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	probs := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		probs = append(probs, v)
	}
	return probs, nil
}
