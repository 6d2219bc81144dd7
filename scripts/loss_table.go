// loss_table prints the expected losses for every enemy score under a rules
// table, sampled over many engagements.
// Usage: go run scripts/loss_table.go [-rules rules.yaml] [-people 100] [-n 10000] [-fort 0]
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"text/tabwriter"

	"wargame/internal/combat"
)

func main() {
	code := run()
	if code != 0 {
		os.Exit(code)
	}
}

func run() int {
	rulesPath := flag.String("rules", "", "rules table (default: built-in)")
	people := flag.Int("people", 100, "people on the losing side")
	n := flag.Int("n", 10000, "samples per score")
	fort := flag.Int("fort", 0, "enemy fortification level 0..3")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	if *n <= 0 || *people < 0 {
		fmt.Fprintf(os.Stderr, "n must be positive and people not negative\n")
		return 1
	}
	rules := combat.DefaultRules()
	if *rulesPath != "" {
		var err error
		if rules, err = combat.LoadRules(*rulesPath); err != nil {
			fmt.Fprintf(os.Stderr, "load rules: %v\n", err)
			return 1
		}
	}

	src := rand.New(rand.NewPCG(*seed, *seed^0x5bd1e995))
	own := combat.SideInput{People: *people}
	enemy := combat.SideInput{Fortification: min(max(*fort, 0), combat.MaxFortification)}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "enemy score\tmin\tmean\tmax\tmean %\t")
	last := rules.LossBands[len(rules.LossBands)-1].Score
	for score := 1; score <= last; score++ {
		lo, hi, sum := math.MaxInt, 0, 0
		for i := 0; i < *n; i++ {
			l := rules.Losses(src, own, enemy, score).Actual
			lo, hi, sum = min(lo, l), max(hi, l), sum+l
		}
		mean := float64(sum) / float64(*n)
		pct := 0.0
		if *people > 0 {
			pct = 100 * mean / float64(*people)
		}
		fmt.Fprintf(tw, "%d\t%d\t%.1f\t%d\t%.1f\t\n", score, lo, mean, hi, pct)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		return 1
	}
	return 0
}
