// Package harness runs benchmark work units in a fair, randomized order and
// tabulates how long each unit took in total.
//
// # Fairness
//
// Units are scheduled in whole permutation blocks (see package schedule):
// each block runs every unit exactly once, in an order decoded from a shuffled
// permutation index. With C cycles every unit runs exactly C times, and any
// prefix of k blocks has run every unit exactly k times. Warm-up, cache and GC
// effects are therefore spread evenly instead of landing on whichever unit
// happens to run first.
//
// # Timing
//
// The runner reads its Clock immediately before and after each invocation
// and adds the difference to the unit's total. The default clock is
// time.Now, whose values carry the monotonic reading, so wall-clock jumps do
// not distort durations. Units run strictly one at a time.
//
// # Failures
//
// A unit that returns an error stops the run. Execute returns a *UnitError
// wrapping the cause together with the partially filled Table; the failing
// invocation contributes no time.
//
// # Usage
//
//	h, err := harness.New(units, harness.WithSeed(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := h.Run(ctx, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.WriteText(os.Stdout)
package harness
