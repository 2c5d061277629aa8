// Package seq provides standalone, generic helper functions over plain Go
// slices: the ordered-sequence primitives the nonempty package is built on.
//
// All helpers operate on []T values — no wrapper type required — and never
// mutate their inputs; functions that restructure a slice return a fresh
// copy:
//
//	rev    := seq.Reverse([]int{1, 2, 3})            // → [3 2 1]
//	sorted := seq.Sort(words, strings.Compare)
//	pairs  := seq.Zip([]string{"a", "b"}, []int{1, 2, 3}) // → [(a,1) (b,2)]
//	groups := seq.GroupBy(orders, func(o Order) string { return o.Region })
//
// # Randomisation
//
// [Shuffle] consults the process-wide math/rand source. [ShuffleWith]
// accepts a *rand.Rand so callers (and tests) can supply a seeded source.
package seq
