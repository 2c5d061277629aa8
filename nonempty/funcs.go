package nonempty

// This file contains package-level generic functions for operations that
// transform a Seq[T] into a Seq of another element type (T ≠ U), or that
// need an extra type parameter for keys or accumulators.
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operations must be stand-alone functions. They compose with the
// method-based API:
//
//	totals := nonempty.Map(
//	    nonempty.New(order1, order2).Sort(byDate),
//	    func(o Order) float64 { return o.Total },
//	)

import "github.com/hasbyte1/go-nonempty/seq"

// Map applies fn to every element and returns a new Seq[U] of the same
// length, in the same order.
//
//	labels := nonempty.Map(nonempty.New(1, 2, 3), strconv.Itoa)
func Map[T, U any](s Seq[T], fn func(T) U) Seq[U] {
	return IndexMap(s, func(item T, _ int) U { return fn(item) })
}

// IndexMap is [Map] with fn additionally receiving the element's zero-based
// position, counting up from the head.
func IndexMap[T, U any](s Seq[T], fn func(T, int) U) Seq[U] {
	return fromOwned(seq.Map(s.All(), fn))
}

// MapFold threads an accumulator through the elements left to right while
// mapping them: fn receives the running accumulator and the element and
// returns the new accumulator and the mapped element. The final accumulator
// is returned alongside the mapped Seq, which keeps the original order.
//
//	sum, running := nonempty.MapFold(nonempty.New(1, 2, 3), 0,
//	    func(acc, n int) (int, int) { return acc + n, acc + n })
//	// sum = 6, running = [1 3 6]
func MapFold[T, A, U any](s Seq[T], seed A, fn func(A, T) (A, U)) (A, Seq[U]) {
	acc := seed
	out := make([]U, 0, s.Len())
	s.Each(func(item T, _ int) {
		var mapped U
		acc, mapped = fn(acc, item)
		out = append(out, mapped)
	})
	return acc, fromOwned(out)
}

// Scan returns the inclusive running fold of the elements: position i holds
// the accumulator after folding elements 0..i with fn, starting from seed.
// The first output is fn(seed, head) — never seed itself — and the result
// has the same length as s.
//
//	nonempty.Scan(nonempty.New(1, 2, 3), 0, func(acc, n int) int { return acc + n })
//	// → [1 3 6]
func Scan[T, A any](s Seq[T], seed A, fn func(A, T) A) Seq[A] {
	_, out := MapFold(s, seed, func(acc A, item T) (A, A) {
		next := fn(acc, item)
		return next, next
	})
	return out
}

// FlatMap maps every element to a Seq[U] via fn and concatenates the results
// in order. Because each element produces at least one output element, the
// result is non-empty by construction.
func FlatMap[T, U any](s Seq[T], fn func(T) Seq[U]) Seq[U] {
	return Flatten(Map(s, fn))
}

// Flatten concatenates a Seq of Seqs into a single Seq, preserving both the
// outer and the inner element order. O(total element count).
//
//	nonempty.Flatten(nonempty.New(nonempty.New(1, 2), nonempty.New(3)))
//	// → [1 2 3]
func Flatten[T any](s Seq[Seq[T]]) Seq[T] {
	chunks := seq.Map(s.All(), func(inner Seq[T], _ int) []T { return inner.All() })
	return fromOwned(seq.Collapse(chunks))
}

// Pluck extracts a single value U from every element and returns a Seq[U].
//
//	names := nonempty.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](s Seq[T], fn func(T) U) Seq[U] {
	return Map(s, fn)
}

// Zip pairs the elements of a and b positionally. The result is truncated to
// the shorter of the two: excess elements of the longer argument are
// silently dropped, so Zip never fails. For a failing variant see
// [StrictZip].
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	return Map2(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})
}

// Map2 combines the elements of a and b positionally with fn, truncating to
// the shorter of the two like [Zip].
func Map2[A, B, V any](a Seq[A], b Seq[B], fn func(A, B) V) Seq[V] {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	as, bs := a.All(), b.All()
	out := make([]V, n)
	for i := 0; i < n; i++ {
		out[i] = fn(as[i], bs[i])
	}
	return fromOwned(out)
}

// StrictZip pairs the elements of a and b positionally, returning
// [ErrLengthMismatch] when the two lengths differ. On equal lengths it is
// identical to [Zip].
func StrictZip[A, B any](a Seq[A], b Seq[B]) (Seq[Pair[A, B]], error) {
	if a.Len() != b.Len() {
		return Seq[Pair[A, B]]{}, ErrLengthMismatch
	}
	return Zip(a, b), nil
}

// Unzip splits a Seq of pairs into two Seqs of equal length, preserving
// order. It is the inverse of [Zip] on equal-length inputs.
func Unzip[A, B any](s Seq[Pair[A, B]]) (Seq[A], Seq[B]) {
	firsts := Map(s, func(p Pair[A, B]) A { return p.First })
	seconds := Map(s, func(p Pair[A, B]) B { return p.Second })
	return firsts, seconds
}

// GroupBy partitions the elements into buckets keyed by fn. Every bucket is
// itself a Seq — a key only exists because at least one element produced it —
// and the multiset union of all buckets equals the original elements.
//
// Within a bucket, elements appear in the *reverse* of their order of
// appearance in s: each newly matched element becomes the bucket's new head,
// as in a left-fold construction.
//
//	byParity := nonempty.GroupBy(nonempty.New(1, 2, 3, 4), func(n int) int { return n % 2 })
//	// byParity[0] = [4 2], byParity[1] = [3 1]
func GroupBy[T any, K comparable](s Seq[T], fn func(T) K) map[K]Seq[T] {
	groups := seq.GroupBy(s.All(), fn)
	out := make(map[K]Seq[T], len(groups))
	for k, items := range groups {
		out[k] = fromOwned(seq.Reverse(items))
	}
	return out
}

// UniqueBy returns a new Seq with duplicates removed using the comparable
// key extracted by fn, keeping each key's first occurrence in its original
// relative position. See [Seq.Unique] for the untyped-key method form.
func UniqueBy[T any, K comparable](s Seq[T], fn func(T) K) Seq[T] {
	return fromOwned(seq.UniqueBy(s.All(), fn))
}
