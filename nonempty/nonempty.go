package nonempty

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/hasbyte1/go-nonempty/seq"
)

// Seq is a generic, immutable sequence that holds at least one element,
// guaranteed by construction.
//
// Structurally a Seq is a first element (the head) plus a plain slice of the
// remaining elements (the tail); its length is therefore always ≥ 1. Because
// the invariant is established once, at the construction boundary, operations
// like [Seq.First], [Seq.Last], [Seq.Reduce], [Seq.Min] and [Seq.Max] are
// total — they need no ok-flag or error return for the empty case.
//
// # Creating a sequence
//
//	s := nonempty.New(1, 2, 3, 4)           // always succeeds
//	s := nonempty.Single("only")            // always succeeds
//	s, err := nonempty.From(values)         // ErrEmptyInput when len(values) == 0
//
// # Immutability
//
// Every transforming operation returns a *new* Seq, leaving the receiver
// unchanged, and no two Seq values share a mutable spine. This makes Seq
// values safe to read from multiple goroutines without locking.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are exposed as package-level
// functions in this package:
//
//	labels := nonempty.Map(s, strconv.Itoa)
//	groups := nonempty.GroupBy(s, func(n int) string {
//	    if n%2 == 0 { return "even" }
//	    return "odd"
//	})
type Seq[T any] struct {
	head T
	tail []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Seq from a head element and an optional tail (copied).
// It is total: with at least a head, the result cannot be empty.
func New[T any](head T, tail ...T) Seq[T] {
	dst := make([]T, len(tail))
	copy(dst, tail)
	return Seq[T]{head: head, tail: dst}
}

// Single creates a Seq holding exactly one element.
func Single[T any](head T) Seq[T] {
	return New(head)
}

// From creates a Seq from a plain slice (copied).
// It is the only fallible constructor: an empty or nil slice yields
// [ErrEmptyInput].
func From[T any](items []T) (Seq[T], error) {
	if len(items) == 0 {
		return Seq[T]{}, ErrEmptyInput
	}
	dst := make([]T, len(items))
	copy(dst, items)
	return fromOwned(dst), nil
}

// fromOwned wraps a freshly allocated, non-empty slice without copying.
// Callers must hand over ownership of items.
func fromOwned[T any](items []T) Seq[T] {
	return Seq[T]{head: items[0], tail: items[1:]}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns the elements as a plain slice copy, head first.
// It is the inverse of [From] for every Seq.
func (s Seq[T]) All() []T {
	out := make([]T, 1+len(s.tail))
	out[0] = s.head
	copy(out[1:], s.tail)
	return out
}

// ToSlice is an alias for [Seq.All].
func (s Seq[T]) ToSlice() []T { return s.All() }

// ToJSON serialises the elements to a JSON array.
func (s Seq[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.All())
}

// Len returns the number of elements; always ≥ 1.
func (s Seq[T]) Len() int { return 1 + len(s.tail) }

// First returns the head element. O(1).
func (s Seq[T]) First() T { return s.head }

// Rest returns the tail as a plain slice copy; it may be empty.
func (s Seq[T]) Rest() []T {
	out := make([]T, len(s.tail))
	copy(out, s.tail)
	return out
}

// Last returns the final element: the last tail element, or the head when
// the tail is empty. O(n).
func (s Seq[T]) Last() T {
	if v, ok := seq.Last(s.tail); ok {
		return v
	}
	return s.head
}

// Take returns at most the first n elements as a plain slice.
// The result may be empty (n <= 0).
func (s Seq[T]) Take(n int) []T {
	return seq.Take(s.All(), n)
}

// Drop returns the elements after the first n as a plain slice.
// The result may be empty (n >= Len()).
func (s Seq[T]) Drop(n int) []T {
	return seq.Drop(s.All(), n)
}

// String returns a JSON representation of the elements.
// It implements [fmt.Stringer].
func (s Seq[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.All())
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & Search
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element, head first.
func (s Seq[T]) Each(fn func(T, int)) {
	fn(s.head, 0)
	for i, item := range s.tail {
		fn(item, i+1)
	}
}

// Contains reports whether at least one element satisfies fn.
func (s Seq[T]) Contains(fn func(T) bool) bool {
	return fn(s.head) || seq.Contains(s.tail, fn)
}

// Search returns the index of the first element for which fn returns true,
// or -1.
func (s Seq[T]) Search(fn func(T) bool) int {
	if fn(s.head) {
		return 0
	}
	if i := seq.Search(s.tail, fn); i >= 0 {
		return i + 1
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Combination
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a new Seq with all elements of other after the receiver's.
func (s Seq[T]) Append(other Seq[T]) Seq[T] {
	out := make([]T, 0, s.Len()+other.Len())
	out = append(out, s.head)
	out = append(out, s.tail...)
	out = append(out, other.head)
	out = append(out, other.tail...)
	return fromOwned(out)
}

// AppendSlice returns a new Seq with the plain-slice items appended.
// items may be empty.
func (s Seq[T]) AppendSlice(items []T) Seq[T] {
	out := make([]T, 0, s.Len()+len(items))
	out = append(out, s.head)
	out = append(out, s.tail...)
	out = append(out, items...)
	return fromOwned(out)
}

// Prepend returns a new Seq with x as the head and the receiver's elements
// as the tail.
func (s Seq[T]) Prepend(x T) Seq[T] {
	return Seq[T]{head: x, tail: s.All()}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reordering
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a new Seq with the elements in mirror order.
// Reversing twice restores the original order.
func (s Seq[T]) Reverse() Seq[T] {
	return fromOwned(seq.Reverse(s.All()))
}

// Sort returns a new Seq sorted ascending by the three-way comparator cmp
// (negative when a < b, zero when equal, positive when a > b).
// The sort is stable: equal elements preserve their original order, and
// duplicates are kept.
func (s Seq[T]) Sort(cmp func(a, b T) int) Seq[T] {
	return fromOwned(seq.Sort(s.All(), cmp))
}

// Unique returns a new Seq with duplicates removed, keeping each element's
// first occurrence in its original relative position. fn extracts the
// comparison key; pass nil to use fmt.Sprintf("%v") for any T.
//
// The head is always the first occurrence of its own key, so the result is
// never empty. For typed keys use the package-level [UniqueBy].
func (s Seq[T]) Unique(fn func(T) any) Seq[T] {
	if fn == nil {
		fn = func(item T) any { return fmt.Sprintf("%v", item) }
	}
	return fromOwned(seq.UniqueBy(s.All(), fn))
}

// Shuffle returns a new Seq with the elements in a uniformly random order,
// using the process-wide random source. For deterministic results use
// [Seq.ShuffleWith] with a seeded source.
func (s Seq[T]) Shuffle() Seq[T] {
	return fromOwned(seq.Shuffle(s.All()))
}

// ShuffleWith returns a new Seq with the elements in a uniformly random
// order drawn from r.
func (s Seq[T]) ShuffleWith(r *rand.Rand) Seq[T] {
	return fromOwned(seq.ShuffleWith(s.All(), r))
}

// Intersperse returns a new Seq with sep inserted between every pair of
// adjacent elements. A single-element Seq is returned unchanged: no leading
// or trailing separator is added.
func (s Seq[T]) Intersperse(sep T) Seq[T] {
	if len(s.tail) == 0 {
		return New(s.head)
	}
	out := make([]T, 0, 2*s.Len()-1)
	out = append(out, s.head)
	for _, item := range s.tail {
		out = append(out, sep, item)
	}
	return fromOwned(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the elements left to right with fn, seeding the accumulator
// with the head. It is total: there is always at least the head to seed with.
//
// For reductions that change the type (T → U), convert with [Seq.All] and
// fold with [seq.Reduce], or use [MapFold].
func (s Seq[T]) Reduce(fn func(acc, item T) T) T {
	return seq.Reduce(s.tail, func(acc T, item T, _ int) T { return fn(acc, item) }, s.head)
}

// Min returns the element with the smallest value extracted by fn. Total.
func (s Seq[T]) Min(fn func(T) float64) T {
	v, _ := seq.Min(s.All(), fn)
	return v
}

// Max returns the element with the largest value extracted by fn. Total.
func (s Seq[T]) Max(fn func(T) float64) T {
	v, _ := seq.Max(s.All(), fn)
	return v
}

// Sum returns the sum of all elements using fn to extract numeric values.
func (s Seq[T]) Sum(fn func(T) float64) float64 {
	return seq.Sum(s.All(), fn)
}

// Average returns the arithmetic mean. Total: Len() is never zero.
func (s Seq[T]) Average(fn func(T) float64) float64 {
	return s.Sum(fn) / float64(s.Len())
}

// Implode joins all elements into a string using sep, converting each
// element with fn.
func (s Seq[T]) Implode(sep string, fn func(T) string) string {
	parts := seq.Map(s.All(), func(item T, _ int) string { return fn(item) })
	return strings.Join(parts, sep)
}
