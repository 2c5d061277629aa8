package nonempty

// Enumerable is the read-only surface satisfied by [Seq][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete Seq type. Every method is total: an Enumerable, like a Seq, is
// never empty.
type Enumerable[T any] interface {
	// All returns every element as a plain Go slice, head first.
	All() []T

	// Len returns the number of elements; always ≥ 1.
	Len() int

	// First returns the head element.
	First() T

	// Last returns the final element.
	Last() T

	// Rest returns the elements after the head; may be empty.
	Rest() []T

	// Each calls fn(item, index) for every element, head first.
	Each(fn func(T, int))
}

var _ Enumerable[int] = Seq[int]{}
