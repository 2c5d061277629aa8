// Package nonempty provides a generic, immutable sequence type that is
// guaranteed to hold at least one element, plus a full algebra of pure
// operations over it.
//
// # Overview
//
// The central type is [Seq][T]: a head element plus a plain slice of tail
// elements, so its length is ≥ 1 by construction. The invariant is enforced
// once, at the construction boundary, which makes the usual "empty
// collection" failure modes unrepresentable:
//
//	s, err := nonempty.From(results)     // the only place emptiness can surface
//	if err != nil {
//	    return err                       // ErrEmptyInput
//	}
//	best := s.Max(score)                 // total: no ok-flag, no panic
//	combined := s.Reduce(merge)          // left fold seeded with the head
//
// # Immutability
//
// All transforming operations return a *new* Seq, leaving the original
// unchanged, and no two Seq values share a mutable spine. Seq values are
// therefore safe to read concurrently without locking.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type (or need a key/accumulator type)
// are package-level functions: [Map], [IndexMap], [MapFold], [Scan],
// [FlatMap], [Flatten], [Pluck], [Zip], [Map2], [StrictZip], [Unzip],
// [GroupBy], [UniqueBy].
//
// # Failure modes
//
// Exactly two operations can fail, both with sentinel errors: [From] with
// [ErrEmptyInput] on an empty slice, and [StrictZip] with
// [ErrLengthMismatch] when its operands differ in length. [Zip] and [Map2]
// instead truncate to the shorter operand and never fail. Everything else is
// total.
//
// # Plain-slice boundary
//
// Operations whose result can legitimately be empty — [Seq.Rest], [Seq.Take],
// [Seq.Drop] — return plain []T values rather than a Seq. The underlying
// slice primitives live in the sibling seq package.
package nonempty
