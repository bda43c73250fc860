// Package abstraction defines the high-level half of the bridge: the
// [Abstraction] capability clients program against, and its refined variants.
//
// Every variant holds exactly one [implementor.Implementor], supplied at
// construction and never replaced. The abstraction does not own the
// implementor: it never creates or releases it, and several abstractions may
// share one implementor.
//
// Variants:
//   - [RefinedAbstraction] forwards Operation to Action with no other logic.
//   - [LoggedAbstraction] forwards the same way and records the call in a
//     structured log.
//
// Constructors reject a missing implementor with an error matching
// [errors.ErrInvalidConstruction].
package abstraction
