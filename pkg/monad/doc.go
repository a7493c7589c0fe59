// Package monad declares the capability shared by every context variant in
// this module: Unit lifts a plain value into a context and Bind sequences a
// step through an existing context, producing a new one.
//
// Variants live in sub-packages:
// - identity: always applies the step
// - maybe: short-circuits on absence
// - either: short-circuits on the left (error) channel
// - list: applies the step element-wise over a persistent sequence
// - writer: accumulates a log alongside the value
// - result: an error-specialised either with provenance
//
// Instances are immutable values; Bind never mutates its input.
package monad
