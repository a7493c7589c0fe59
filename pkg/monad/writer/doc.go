// Package writer is the context of a value plus an accumulated log.
//
// Bind takes a step that returns the next value together with a log
// fragment; the fragment is merged into the running log with the combine
// policy fixed when the writer was created:
//
//	w := writer.Unit[int, string](5)
//	w = writer.Bind(w, squared) // 25, [squared(5)]
//	w = writer.Bind(w, squared) // 625, [squared(5) squared(25)]
//
// The default policy appends to a slice log; New accepts any policy, for
// example summing costs or joining strings.
package writer
