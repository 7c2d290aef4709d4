// Package sweep expands explicitly declared parameter combinations into the
// ordered list of per-job override tokens and hands that list to a launcher
// backend.
//
// Unlike a conventional parameter sweep, no Cartesian product is ever
// computed: each declared combination becomes exactly one job, optionally
// multiplied across a seed axis. This keeps interdependent parameters
// valid (a parameter that only makes sense under a specific mode is never
// paired with the wrong mode).
package sweep
