// Package registry holds the process-wide mapping from launcher backend
// names to their factories. Registration is a one-shot, startup-only
// affair: backends register themselves before the app runs and the
// registry carries no runtime state beyond the lookup table.
package registry
