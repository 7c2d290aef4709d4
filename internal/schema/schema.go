// Package schema defines the HCL block structures accepted in sweep files.
// These structs are decode targets for gohcl; translation into the
// format-agnostic config model lives in the hcl package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Sweep represents a `sweep` block from a user's sweep file.
//
// Combinations and Seeds stay as raw expressions here: the translation layer
// needs the expression syntax (not just the evaluated value) to preserve the
// source order of combination keys.
type Sweep struct {
	SeedKey      string         `hcl:"seed_key,optional"`
	Seeds        hcl.Expression `hcl:"seeds,optional"`
	Combinations hcl.Expression `hcl:"combinations,optional"`
}

// Launcher represents a `launcher` block selecting the launch backend.
type Launcher struct {
	Backend string   `hcl:"backend,optional"`
	Command []string `hcl:"command,optional"`
	Workers int      `hcl:"workers,optional"`
}

// Root represents the top-level structure of a sweep file.
type Root struct {
	Sweep    *Sweep    `hcl:"sweep,block"`
	Launcher *Launcher `hcl:"launcher,block"`
	Remain   hcl.Body  `hcl:",remain"`
}
