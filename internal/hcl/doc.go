// Package hcl provides the concrete HCL implementation of the configuration
// Loader interface defined in the config package. It is responsible for
// file discovery, parsing, and HCL-to-model translation, including the
// source-order traversal of combination objects.
package hcl
