// Package hcl_adapter is the HCL implementation of the config.Loader
// interface. It parses `prompts` and `style` blocks from one or more HCL
// files and merges them over the defaults, attribute by attribute, in file
// order.
//
// Expressions are evaluated with an `env` variable holding the process
// environment and a small set of string functions, so prompts can be
// written as `upper("hi ${env.USER}")`.
package hcl_adapter
