// Package config defines the format-agnostic configuration model for the
// application (prompt texts and wording style), along with the Loader
// interface used to read it from files.
//
// The `config.Model` is the single source of truth for the `repl` package.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
