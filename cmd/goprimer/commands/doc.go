// Package commands wires the CLI flags to the interactive app and the
// non-interactive dump mode.
package commands
