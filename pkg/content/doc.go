// Package content holds the static copy for the AWS backend settings form:
// the binding keys the form-state layer uses to associate inputs with values
// and validation errors, and the help topics displayed next to each group of
// fields.
//
// Everything in this package is defined once and read by value. Accessors
// return copies so callers can never mutate the registries.
package content
