// Package conv provides a last resort registry of text to value converters
// keyed by target type. The registry is read only once populated and safe for
// concurrent lookups.
package conv
