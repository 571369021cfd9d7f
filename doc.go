// Package parametly coerces loosely typed input values, typically originating
// from an untyped request or form submission, into strongly typed values
// conforming to declared parameter schemas, so that a downstream execution
// engine can safely bind them.
package parametly
