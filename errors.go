package parametly

import "fmt"

// ConversionError indicates that text could not be coerced into the declared
// type through any available strategy.
type ConversionError struct {
	Parameter string
	Text      string
	Err       error
}

// Error implements error.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("unable to convert parameter %q value: %q", e.Parameter, e.Text)
}

// Unwrap returns the underlying cause.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// DateParseError indicates that every date parsing attempt was exhausted.
type DateParseError struct {
	Text string
}

// Error implements error.
func (e *DateParseError) Error() string {
	return fmt.Sprintf("unable to parse date: %q", e.Text)
}

// SchemaError indicates an invalid declaration, i.e. a data source problem
// rather than a data problem; it voids the whole batch.
type SchemaError struct {
	Parameter string
	Message   string
}

// Error implements error.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid declaration %q: %s", e.Parameter, e.Message)
}
