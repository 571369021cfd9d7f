package parametly

// ValidationResult aggregates per parameter error messages collected during
// one Apply call. Entries are only ever appended.
type ValidationResult struct {
	names  []string
	errors map[string][]string
}

// NewValidationResult creates an empty validation result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{errors: map[string][]string{}}
}

// AddError appends an error message under a parameter name.
func (r *ValidationResult) AddError(name, message string) {
	if _, ok := r.errors[name]; !ok {
		r.names = append(r.names, name)
	}
	r.errors[name] = append(r.errors[name], message)
}

// Errors returns messages collected for a parameter name.
func (r *ValidationResult) Errors(name string) []string {
	return r.errors[name]
}

// Names returns parameter names with errors, in first failure order.
func (r *ValidationResult) Names() []string {
	return r.names
}

// IsEmpty reports whether the batch completed without parameter errors.
func (r *ValidationResult) IsEmpty() bool {
	return len(r.errors) == 0
}
