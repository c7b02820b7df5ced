package validator

// Validator checks a struct against its declared validation rules.
type Validator interface {
	// Validate returns nil when data passes, or an error describing the
	// failed fields.
	Validate(data any) error
}
