package core

// FieldError reports a problem with one request field, named by its JSON key.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned when a request body cannot be read into its input type.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return "invalid request body"
	}
	return err.Err.Error()
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}
