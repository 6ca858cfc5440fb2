package argument

// ArgumentError is a custom error type for argument errors
type ArgumentError string

// Error implements the error interface
func (e ArgumentError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     ArgumentError = "config cannot be nil"
	ErrNilRepository ArgumentError = "argument repository cannot be nil"
	ErrEmptyName     ArgumentError = "argument name cannot be empty"

	// ErrNoMatch covers both zero and several arguments with the name
	ErrNoMatch ArgumentError = "no single argument matches that name"
)
