// Package failure defines the validation failure taxonomy and a generic
// builder for producing tagged failures.
package failure

// Kind discriminates why a validation failed.
type Kind int

const (
	// NoTarget means no character was supplied where one was required.
	NoTarget Kind = iota
	// InvalidTarget means a character was supplied but is not the variant
	// required for the requested action.
	InvalidTarget
)

func (k Kind) String() string {
	switch k {
	case NoTarget:
		return "no_target"
	case InvalidTarget:
		return "invalid_target"
	default:
		return "unknown"
	}
}

// Failure is an immutable diagnostic value: a kind plus a human-readable
// message, created at the validation site.
type Failure struct {
	kind    Kind
	message string
}

// NewBuilder fixes a failure kind and returns a constructor for failures of
// that kind. Validation sites hold one builder per kind and supply only the
// message.
func NewBuilder(kind Kind) func(message string) Failure {
	return func(message string) Failure {
		return Failure{kind: kind, message: message}
	}
}

// Kind returns the failure's discriminant.
func (f Failure) Kind() Kind {
	return f.kind
}

// Message returns the human-readable diagnostic.
func (f Failure) Message() string {
	return f.message
}

// Error satisfies the error interface so failures plug into zerolog's Err.
func (f Failure) Error() string {
	return f.message
}
