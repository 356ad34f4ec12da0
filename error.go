package dbusgen

import "fmt"

// SignatureError is the error returned when a string is not a
// well-formed DBus type signature.
type SignatureError struct {
	// Sig is the signature that failed to parse.
	Sig string
	// Reason is an explanation of why the signature is invalid.
	Reason error
}

func (e SignatureError) Error() string {
	return fmt.Sprintf("invalid type signature %q: %s", e.Sig, e.Reason)
}

func (e SignatureError) Unwrap() error {
	return e.Reason
}
