package pgcast

import (
	"fmt"
)

// UnknownTypeError occurs when an OID cannot be resolved to a Decoder in any
// scope of the registry chain.
type UnknownTypeError struct {
	OID OID
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown oid %d: no decoder registered in any scope", e.OID)
}

// DecodeLengthError occurs when a fixed width type is received with an
// unexpected wire length.
type DecodeLengthError struct {
	Name   string
	Length int
}

func (e *DecodeLengthError) Error() string {
	return fmt.Sprintf("received an invalid size for a %s: %d", e.Name, e.Length)
}

// EncodingError occurs when a text value cannot be decoded under the
// connection's text encoding.
type EncodingError struct {
	Encoding string
	Err      error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot decode text as %s: %v", e.Encoding, e.Err)
	}
	return fmt.Sprintf("cannot decode text as %s", e.Encoding)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// MalformedLiteralError occurs when an array literal does not have the
// required '{' ... '}' framing.
type MalformedLiteralError struct {
	Literal string
}

func (e *MalformedLiteralError) Error() string {
	return fmt.Sprintf("malformed array literal %q: must begin with '{' and end with '}'", e.Literal)
}
