package pgcast

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
)

// Information on the internals of PostgreSQL arrays can be found in
// src/include/utils/array.h and src/backend/utils/adt/arrayfuncs.c. Of
// particular interest is the array_send function.

type ArrayHeader struct {
	ContainsNull bool
	ElementOID   int32
	Dimensions   []ArrayDimension
}

type ArrayDimension struct {
	// Length is the number of elements in the dimension, not an inclusive
	// upper bound.
	Length     int32
	LowerBound int32
}

// DecodeBinary reads the array header from src and returns the number of
// bytes consumed.
func (ah *ArrayHeader) DecodeBinary(src []byte) (int, error) {
	if len(src) < 12 {
		return 0, errors.Errorf("array header incomplete %v", src)
	}

	rp := 0

	numDims := int(int32(binary.BigEndian.Uint32(src[rp:])))
	rp += 4

	ah.ContainsNull = int32(binary.BigEndian.Uint32(src[rp:])) == 1
	rp += 4

	ah.ElementOID = int32(binary.BigEndian.Uint32(src[rp:]))
	rp += 4

	if len(src) < 12+numDims*8 {
		return 0, errors.Errorf("array header incomplete %v", src)
	}
	if numDims > 0 {
		ah.Dimensions = make([]ArrayDimension, numDims)
	}

	for i := range ah.Dimensions {
		ah.Dimensions[i].Length = int32(binary.BigEndian.Uint32(src[rp:]))
		rp += 4

		ah.Dimensions[i].LowerBound = int32(binary.BigEndian.Uint32(src[rp:]))
		rp += 4
	}

	return rp, nil
}

// arrayType is a binary array decoder composed with the decoder for its
// element type.
type arrayType struct {
	elem *Decoder
}

// NewArrayType returns a Decoder for the binary array format of oids, with
// every element decoded by elem. A zero-dimension array decodes to an empty
// []interface{}; a one-dimensional array decodes to a flat []interface{};
// each further dimension adds one level of nested []interface{}.
func NewArrayType(name string, oids []OID, elem *Decoder) *Decoder {
	at := &arrayType{elem: elem}
	return NewBinaryType(name, oids, at.decode)
}

func (at *arrayType) decode(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	var ah ArrayHeader
	rp, err := ah.DecodeBinary(src)
	if err != nil {
		return nil, err
	}

	if len(ah.Dimensions) == 0 {
		return []interface{}{}, nil
	}

	// Elements are a flat run of int32 length prefixed values in row-major
	// order; length -1 is a NULL element with no payload bytes.
	next := func() (interface{}, error) {
		if len(src[rp:]) < 4 {
			return nil, errors.Errorf("array element incomplete %v", src)
		}
		elemLen := int(int32(binary.BigEndian.Uint32(src[rp:])))
		rp += 4

		if elemLen < 0 {
			return at.elem.Decode(ctx, nil)
		}

		if len(src[rp:]) < elemLen {
			return nil, errors.Errorf("array element incomplete %v", src)
		}
		elemBytes := src[rp : rp+elemLen]
		rp += elemLen

		return at.elem.Decode(ctx, elemBytes)
	}

	var decodeDim func(dim int) ([]interface{}, error)
	decodeDim = func(dim int) ([]interface{}, error) {
		// The repeat count is the dimension's declared element count.
		n := int(ah.Dimensions[dim].Length)
		out := make([]interface{}, 0, n)

		for i := 0; i < n; i++ {
			if dim == len(ah.Dimensions)-1 {
				v, err := next()
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			} else {
				sub, err := decodeDim(dim + 1)
				if err != nil {
					return nil, err
				}
				out = append(out, sub)
			}
		}

		return out, nil
	}

	return decodeDim(0)
}

// textArrayType is a text array literal parser composed with the decoder for
// its element type.
type textArrayType struct {
	elem *Decoder
}

// NewTextArrayType returns a Decoder for the text literal form of an array
// of oids, with every element decoded by elem. Elements reach a
// value-oriented elem as the accumulated item string, and a binary elem as
// its bytes; NULL items invoke elem with a nil source.
func NewTextArrayType(name string, oids []OID, elem *Decoder) *Decoder {
	tat := &textArrayType{elem: elem}
	return NewBinaryType(name, oids, tat.decode)
}

func (tat *textArrayType) decode(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	s, err := ctx.decodeText(src)
	if err != nil {
		return nil, err
	}

	return ParseTextArray(ctx, s, tat.elem)
}

// ParseTextArray parses an array literal of the form '{ item (, item)* }',
// possibly nested, decoding each item with elem. Double quotes delimit a
// quoted run and are stripped; a backslash copies the following character
// literally; outside quotes, commas and spaces only separate items. A bare
// item spelling the word null in any case decodes as a NULL element. The
// shape is implied purely by brace nesting and is not validated.
func ParseTextArray(ctx *DecodeContext, src string, elem *Decoder) ([]interface{}, error) {
	if len(src) < 2 || src[0] != '{' || src[len(src)-1] != '}' {
		return nil, &MalformedLiteralError{Literal: src}
	}

	stack := [][]interface{}{make([]interface{}, 0)}
	push := func(v interface{}) {
		stack[len(stack)-1] = append(stack[len(stack)-1], v)
	}

	i := 1
	end := len(src) - 1
	for i < end {
		switch src[i] {
		case '{':
			stack = append(stack, make([]interface{}, 0))
			i++
		case '}':
			if len(stack) == 1 {
				return nil, &MalformedLiteralError{Literal: src}
			}
			sub := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			push(sub)
			i++
		case ',', ' ':
			i++
		default:
			// Number of quotes seen so far; items are fully quoted or not
			// at all, so parity tells whether a delimiter is literal.
			quotes := 0
			escape := false
			var buf strings.Builder

			for i < end {
				c := src[i]
				if escape {
					escape = false
					buf.WriteByte(c)
				} else if c == '"' {
					quotes++
				} else if c == '\\' {
					escape = true
				} else if quotes%2 == 0 && (c == '}' || c == ',') {
					break
				} else {
					buf.WriteByte(c)
				}
				i++
			}

			item := buf.String()

			var v interface{}
			var err error
			if len(item) == 4 && strings.EqualFold(item, "null") {
				v, err = elem.Decode(ctx, nil)
			} else {
				v, err = elem.decodeTextual(ctx, item)
			}
			if err != nil {
				return nil, err
			}
			push(v)
		}
	}

	return stack[0], nil
}
