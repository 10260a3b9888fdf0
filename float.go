package pgcast

import (
	"encoding/binary"
	"math"
)

// Float decodes the float4 and float8 wire formats: IEEE-754 bits of exactly
// the declared width. A 4 byte value decodes to a float32 and an 8 byte
// value to a float64.
var Float = NewBinaryType("float", []OID{Float4OID, Float8OID}, decodeFloat)

func decodeFloat(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	switch len(src) {
	case 4:
		return math.Float32frombits(binary.BigEndian.Uint32(src)), nil
	case 8:
		return math.Float64frombits(binary.BigEndian.Uint64(src)), nil
	}

	return nil, &DecodeLengthError{Name: "float", Length: len(src)}
}
