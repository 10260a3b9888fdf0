package pgcast

// Bool decodes the boolean wire format: a single byte, 1 for true. Any other
// byte, including 0, decodes as false.
var Bool = NewBinaryType("boolean", []OID{BoolOID}, decodeBool)

func decodeBool(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	if len(src) != 1 {
		return nil, &DecodeLengthError{Name: "bool", Length: len(src)}
	}

	return src[0] == 1, nil
}
