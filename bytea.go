package pgcast

// Bytea passes the wire bytes through unchanged. The decoder takes ownership
// of src; the caller must not reuse the slice.
var Bytea = NewBinaryType("bytea", []OID{ByteaOID}, decodeBytea)

func decodeBytea(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	return src, nil
}
