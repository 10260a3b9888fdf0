package pgcast

import (
	"encoding/binary"
)

// Int decodes the int2, int4 and int8 wire formats: big-endian two's
// complement of exactly the declared width. The result is an int16, int32 or
// int64 matching the wire width.
var Int = NewBinaryType("integer", []OID{Int8OID, Int2OID, Int4OID}, decodeInt)

// RowID decodes the oid type, which shares the int4 wire format.
var RowID = NewBinaryType("rowid", []OID{OIDOID}, decodeInt)

func decodeInt(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	switch len(src) {
	case 2:
		return int16(binary.BigEndian.Uint16(src)), nil
	case 4:
		return int32(binary.BigEndian.Uint32(src)), nil
	case 8:
		return int64(binary.BigEndian.Uint64(src)), nil
	}

	return nil, &DecodeLengthError{Name: "int", Length: len(src)}
}
