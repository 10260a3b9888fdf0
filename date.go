package pgcast

import (
	"encoding/binary"
	"time"
)

// Date decodes the date wire format: an int32 count of days since
// 2000-01-01. The result is a time.Time at UTC midnight.
var Date = NewBinaryType("date", []OID{DateOID}, decodeDate)

func decodeDate(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	if len(src) != 4 {
		return nil, &DecodeLengthError{Name: "date", Length: len(src)}
	}

	dayOffset := int32(binary.BigEndian.Uint32(src))

	return time.Date(2000, 1, 1+int(dayOffset), 0, 0, 0, 0, time.UTC), nil
}
