package pgcast

import (
	"encoding/binary"
	"math"
	"time"
)

var y2k = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Timestamp decodes the 8 byte timestamp wire format. With integer datetimes
// it is an int64 count of microseconds since 2000-01-01; otherwise a float64
// count of seconds since the same epoch. The result is timezone-naive,
// represented as a time.Time in UTC.
var Timestamp = NewBinaryType("timestamp", []OID{TimestampOID}, decodeTimestamp)

// Timestamptz shares the timestamp wire format. For backward compatibility
// the result is also naive: the implied UTC offset is discarded rather than
// attached to the returned time.
var Timestamptz = NewBinaryType("timestamptz", []OID{TimestamptzOID}, decodeTimestamp)

func decodeTimestamp(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	if len(src) != 8 {
		return nil, &DecodeLengthError{Name: "timestamp", Length: len(src)}
	}

	if ctx.IntegerDatetimes {
		microsecSinceY2K := int64(binary.BigEndian.Uint64(src))
		return y2k.Add(time.Duration(microsecSinceY2K) * time.Microsecond), nil
	}

	secSinceY2K := math.Float64frombits(binary.BigEndian.Uint64(src))
	return y2k.Add(time.Duration(secSinceY2K * float64(time.Second))), nil
}
