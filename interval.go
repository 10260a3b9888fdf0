package pgcast

import (
	"encoding/binary"
	"math"
	"time"
)

// Interval decodes the 16 byte interval wire format: the time part (int64
// microseconds with integer datetimes, float64 seconds otherwise), then an
// int32 day count and an int32 month count. The result is a time.Duration
// counting a month as 30 days, matching the server's text output for
// justified intervals only approximately.
var Interval = NewBinaryType("interval", []OID{IntervalOID}, decodeInterval)

func decodeInterval(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	if len(src) != 16 {
		return nil, &DecodeLengthError{Name: "interval", Length: len(src)}
	}

	var timePart time.Duration
	if ctx.IntegerDatetimes {
		microseconds := int64(binary.BigEndian.Uint64(src))
		timePart = time.Duration(microseconds) * time.Microsecond
	} else {
		seconds := math.Float64frombits(binary.BigEndian.Uint64(src))
		timePart = time.Duration(seconds * float64(time.Second))
	}

	days := int32(binary.BigEndian.Uint32(src[8:]))
	months := int32(binary.BigEndian.Uint32(src[12:]))

	totalDays := int64(months)*30 + int64(days)

	return time.Duration(totalDays)*24*time.Hour + timePart, nil
}
