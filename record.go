package pgcast

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Record decodes the generic record (composite) wire format: an int32 field
// count, then for each field an int32 OID, an int32 length and that many
// bytes. No field names are transmitted. Each field resolves its own decoder
// through the full registry chain in ctx, so fields may themselves be
// composites or arrays. The result is a []interface{} in transmission order.
//
// An unresolvable field OID aborts the whole record with *UnknownTypeError;
// no partial result is produced.
var Record = NewBinaryType("record", []OID{RecordOID}, decodeRecord)

func decodeRecord(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	rp := 0

	if len(src[rp:]) < 4 {
		return nil, errors.Errorf("record incomplete %v", src)
	}
	fieldCount := int(int32(binary.BigEndian.Uint32(src[rp:])))
	rp += 4

	// The count is only a capacity hint; the loop below is bounded by the
	// payload itself.
	if fieldCount < 0 {
		fieldCount = 0
	}

	fields := make([]interface{}, 0, fieldCount)

	for rp < len(src) {
		if len(src[rp:]) < 8 {
			return nil, errors.Errorf("record incomplete %v", src)
		}
		fieldOID := OID(binary.BigEndian.Uint32(src[rp:]))
		rp += 4
		fieldLen := int(int32(binary.BigEndian.Uint32(src[rp:])))
		rp += 4

		d, err := ctx.Registry.Resolve(fieldOID)
		if err != nil {
			return nil, err
		}

		var fieldBytes []byte
		if fieldLen >= 0 {
			if len(src[rp:]) < fieldLen {
				return nil, errors.Errorf("record incomplete %v", src)
			}
			fieldBytes = src[rp : rp+fieldLen]
			rp += fieldLen
		}

		v, err := d.Decode(ctx, fieldBytes)
		if err != nil {
			return nil, err
		}

		fields = append(fields, v)
	}

	return fields, nil
}
