// Package uuid provides a pgcast decoder for the uuid type backed by
// github.com/gofrs/uuid.
package uuid

import (
	gofrs "github.com/gofrs/uuid"

	"github.com/funkybob/pgcast"
)

// UUID decodes the 16 byte uuid wire format into a gofrs uuid.UUID.
var UUID = pgcast.NewBinaryType("uuid", []pgcast.OID{pgcast.UUIDOID}, decodeUUID)

// UUIDArray decodes uuid[] with UUID as the element decoder.
var UUIDArray = pgcast.NewArrayType("uuid[]", []pgcast.OID{pgcast.UUIDArrayOID}, UUID)

// Register installs the uuid decoders into r.
func Register(r *pgcast.TypeRegistry) {
	r.Register(UUID)
	r.Register(UUIDArray)
}

func decodeUUID(ctx *pgcast.DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	u, err := gofrs.FromBytes(src)
	if err != nil {
		return nil, err
	}

	return u, nil
}
