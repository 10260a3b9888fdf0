// Package pgcast decodes values in the PostgreSQL binary wire format into
// native Go values.
//
// The connection layer supplies, for each value, its type OID, its raw bytes
// (nil when the wire length was -1, meaning SQL NULL) and a DecodeContext.
// The context carries the registry scope chain, the connection's text
// encoding and the negotiated datetime wire representation:
//
//	registry := pgcast.NewTypeRegistry()
//	ctx := pgcast.NewDecodeContext(registry)
//	v, err := ctx.Decode(pgcast.Int4OID, src)
//
// Registries are layered. The global tier holds the default decoders; a
// connection derives a tier from it with NewScope, and a cursor derives a
// tier from the connection's. Resolution walks cursor, then connection, then
// global, so a registration in a deeper tier shadows the same OID above it:
//
//	connScope := registry.NewScope()
//	connScope.Register(myDecoder)
//
// Decoders for composite values resolve the OID of every nested field or
// element through the same chain, so arrays of composites of custom types
// decode with no extra wiring. NewType, NewBinaryType, NewArrayType and
// NewTextArrayType build decoders for custom types; the ext directory holds
// ready-made decoders for uuid (gofrs/uuid) and an alternative numeric
// decoder built on cockroachdb/apd.
//
// Decoding is synchronous and allocates only the decoded values. Registering
// decoders concurrently with decoding is not safe; complete registration
// first or serialize it externally.
package pgcast
