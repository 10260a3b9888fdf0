package pgcast

// Unknown, Void and Time are placeholder decoders: they always produce the
// nil placeholder regardless of the payload. Callers that need real values
// for these types must register their own decoders; the placeholder is
// acknowledged incompleteness, not a decoded result.
var (
	Unknown = NewBinaryType("unknown", []OID{UnknownOID}, decodePlaceholder)
	Void    = NewBinaryType("void", []OID{VoidOID}, decodePlaceholder)
	Time    = NewBinaryType("time", nil, decodePlaceholder)
)

func decodePlaceholder(ctx *DecodeContext, src []byte) (interface{}, error) {
	return nil, nil
}
