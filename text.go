package pgcast

// Text decodes the textual types (name, char, text, bpchar, varchar) through
// the connection's text encoding.
var Text = NewBinaryType("text", []OID{NameOID, CharOID, TextOID, BpcharOID, VarcharOID}, decodeText)

func decodeText(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	return ctx.decodeText(src)
}
