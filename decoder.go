package pgcast

// BinaryDecodeFunc decodes the raw wire bytes of a single value. src is nil
// when the wire length was -1, meaning SQL NULL; implementations must return
// (nil, nil) in that case without reading src.
type BinaryDecodeFunc func(ctx *DecodeContext, src []byte) (interface{}, error)

// ValueDecodeFunc decodes a pre-shaped input instead of raw wire bytes. What
// "pre-shaped" means is specific to the decoder; for decoders produced by
// NewType it is the raw []byte slice, or nil for SQL NULL.
type ValueDecodeFunc func(ctx *DecodeContext, src interface{}) (interface{}, error)

// Decoder is a unit of decoding logic bound to a set of type OIDs. It holds
// exactly one of a binary or a value decode function, fixed at construction.
type Decoder struct {
	Name string
	OIDs []OID

	binaryFn BinaryDecodeFunc
	valueFn  ValueDecodeFunc
}

// NewBinaryType returns a Decoder that decodes the raw wire bytes of the
// given oids with fn.
func NewBinaryType(name string, oids []OID, fn BinaryDecodeFunc) *Decoder {
	return &Decoder{Name: name, OIDs: oids, binaryFn: fn}
}

// NewType returns a Decoder for the given oids from a single value-decode
// function.
func NewType(name string, oids []OID, fn ValueDecodeFunc) *Decoder {
	return &Decoder{Name: name, OIDs: oids, valueFn: fn}
}

// Handles reports whether d is registered for oid.
func (d *Decoder) Handles(oid OID) bool {
	for _, o := range d.OIDs {
		if o == oid {
			return true
		}
	}
	return false
}

// Decode decodes one wire value. src is nil for SQL NULL.
func (d *Decoder) Decode(ctx *DecodeContext, src []byte) (interface{}, error) {
	if d.binaryFn != nil {
		return d.binaryFn(ctx, src)
	}
	if src == nil {
		return d.valueFn(ctx, nil)
	}
	return d.valueFn(ctx, src)
}

// DecodeValue invokes a value-oriented decoder with a pre-shaped input. For
// binary decoders src must be a []byte or nil.
func (d *Decoder) DecodeValue(ctx *DecodeContext, src interface{}) (interface{}, error) {
	if d.valueFn != nil {
		return d.valueFn(ctx, src)
	}
	if src == nil {
		return d.binaryFn(ctx, nil)
	}
	return d.binaryFn(ctx, src.([]byte))
}

// decodeTextual feeds an item from a text array literal to d: the string
// itself for value decoders, its bytes for binary decoders.
func (d *Decoder) decodeTextual(ctx *DecodeContext, item string) (interface{}, error) {
	if d.valueFn != nil {
		return d.valueFn(ctx, item)
	}
	return d.binaryFn(ctx, []byte(item))
}
