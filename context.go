package pgcast

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DecodeContext carries the per-connection environment a decode needs: the
// registry scope chain to consult for nested values, the connection's text
// encoding, and whether the server sends integer or floating point datetime
// wire values. It is constructed by the connection layer and shared by every
// decode on that connection or cursor.
type DecodeContext struct {
	// Registry is the deepest scope tier to consult. Nested composite and
	// array decoding resolves element OIDs through the full chain rooted
	// here.
	Registry *TypeRegistry

	// Encoding is the name of the connection's text encoding. Text values
	// are transcoded from it to UTF-8. The default is UTF8.
	Encoding string

	// IntegerDatetimes selects the wire form of timestamp and interval
	// values: int64 microseconds when true, float64 seconds when false. It
	// is negotiated once per connection via the integer_datetimes server
	// parameter and must not change between decodes.
	IntegerDatetimes bool

	enc         encoding.Encoding
	resolvedEnc string
}

// NewDecodeContext returns a DecodeContext for registry with UTF8 text
// encoding and integer datetimes.
func NewDecodeContext(registry *TypeRegistry) *DecodeContext {
	return &DecodeContext{
		Registry:         registry,
		Encoding:         "UTF8",
		IntegerDatetimes: true,
	}
}

// Decode resolves oid through the registry chain and decodes src with the
// resulting Decoder. src must be nil when the wire length was -1.
func (ctx *DecodeContext) Decode(oid OID, src []byte) (interface{}, error) {
	d, err := ctx.Registry.Resolve(oid)
	if err != nil {
		return nil, err
	}
	return d.Decode(ctx, src)
}

// decodeText converts src from the connection encoding to a Go string.
func (ctx *DecodeContext) decodeText(src []byte) (string, error) {
	enc, err := ctx.textEncoding()
	if err != nil {
		return "", err
	}

	if enc == nil {
		if !utf8.Valid(src) {
			return "", &EncodingError{Encoding: ctx.Encoding, Err: errors.New("invalid UTF-8 byte sequence")}
		}
		return string(src), nil
	}

	buf, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return "", &EncodingError{Encoding: ctx.Encoding, Err: err}
	}
	return string(buf), nil
}

// textEncoding resolves ctx.Encoding through the IANA index. A nil Encoding
// with nil error means the text is already UTF-8.
func (ctx *DecodeContext) textEncoding() (encoding.Encoding, error) {
	name := ctx.Encoding
	if name == "" {
		name = "UTF8"
	}
	if name == ctx.resolvedEnc {
		return ctx.enc, nil
	}

	switch strings.ToUpper(name) {
	case "UTF8", "UTF-8", "UNICODE":
		ctx.enc = nil
		ctx.resolvedEnc = name
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, &EncodingError{Encoding: name, Err: errors.Errorf("unsupported encoding %q", name)}
	}

	ctx.enc = enc
	ctx.resolvedEnc = name
	return enc, nil
}
