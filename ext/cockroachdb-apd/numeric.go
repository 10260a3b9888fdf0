// Package numeric provides an alternative pgcast decoder for the numeric
// type backed by github.com/cockroachdb/apd. Register it into a connection
// or cursor scope to shadow the default shopspring backed decoder.
package numeric

import (
	"encoding/binary"
	"math/big"

	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"

	"github.com/funkybob/pgcast"
)

const nbase = 10000

var bigNBase = big.NewInt(nbase)

// Numeric decodes the numeric wire format into an *apd.Decimal quantized to
// exactly dscale fractional digits.
var Numeric = pgcast.NewBinaryType("numeric", []pgcast.OID{pgcast.NumericOID}, decodeNumeric)

// NumericArray decodes numeric[] with Numeric as the element decoder.
var NumericArray = pgcast.NewArrayType("numeric[]", []pgcast.OID{pgcast.NumericArrayOID}, Numeric)

// Register installs the apd backed numeric decoders into r.
func Register(r *pgcast.TypeRegistry) {
	r.Register(Numeric)
	r.Register(NumericArray)
}

func decodeNumeric(ctx *pgcast.DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	if len(src) < 8 {
		return nil, errors.Errorf("numeric incomplete %v", src)
	}

	rp := 0
	ndigits := int(binary.BigEndian.Uint16(src[rp:]))
	rp += 2
	weight := int16(binary.BigEndian.Uint16(src[rp:]))
	rp += 2
	sign := binary.BigEndian.Uint16(src[rp:])
	rp += 2
	dscale := int16(binary.BigEndian.Uint16(src[rp:]))
	rp += 2

	if len(src[rp:]) < ndigits*2 {
		return nil, errors.Errorf("numeric incomplete %v", src)
	}

	accum := &big.Int{}
	for i := 0; i < ndigits; i++ {
		d := int16(binary.BigEndian.Uint16(src[rp:]))
		rp += 2
		accum.Mul(accum, bigNBase)
		accum.Add(accum, big.NewInt(int64(d)))
	}

	dec := &apd.Decimal{Exponent: (int32(weight) - int32(ndigits) + 1) * 4}
	dec.Coeff.Set(accum)
	dec.Negative = sign != 0

	prec := uint32(ndigits*4 + int(dscale) + 4)
	if prec < 16 {
		prec = 16
	}

	quantized := &apd.Decimal{}
	if _, err := apd.BaseContext.WithPrecision(prec).Quantize(quantized, dec, -int32(dscale)); err != nil {
		return nil, err
	}

	return quantized, nil
}
