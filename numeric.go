package pgcast

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// PostgreSQL internal numeric storage uses 16-bit "digits" with base of 10,000
const nbase = 10000

const (
	pgNumericNaNSign    = 0xc000
	pgNumericPosInfSign = 0xd000
	pgNumericNegInfSign = 0xf000
)

var bigNBase = big.NewInt(nbase)

// Numeric decodes the numeric wire format into a decimal.Decimal with
// exactly dscale fractional digits.
//
// The wire layout is a header of four int16s (digit count, weight, sign,
// dscale) followed by that many base-10000 digit groups, most significant
// first. The value is the sum of group[i] * 10000^(weight-i), negated when
// the sign word is nonzero.
var Numeric = NewBinaryType("numeric", []OID{NumericOID}, decodeNumeric)

func decodeNumeric(ctx *DecodeContext, src []byte) (interface{}, error) {
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

	switch sign {
	case pgNumericNaNSign, pgNumericPosInfSign, pgNumericNegInfSign:
		return nil, errors.Errorf("cannot decode non-finite numeric (sign word %#x)", sign)
	}

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

	// accum * 10^exp == sum of group[i] * 10000^(weight-i)
	exp := (int32(weight) - int32(ndigits) + 1) * 4

	dec := decimal.NewFromBigInt(accum, exp)
	if sign != 0 {
		dec = dec.Neg()
	}

	return dec.Round(int32(dscale)), nil
}
