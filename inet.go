package pgcast

import (
	"net/netip"

	"github.com/pkg/errors"
)

// Inet decodes the inet wire format: a header of address family, prefix
// bits, is-cidr flag and address length, followed by the address bytes. The
// result is the textual form: a bare address when the prefix covers the full
// address width and the cidr flag is unset, otherwise address/bits notation.
var Inet = NewBinaryType("inet", []OID{InetOID}, decodeInet)

func decodeInet(ctx *DecodeContext, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}

	if len(src) != 8 && len(src) != 20 {
		return nil, &DecodeLengthError{Name: "inet", Length: len(src)}
	}

	// src[0] is the address family; the address length already implies it.
	bits := src[1]
	isCIDR := src[2]
	addressLength := src[3]

	if int(addressLength) != len(src)-4 {
		return nil, errors.Errorf("inet address length %d does not match payload %d", addressLength, len(src)-4)
	}

	addr, ok := netip.AddrFromSlice(src[4:])
	if !ok {
		return nil, errors.Errorf("invalid inet address bytes %v", src[4:])
	}

	if isCIDR != 0 || int(bits) != addr.BitLen() {
		return netip.PrefixFrom(addr, int(bits)).String(), nil
	}

	return addr.String(), nil
}
