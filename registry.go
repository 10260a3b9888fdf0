package pgcast

import (
	"context"
)

// TypeRegistry is one tier of the layered OID to Decoder mapping. The global
// tier is built by NewTypeRegistry. A connection derives its own tier from
// the global one with NewScope, and a cursor derives its tier from the
// connection's. Resolve walks from the receiver up the parent chain, so a
// registration in a deeper tier shadows the same OID in the tiers above it.
//
// Registration is not synchronized. A tier is owned by a single connection or
// cursor, and writes to the global tier must complete before concurrent
// decoding begins.
type TypeRegistry struct {
	parent *TypeRegistry
	types  map[OID]*Decoder

	// Logger and LogLevel are optional. When set, registrations and failed
	// resolutions are reported through them. NewScope propagates them to
	// derived tiers.
	Logger   Logger
	LogLevel LogLevel
}

// NewTypeRegistry returns a global tier registry populated with the default
// decoders in deterministic order.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{types: make(map[OID]*Decoder, 64)}
	for _, d := range defaultDecoders {
		r.Register(d)
	}
	return r
}

// NewScope derives an empty child tier owned by a connection or cursor.
// Lookups through the child fall back to r when the child has no entry. The
// child is discarded with its owner.
func (r *TypeRegistry) NewScope() *TypeRegistry {
	return &TypeRegistry{
		parent:   r,
		types:    make(map[OID]*Decoder),
		Logger:   r.Logger,
		LogLevel: r.LogLevel,
	}
}

// Register installs d under every OID it handles, into this tier only. A
// later registration for an OID already present in this tier replaces the
// earlier one.
func (r *TypeRegistry) Register(d *Decoder) {
	for _, oid := range d.OIDs {
		r.types[oid] = d
	}

	if r.shouldLog(LogLevelDebug) && len(d.OIDs) > 0 {
		r.log(LogLevelDebug, "registered decoder", map[string]interface{}{"name": d.Name, "oids": d.OIDs})
	}
}

// Resolve returns the first Decoder for oid found walking from this tier up
// the parent chain. It returns an *UnknownTypeError when no tier has an
// entry.
func (r *TypeRegistry) Resolve(oid OID) (*Decoder, error) {
	for s := r; s != nil; s = s.parent {
		if d, ok := s.types[oid]; ok {
			return d, nil
		}
	}

	if r.shouldLog(LogLevelWarn) {
		r.log(LogLevelWarn, "no decoder for oid", map[string]interface{}{"oid": oid})
	}
	return nil, &UnknownTypeError{OID: oid}
}

func (r *TypeRegistry) shouldLog(lvl LogLevel) bool {
	return r.Logger != nil && r.LogLevel >= lvl
}

func (r *TypeRegistry) log(lvl LogLevel, msg string, data map[string]interface{}) {
	r.Logger.Log(context.Background(), lvl, msg, data)
}
