package pgcast

// Binary array decoders for the element families the default registry
// covers.
var (
	ByteaArray     = NewArrayType("bytea[]", []OID{ByteaArrayOID}, Bytea)
	BoolArray      = NewArrayType("bool[]", []OID{BoolArrayOID}, Bool)
	DateArray      = NewArrayType("date[]", []OID{DateArrayOID}, Date)
	TimestampArray = NewArrayType("timestamp[]", []OID{TimestampArrayOID, TimestamptzArrayOID}, Timestamp)
	NumericArray   = NewArrayType("numeric[]", []OID{NumericArrayOID}, Numeric)
	FloatArray     = NewArrayType("float[]", []OID{Float4ArrayOID, Float8ArrayOID}, Float)
	IntArray       = NewArrayType("integer[]", []OID{Int2ArrayOID, Int2VectorArrayOID, Int4ArrayOID, Int8ArrayOID}, Int)
	IntervalArray  = NewArrayType("interval[]", []OID{IntervalArrayOID}, Interval)
	RowIDArray     = NewArrayType("rowid[]", []OID{OIDVectorArrayOID, OIDArrayOID}, RowID)
	TextArray      = NewArrayType("text[]", []OID{CharArrayOID, NameArrayOID, TextArrayOID, BpcharArrayOID, VarcharArrayOID}, Text)
	TimeArray      = NewArrayType("time[]", []OID{TimeArrayOID, TimetzArrayOID}, Time)
)

// defaultDecoders is the global tier's contents, in registration order.
// Order matters only when two entries claim the same OID: the last
// registration wins.
var defaultDecoders = []*Decoder{
	Bytea,
	RowID,
	Text,
	Bool,
	Numeric,
	Float,
	Int,
	Interval,
	Time,
	Unknown,
	Date,
	Timestamp,
	Timestamptz,
	Record,
	Inet,
	Void,
	ByteaArray,
	BoolArray,
	DateArray,
	TimestampArray,
	NumericArray,
	FloatArray,
	IntArray,
	IntervalArray,
	RowIDArray,
	TextArray,
	TimeArray,
}
