package pgcast

// OID is a PostgreSQL object identifier. The server tags every value in a
// binary result with the OID of its type.
type OID uint32

// PostgreSQL oids for the types the default registry knows about.
const (
	BoolOID             OID = 16
	ByteaOID            OID = 17
	CharOID             OID = 18
	NameOID             OID = 19
	Int8OID             OID = 20
	Int2OID             OID = 21
	Int2VectorOID       OID = 22
	Int4OID             OID = 23
	TextOID             OID = 25
	OIDOID              OID = 26
	Float4OID           OID = 700
	Float8OID           OID = 701
	UnknownOID          OID = 705
	InetOID             OID = 869
	BoolArrayOID        OID = 1000
	ByteaArrayOID       OID = 1001
	CharArrayOID        OID = 1002
	NameArrayOID        OID = 1003
	Int2ArrayOID        OID = 1005
	Int2VectorArrayOID  OID = 1006
	Int4ArrayOID        OID = 1007
	TextArrayOID        OID = 1009
	OIDVectorArrayOID   OID = 1013
	BpcharArrayOID      OID = 1014
	VarcharArrayOID     OID = 1015
	Int8ArrayOID        OID = 1016
	Float4ArrayOID      OID = 1021
	Float8ArrayOID      OID = 1022
	OIDArrayOID         OID = 1028
	BpcharOID           OID = 1042
	VarcharOID          OID = 1043
	DateOID             OID = 1082
	TimeOID             OID = 1083
	TimestampOID        OID = 1114
	TimestampArrayOID   OID = 1115
	DateArrayOID        OID = 1182
	TimeArrayOID        OID = 1183
	TimestamptzOID      OID = 1184
	TimestamptzArrayOID OID = 1185
	IntervalOID         OID = 1186
	IntervalArrayOID    OID = 1187
	NumericArrayOID     OID = 1231
	TimetzOID           OID = 1266
	TimetzArrayOID      OID = 1270
	NumericOID          OID = 1700
	RecordOID           OID = 2249
	VoidOID             OID = 2278
	UUIDOID             OID = 2950
	UUIDArrayOID        OID = 2951
)
