package pgcast_test

import (
	"strconv"
	"testing"

	"github.com/jackc/pgio"
	"github.com/stretchr/testify/require"

	"github.com/funkybob/pgcast"
)

func encodeArrayHeader(elemOID pgcast.OID, containsNull bool, dims ...[2]int32) []byte {
	buf := pgio.AppendInt32(nil, int32(len(dims)))
	var hasNull int32
	if containsNull {
		hasNull = 1
	}
	buf = pgio.AppendInt32(buf, hasNull)
	buf = pgio.AppendUint32(buf, uint32(elemOID))
	for _, d := range dims {
		buf = pgio.AppendInt32(buf, d[0])
		buf = pgio.AppendInt32(buf, d[1])
	}
	return buf
}

func appendArrayElem(buf, src []byte) []byte {
	if src == nil {
		return pgio.AppendInt32(buf, -1)
	}
	buf = pgio.AppendInt32(buf, int32(len(src)))
	return append(buf, src...)
}

func TestArrayDecodeOneDimension(t *testing.T) {
	ctx := testContext()

	buf := encodeArrayHeader(pgcast.Int4OID, false, [2]int32{3, 1})
	for _, n := range []int32{1, 2, 3} {
		buf = appendArrayElem(buf, pgio.AppendInt32(nil, n))
	}

	v, err := ctx.Decode(pgcast.Int4ArrayOID, buf)
	require.NoError(t, err)
	require.Equal(t, []interface{}{int32(1), int32(2), int32(3)}, v)
}

func TestArrayDecodeZeroDimensions(t *testing.T) {
	ctx := testContext()

	buf := encodeArrayHeader(pgcast.Int4OID, false)

	v, err := ctx.Decode(pgcast.Int4ArrayOID, buf)
	require.NoError(t, err)
	require.Equal(t, []interface{}{}, v)
}

func TestArrayDecodeTwoDimensions(t *testing.T) {
	ctx := testContext()

	buf := encodeArrayHeader(pgcast.Int2OID, false, [2]int32{2, 1}, [2]int32{3, 1})
	for _, n := range []int16{1, 2, 3, 4, 5, 6} {
		buf = appendArrayElem(buf, pgio.AppendInt16(nil, n))
	}

	v, err := ctx.Decode(pgcast.Int2ArrayOID, buf)
	require.NoError(t, err)
	require.Equal(t, []interface{}{
		[]interface{}{int16(1), int16(2), int16(3)},
		[]interface{}{int16(4), int16(5), int16(6)},
	}, v)
}

func TestArrayDecodeNullElement(t *testing.T) {
	ctx := testContext()

	buf := encodeArrayHeader(pgcast.TextOID, true, [2]int32{3, 1})
	buf = appendArrayElem(buf, []byte("a"))
	buf = appendArrayElem(buf, nil)
	buf = appendArrayElem(buf, []byte("b"))

	v, err := ctx.Decode(pgcast.TextArrayOID, buf)
	require.NoError(t, err)
	require.Equal(t, []interface{}{"a", nil, "b"}, v)
}

func TestArrayDecodeNull(t *testing.T) {
	ctx := testContext()

	v, err := ctx.Decode(pgcast.Int4ArrayOID, nil)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestArrayDecodeIncomplete(t *testing.T) {
	ctx := testContext()

	buf := encodeArrayHeader(pgcast.Int4OID, false, [2]int32{2, 1})
	buf = appendArrayElem(buf, pgio.AppendInt32(nil, 1))

	_, err := ctx.Decode(pgcast.Int4ArrayOID, buf)
	require.Error(t, err)
}

func TestArrayDecodeOversizedDimensionCount(t *testing.T) {
	ctx := testContext()

	// A 12-byte header claiming 2^31-1 dimensions must error on the
	// missing dimension data before allocating for them.
	buf := pgio.AppendInt32(nil, 0x7fffffff)
	buf = pgio.AppendInt32(buf, 0)
	buf = pgio.AppendInt32(buf, int32(pgcast.Int4OID))

	_, err := ctx.Decode(pgcast.Int4ArrayOID, buf)
	require.Error(t, err)
}

// textInt parses base 10 integers out of array literal items.
var textInt = pgcast.NewType("int", nil, func(ctx *pgcast.DecodeContext, src interface{}) (interface{}, error) {
	if src == nil {
		return nil, nil
	}
	return strconv.Atoi(src.(string))
})

// textString passes array literal items through unchanged.
var textString = pgcast.NewType("text", nil, func(ctx *pgcast.DecodeContext, src interface{}) (interface{}, error) {
	if src == nil {
		return nil, nil
	}
	return src.(string), nil
})

func TestParseTextArray(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		source string
		elem   *pgcast.Decoder
		result []interface{}
	}{
		{source: "{}", elem: textInt, result: []interface{}{}},
		{source: "{1,2,3}", elem: textInt, result: []interface{}{1, 2, 3}},
		{source: "{1, 2, 3}", elem: textInt, result: []interface{}{1, 2, 3}},
		{source: `{"a,b","c"}`, elem: textString, result: []interface{}{"a,b", "c"}},
		{source: `{"He said, \"Hello.\""}`, elem: textString, result: []interface{}{`He said, "Hello."`}},
		{source: `{a\,b,c}`, elem: textString, result: []interface{}{"a,b", "c"}},
		{source: "{NULL,1}", elem: textInt, result: []interface{}{nil, 1}},
		{source: "{null}", elem: textInt, result: []interface{}{nil}},
		{source: "{nullish}", elem: textString, result: []interface{}{"nullish"}},
		{source: "{{1,2},{3,4}}", elem: textInt, result: []interface{}{
			[]interface{}{1, 2},
			[]interface{}{3, 4},
		}},
		{source: "{{{1}}}", elem: textInt, result: []interface{}{
			[]interface{}{[]interface{}{1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			v, err := pgcast.ParseTextArray(ctx, tt.source, tt.elem)
			require.NoError(t, err)
			require.Equal(t, tt.result, v)
		})
	}
}

func TestParseTextArrayMalformed(t *testing.T) {
	ctx := testContext()

	for _, source := range []string{"", "1,2,3", "{1,2,3", "1,2,3}", "(1,2)"} {
		_, err := pgcast.ParseTextArray(ctx, source, textInt)
		var malformedErr *pgcast.MalformedLiteralError
		require.ErrorAsf(t, err, &malformedErr, "source %q", source)
	}
}

func TestNewTextArrayType(t *testing.T) {
	registry := pgcast.NewTypeRegistry()
	scope := registry.NewScope()
	scope.Register(pgcast.NewTextArrayType("int[]", []pgcast.OID{pgcast.Int4ArrayOID}, textInt))

	ctx := pgcast.NewDecodeContext(scope)

	v, err := ctx.Decode(pgcast.Int4ArrayOID, []byte("{1,2,3}"))
	require.NoError(t, err)
	require.Equal(t, []interface{}{1, 2, 3}, v)
}
