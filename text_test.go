package pgcast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funkybob/pgcast"
)

func TestTextDecode(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		src    []byte
		result string
	}{
		{src: []byte(""), result: ""},
		{src: []byte("hello"), result: "hello"},
		{src: []byte("héllo"), result: "héllo"},
	}

	for i, tt := range tests {
		v, err := pgcast.Text.Decode(ctx, tt.src)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if v != tt.result {
			t.Errorf("%d: expected %q, got %q", i, tt.result, v)
		}
	}
}

func TestTextDecodeNull(t *testing.T) {
	ctx := testContext()

	v, err := pgcast.Text.Decode(ctx, nil)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestTextDecodeInvalidUTF8(t *testing.T) {
	ctx := testContext()

	_, err := pgcast.Text.Decode(ctx, []byte{0xff, 0xfe, 0xfd})
	var encErr *pgcast.EncodingError
	require.ErrorAs(t, err, &encErr)
	require.Equal(t, "UTF8", encErr.Encoding)
}

func TestTextDecodeLatin1(t *testing.T) {
	ctx := testContext()
	ctx.Encoding = "latin1"

	// 0xe9 is é in ISO 8859-1
	v, err := pgcast.Text.Decode(ctx, []byte{'c', 'a', 'f', 0xe9})
	require.NoError(t, err)
	require.Equal(t, "café", v)
}

func TestTextDecodeUnknownEncoding(t *testing.T) {
	ctx := testContext()
	ctx.Encoding = "no-such-encoding"

	_, err := pgcast.Text.Decode(ctx, []byte("hi"))
	var encErr *pgcast.EncodingError
	require.ErrorAs(t, err, &encErr)
}
