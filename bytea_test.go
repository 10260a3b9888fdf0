package pgcast_test

import (
	"bytes"
	"testing"

	"github.com/funkybob/pgcast"
)

func TestByteaDecode(t *testing.T) {
	ctx := testContext()

	src := []byte{0xde, 0xad, 0xbe, 0xef}
	v, err := pgcast.Bytea.Decode(ctx, src)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(v.([]byte), src) {
		t.Errorf("expected %v, got %v", src, v)
	}

	v, err = pgcast.Bytea.Decode(ctx, []byte{})
	if err != nil {
		t.Fatal(err)
	}
	if len(v.([]byte)) != 0 {
		t.Errorf("expected empty, got %v", v)
	}

	v, err = pgcast.Bytea.Decode(ctx, nil)
	if err != nil || v != nil {
		t.Errorf("expected nil, nil; got %v, %v", v, err)
	}
}

func TestPlaceholderDecoders(t *testing.T) {
	ctx := testContext()

	for _, d := range []*pgcast.Decoder{pgcast.Unknown, pgcast.Void, pgcast.Time} {
		v, err := d.Decode(ctx, []byte("anything"))
		if err != nil || v != nil {
			t.Errorf("%s: expected nil, nil; got %v, %v", d.Name, v, err)
		}
	}
}
