package uuid_test

import (
	"testing"

	gofrs "github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"

	"github.com/funkybob/pgcast"
	pguuid "github.com/funkybob/pgcast/ext/gofrs-uuid"
)

func TestUUIDDecode(t *testing.T) {
	registry := pgcast.NewTypeRegistry()
	pguuid.Register(registry)
	ctx := pgcast.NewDecodeContext(registry)

	want := gofrs.Must(gofrs.FromString("0f0e0d0c-0b0a-0908-0706-050403020100"))

	v, err := ctx.Decode(pgcast.UUIDOID, want.Bytes())
	require.NoError(t, err)
	require.Equal(t, want, v)
}

func TestUUIDDecodeNull(t *testing.T) {
	registry := pgcast.NewTypeRegistry()
	pguuid.Register(registry)
	ctx := pgcast.NewDecodeContext(registry)

	v, err := ctx.Decode(pgcast.UUIDOID, nil)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestUUIDDecodeInvalidLength(t *testing.T) {
	registry := pgcast.NewTypeRegistry()
	pguuid.Register(registry)
	ctx := pgcast.NewDecodeContext(registry)

	_, err := ctx.Decode(pgcast.UUIDOID, []byte{1, 2, 3})
	require.Error(t, err)
}
