package pgcast_test

import (
	"github.com/funkybob/pgcast"
)

func testContext() *pgcast.DecodeContext {
	return pgcast.NewDecodeContext(pgcast.NewTypeRegistry())
}
