package span

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode encodes Duration values deterministically.
var cborEncMode cbor.EncMode

// cborDecMode rejects indefinite-length strings so a Duration is always a
// single definite text item.
var cborDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	cborEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create duration CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		IndefLength: cbor.IndefLengthForbidden,
	}
	cborDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create duration CBOR decoder mode: %v", err))
	}
}
