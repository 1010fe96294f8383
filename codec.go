package arraylist

import (
	"github.com/fxamacker/cbor/v2"
)

// encMode encodes with Core Deterministic Encoding (RFC 8949 §4.2), so equal
// lists always produce identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("arraylist: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("arraylist: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes the elements as a CBOR array.
func (l *List[T]) MarshalCBOR() ([]byte, error) {
	if l.n == 0 {
		return encMode.Marshal([]T{})
	}
	return encMode.Marshal(l.buf[:l.n])
}

// UnmarshalCBOR replaces the contents with the decoded CBOR array. Capacity
// becomes the decoded length. On a decode or allocation error the list is
// unchanged.
func (l *List[T]) UnmarshalCBOR(data []byte) error {
	var items []T
	if err := decMode.Unmarshal(data, &items); err != nil {
		return err
	}
	return l.replace("UnmarshalCBOR", len(items), func(i int) T { return items[i] }, false)
}
