package boltdb

import (
	"encoding/binary"

	"github.com/boltdb/bolt"

	"go.llib.dev/primiter"
	"go.llib.dev/primiter/pkg/errorkit"
)

const ErrValueSize errorkit.Error = "boltdb: unexpected value size"

// EncodeInt32 returns the big-endian form of v, as DecodeInt32 expects it.
func EncodeInt32(v int32) []byte {
	return binary.BigEndian.AppendUint32(make([]byte, 0, 4), uint32(v))
}

// DecodeInt32 reads a big-endian int32 from the value of the entry.
func DecodeInt32(e Entry) (int32, error) {
	if len(e.Value) != 4 {
		return 0, ErrValueSize.F("key %q has %d bytes", e.Key, len(e.Value))
	}
	return int32(binary.BigEndian.Uint32(e.Value)), nil
}

// Int32Values is a primitive view of the bucket values.
// Remove on the returned iterator deletes the key of the last returned value.
func Int32Values(b *bolt.Bucket) (primiter.Int32Iterator, error) {
	itb, err := Bucket(b)
	if err != nil {
		return nil, err
	}
	return primiter.Int32IteratorFromIterator(itb.Iterator(), DecodeInt32)
}
