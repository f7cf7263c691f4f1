// Package boltdb exposes the entries of a bolt bucket as removable iterators.
//
// The iterators are bound to the transaction of the bucket,
// and they must not be used after the transaction is closed.
package boltdb

import (
	"bytes"

	"github.com/boltdb/bolt"

	"go.llib.dev/primiter/port/iterators"
)

// Entry is a key value pair of a bucket.
// Both slices are copies, so they stay valid after the transaction ends.
type Entry struct {
	Key   []byte
	Value []byte
}

// Bucket returns an iterable over the entries of b in key order.
// Nested buckets are skipped.
func Bucket(b *bolt.Bucket) (*BucketIterable, error) {
	if b == nil {
		return nil, iterators.ErrNilArgument.F("bucket is nil")
	}
	return &BucketIterable{bucket: b}, nil
}

type BucketIterable struct {
	bucket *bolt.Bucket
}

func (i *BucketIterable) Iterator() iterators.Iterator[Entry] {
	return &BucketIterator{bucket: i.bucket}
}

func (i *BucketIterable) ForEach(action func(Entry) error) error {
	return iterators.ForEach[Entry](i, action)
}

// BucketIterator walks a bucket by re-seeking from the last returned key on every step,
// so deleting keys through Remove or through the bucket itself never invalidates it.
// Remove requires a writable transaction,
// otherwise bolt's own error is returned.
type BucketIterator struct {
	bucket *bolt.Bucket
	// lastKey is the key returned by the latest Next.
	lastKey []byte
	// started is set by the first successful Next.
	started bool
	// removable is set by Next and cleared by Remove.
	removable bool
}

func (i *BucketIterator) HasNext() bool {
	k, _ := i.peek()
	return k != nil
}

func (i *BucketIterator) Next() (Entry, error) {
	k, v := i.peek()
	if k == nil {
		return Entry{}, iterators.ErrExhausted
	}
	e := Entry{Key: bytes.Clone(k), Value: bytes.Clone(v)}
	i.lastKey, i.started, i.removable = e.Key, true, true
	return e, nil
}

func (i *BucketIterator) Remove() error {
	if !i.removable {
		return iterators.ErrIllegalState
	}
	if err := i.bucket.Delete(i.lastKey); err != nil {
		return err
	}
	i.removable = false
	return nil
}

func (i *BucketIterator) ForEachRemaining(action func(Entry) error) error {
	return iterators.ForEachRemaining[Entry](i, action)
}

func (i *BucketIterator) peek() (key, value []byte) {
	c := i.bucket.Cursor()
	var k, v []byte
	if !i.started {
		k, v = c.First()
	} else {
		k, v = c.Seek(i.lastKey)
		if k != nil && bytes.Equal(k, i.lastKey) {
			k, v = c.Next()
		}
	}
	for k != nil && v == nil { // nested bucket
		k, v = c.Next()
	}
	return k, v
}
