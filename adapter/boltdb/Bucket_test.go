package boltdb_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"

	"go.llib.dev/primiter/adapter/boltdb"
	"go.llib.dev/primiter/pkg/errorkit"
	"go.llib.dev/primiter/port/iterators"
	"go.llib.dev/primiter/port/iterators/iteratorcontracts"
)

func openDB(tb testing.TB) *bolt.DB {
	tb.Helper()
	db, err := bolt.Open(filepath.Join(tb.TempDir(), "primiter.db"), 0600, nil)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = db.Close() })
	return db
}

// writableBucket begins a writable transaction that is rolled back at the end of the test.
func writableBucket(tb testing.TB, db *bolt.DB) *bolt.Bucket {
	tb.Helper()
	tx, err := db.Begin(true)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = tx.Rollback() })
	b, err := tx.CreateBucket([]byte(uuid.NewV4().String()))
	require.NoError(tb, err)
	return b
}

func key(i int) []byte {
	return []byte(fmt.Sprintf("key-%03d", i))
}

func fill(tb testing.TB, b *bolt.Bucket, n int) []boltdb.Entry {
	tb.Helper()
	var entries []boltdb.Entry
	for i := 0; i < n; i++ {
		e := boltdb.Entry{Key: key(i), Value: boltdb.EncodeInt32(int32(i * 7))}
		require.NoError(tb, b.Put(e.Key, e.Value))
		entries = append(entries, e)
	}
	return entries
}

func TestBucket(t *testing.T) {
	s := testcase.NewSpec(t)

	db := testcase.Let(s, func(t *testcase.T) *bolt.DB { return openDB(t) })
	bucket := testcase.Let(s, func(t *testcase.T) *bolt.Bucket { return writableBucket(t, db.Get(t)) })
	entries := testcase.Let(s, func(t *testcase.T) []boltdb.Entry {
		return fill(t, bucket.Get(t), t.Random.IntB(0, 7))
	})
	subject := testcase.Let(s, func(t *testcase.T) *boltdb.BucketIterable {
		entries.Get(t)
		itb, err := boltdb.Bucket(bucket.Get(t))
		require.NoError(t, err)
		return itb
	})

	s.Then("entries are visited in key order", func(t *testcase.T) {
		got, err := iterators.Collect(subject.Get(t).Iterator())
		require.NoError(t, err)
		require.Equal(t, len(entries.Get(t)), len(got))
		for i, e := range entries.Get(t) {
			require.Equal(t, e.Key, got[i].Key)
			require.Equal(t, e.Value, got[i].Value)
		}
	})

	s.Then("Remove deletes the last returned key", func(t *testcase.T) {
		itr := subject.Get(t).Iterator()
		var removed int
		for itr.HasNext() {
			e, err := itr.Next()
			require.NoError(t, err)
			require.NoError(t, itr.Remove())
			require.Nil(t, bucket.Get(t).Get(e.Key))
			removed++
		}
		require.Equal(t, len(entries.Get(t)), removed)
		k, _ := bucket.Get(t).Cursor().First()
		require.Nil(t, k)
	})

	s.Then("nested buckets are skipped", func(t *testcase.T) {
		_, err := bucket.Get(t).CreateBucket([]byte("key-000-nested"))
		require.NoError(t, err)
		got, err := iterators.Collect(subject.Get(t).Iterator())
		require.NoError(t, err)
		require.Equal(t, len(entries.Get(t)), len(got))
	})

	iteratorcontracts.Iterable[boltdb.Entry]{
		MakeSubject: func(tb testing.TB) (iterators.Iterable[boltdb.Entry], []boltdb.Entry) {
			t := tb.(*testcase.T)
			return subject.Get(t), entries.Get(t)
		},
		Removable: true,
	}.Spec(s)
}

func TestBucket_nil(t *testing.T) {
	_, err := boltdb.Bucket(nil)
	require.True(t, errors.Is(err, iterators.ErrNilArgument))
	_, err = boltdb.Int32Values(nil)
	require.True(t, errors.Is(err, iterators.ErrNilArgument))
}

func TestBucket_readOnlyTransaction(t *testing.T) {
	db := openDB(t)
	name := []byte(uuid.NewV4().String())
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucket(name)
		if err != nil {
			return err
		}
		fill(t, b, 3)
		return nil
	}))

	err := db.View(func(tx *bolt.Tx) error {
		itr, err := boltdb.Int32Values(tx.Bucket(name))
		if err != nil {
			return err
		}
		if _, err := itr.Next(); err != nil {
			return err
		}
		return itr.Remove()
	})
	require.ErrorIs(t, err, bolt.ErrTxNotWritable)
}

func TestInt32Values(t *testing.T) {
	db := openDB(t)
	name := []byte(uuid.NewV4().String())

	require.NoError(t, db.Update(func(tx *bolt.Tx) (rErr error) {
		b, err := tx.CreateBucket(name)
		if err != nil {
			return err
		}
		fill(t, b, 4)

		itr, err := boltdb.Int32Values(b)
		if err != nil {
			return err
		}
		var got []int32
		for itr.HasNext() {
			v, err := itr.Next()
			if err != nil {
				return err
			}
			got = append(got, v)
			if v%2 == 1 {
				rErr = errorkit.Merge(rErr, itr.Remove())
			}
		}
		require.Equal(t, []int32{0, 7, 14, 21}, got)
		return rErr
	}))

	require.NoError(t, db.View(func(tx *bolt.Tx) error {
		itb, err := boltdb.Bucket(tx.Bucket(name))
		if err != nil {
			return err
		}
		var keys []string
		err = itb.ForEach(func(e boltdb.Entry) error {
			keys = append(keys, string(e.Key))
			return nil
		})
		require.Equal(t, []string{"key-000", "key-002"}, keys)
		return err
	}))
}

func TestDecodeInt32(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 1 << 30, -1 << 31} {
		got, err := boltdb.DecodeInt32(boltdb.Entry{Key: []byte("k"), Value: boltdb.EncodeInt32(v)})
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	_, err := boltdb.DecodeInt32(boltdb.Entry{Key: []byte("k"), Value: []byte{1, 2}})
	require.ErrorIs(t, err, boltdb.ErrValueSize)
}

func TestInt32Values_decodeErrorIsReturnedAsIs(t *testing.T) {
	db := openDB(t)
	b := writableBucket(t, db)
	require.NoError(t, b.Put([]byte("a"), []byte("not an int32")))

	itr, err := boltdb.Int32Values(b)
	require.NoError(t, err)
	_, err = itr.Next()
	require.ErrorIs(t, err, boltdb.ErrValueSize)
}
