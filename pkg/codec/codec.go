// Package codec turns containers into byte snapshots and back. Snapshots are
// a msgpack array, optionally lz4 compressed:
//
//	buffer: [capacity, size, item...]
//	vector: [initialCapacity, size, item...]
package codec

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack"
	"github.com/ximtech/Vector/pkg/buffer"
	"github.com/ximtech/Vector/pkg/capacity"
	"github.com/ximtech/Vector/pkg/util"
	"github.com/ximtech/Vector/pkg/vector"
)

// maxSnapshotSize bounds the decompressed size of a snapshot.
const maxSnapshotSize = 1 << 30

// MaxDecodedCapacity is the largest capacity a snapshot may declare. Storage
// of that size is allocated before any item is read, so the header is never
// trusted beyond it.
var MaxDecodedCapacity = 1 << 24

var (
	ErrNilContainer = errors.New("cannot encode an absent container")
	ErrCorrupt      = errors.New("snapshot is corrupt")
)

func EncodeBuffer[T any](v *buffer.Vector[T], c *Compression) ([]byte, error) {
	if v == nil {
		return nil, ErrNilContainer
	}
	return encode(v.Capacity(), v.Items(), c)
}

func DecodeBuffer[T any](b []byte, cmp util.Comparator[T], c *Compression) (*buffer.Vector[T], error) {
	limit, items, err := decode[T](b, c)
	if err != nil {
		return nil, err
	}
	if len(items) > limit {
		return nil, errors.Wrapf(ErrCorrupt, "%d items exceed capacity %d", len(items), limit)
	}

	v, err := buffer.NewOf(limit, cmp, items...)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "rebuilding buffer"), ErrCorrupt)
	}
	return v, nil
}

func EncodeVector[T any](v *vector.Vector[T], c *Compression) ([]byte, error) {
	if v.Capacity() == 0 {
		return nil, ErrNilContainer
	}
	return encode(v.InitialCapacity(), v.Items(), c)
}

// DecodeVector rebuilds a vector by replaying Add, so the capacity it ends up
// with follows the growth policy. config may be nil; its InitialCapacity is
// always taken from the snapshot.
func DecodeVector[T any](b []byte, c *Compression, config *vector.Config[T]) (*vector.Vector[T], error) {
	initial, items, err := decode[T](b, c)
	if err != nil {
		return nil, err
	}

	cfg := vector.Config[T]{}
	if config != nil {
		cfg = *config
	}
	cfg.InitialCapacity = initial

	v, err := vector.NewWithConfig(&cfg)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "rebuilding vector"), ErrCorrupt)
	}

	for i, item := range items {
		if !v.Add(item) {
			return nil, errors.Wrapf(ErrCorrupt, "item %d exceeds max capacity %d", i, cfg.MaxCapacity)
		}
	}
	return v, nil
}

func encode[T any](limit int, items []T, c *Compression) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)

	if err := enc.EncodeArrayLen(len(items) + 2); err != nil {
		return nil, err
	}
	if err := enc.EncodeInt(int64(limit)); err != nil {
		return nil, err
	}
	if err := enc.EncodeInt(int64(len(items))); err != nil {
		return nil, err
	}
	for i := range items {
		if err := enc.Encode(items[i]); err != nil {
			return nil, errors.Wrapf(err, "encoding item %d", i)
		}
	}

	var out bytes.Buffer
	if err := c.orNone().compress(&out, buf.Bytes()); err != nil {
		return nil, errors.Wrapf(err, "compressing with %s", c.orNone().Name)
	}
	return out.Bytes(), nil
}

func decode[T any](b []byte, c *Compression) (int, []T, error) {
	raw, err := c.orNone().decompress(b)
	if err != nil {
		return 0, nil, errors.Mark(errors.Wrapf(err, "decompressing with %s", c.orNone().Name), ErrCorrupt)
	}

	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return 0, nil, errors.Mark(errors.Wrap(err, "reading header"), ErrCorrupt)
	}
	if n < 2 {
		return 0, nil, errors.Wrapf(ErrCorrupt, "header has %d fields", n)
	}

	limit, err := dec.DecodeInt()
	if err != nil {
		return 0, nil, errors.Mark(errors.Wrap(err, "reading capacity"), ErrCorrupt)
	}
	if limit < 1 || limit > capacity.DefaultMax || limit > MaxDecodedCapacity {
		return 0, nil, errors.Wrapf(ErrCorrupt, "capacity %d out of range", limit)
	}

	size, err := dec.DecodeInt()
	if err != nil {
		return 0, nil, errors.Mark(errors.Wrap(err, "reading size"), ErrCorrupt)
	}
	if size < 0 || size != n-2 {
		return 0, nil, errors.Wrapf(ErrCorrupt, "size %d does not match %d items", size, n-2)
	}

	// every item takes at least one byte, so raw bounds the preallocation
	items := make([]T, 0, min(size, len(raw)))
	for i := 0; i < size; i++ {
		var item T
		if err := dec.Decode(&item); err != nil {
			return 0, nil, errors.Mark(errors.Wrapf(err, "decoding item %d", i), ErrCorrupt)
		}
		items = append(items, item)
	}
	return limit, items, nil
}
