package codec

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pierrec/lz4"
)

// Compression wraps the encoded msgpack stream of a snapshot. A nil
// *Compression behaves like None.
type Compression struct {
	Name       string
	compress   func(dst *bytes.Buffer, src []byte) error
	decompress func(src []byte) ([]byte, error)
}

var (
	None = &Compression{
		Name: "none",
		compress: func(dst *bytes.Buffer, src []byte) error {
			_, err := dst.Write(src)
			return err
		},
		decompress: func(src []byte) ([]byte, error) {
			return src, nil
		},
	}
	Lz4 = &Compression{
		Name:       "lz4",
		compress:   lz4Compress,
		decompress: lz4Decompress,
	}
)

func (c *Compression) orNone() *Compression {
	if c == nil {
		return None
	}
	return c
}

func lz4Compress(dst *bytes.Buffer, src []byte) error {
	zw := lz4.NewWriter(dst)
	if _, err := zw.Write(src); err != nil {
		return err
	}
	return zw.Close()
}

// lz4Decompress stops reading once the output would exceed maxSnapshotSize,
// so a small frame cannot expand without bound.
func lz4Decompress(src []byte) ([]byte, error) {
	var out bytes.Buffer
	zr := lz4.NewReader(bytes.NewReader(src))

	n, err := io.Copy(&out, io.LimitReader(zr, maxSnapshotSize+1))
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "lz4 frame"), ErrCorrupt)
	}
	if n > maxSnapshotSize {
		return nil, errors.Wrapf(ErrCorrupt, "lz4 frame expands past %d bytes", maxSnapshotSize)
	}
	return out.Bytes(), nil
}
