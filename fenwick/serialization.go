package fenwick

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// SmallEncoding is the only encoding version AsBytes produces.
const SmallEncoding int32 = 1

// AsBytes serializes the index.
//
// The layout is the big-endian encoding version and value count, both
// int32, followed by one zigzag varint per value holding its difference
// from the previous value.
func (x *Index) AsBytes() []byte {
	buffer := new(bytes.Buffer)

	// Writes into a bytes.Buffer never fail.
	_ = binary.Write(buffer, binary.BigEndian, SmallEncoding)
	_ = binary.Write(buffer, binary.BigEndian, int32(x.Len()))

	var prev int64
	var scratch [binary.MaxVarintLen64]byte
	for i := 0; i < x.Len(); i++ {
		v := x.Value(i)
		n := binary.PutVarint(scratch[:], v-prev)
		buffer.Write(scratch[:n])
		prev = v
	}

	return buffer.Bytes()
}

// FromBytes reads an index serialized by AsBytes.
func FromBytes(buf *bytes.Reader) (*Index, error) {
	var encoding int32
	if err := binary.Read(buf, binary.BigEndian, &encoding); err != nil {
		return nil, fmt.Errorf("fenwick: reading encoding version: %w", err)
	}
	if encoding != SmallEncoding {
		return nil, fmt.Errorf("fenwick: unsupported encoding version: %d", encoding)
	}

	var n int32
	if err := binary.Read(buf, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("fenwick: reading length: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("fenwick: invalid length: %d", n)
	}
	if int64(n) > int64(buf.Len()) {
		// Every value takes at least one byte.
		return nil, fmt.Errorf("fenwick: length %d exceeds payload: %w", n, io.ErrUnexpectedEOF)
	}

	values := make([]int64, n)
	var prev int64
	for i := range values {
		delta, err := binary.ReadVarint(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("fenwick: reading value %d: %w", i, err)
		}
		prev += delta
		values[i] = prev
	}

	return Build(values...), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x *Index) MarshalBinary() ([]byte, error) {
	return x.AsBytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Index) UnmarshalBinary(data []byte) error {
	y, err := FromBytes(bytes.NewReader(data))
	if err != nil {
		return err
	}
	x.tree = y.tree
	return nil
}
