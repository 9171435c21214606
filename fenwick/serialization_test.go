package fenwick

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"testing"
)

func TestSerialization(t *testing.T) {
	r := newTestRNG(0xC0FFEE)
	values := randomValues(r, 300)
	x := Build(values...)
	x.Update(17, 99)
	values[17] += 99

	y, err := FromBytes(bytes.NewReader(x.AsBytes()))
	if err != nil {
		t.Fatalf("FromBytes() should not fail on AsBytes() output. Got %s", err)
	}

	if y.Len() != x.Len() {
		t.Fatalf("Expected Len() == %d after a round trip. Got %d", x.Len(), y.Len())
	}

	for i := range x.tree {
		if x.tree[i] != y.tree[i] {
			t.Fatalf("tree[%d] differs after a round trip: %d != %d", i, x.tree[i], y.tree[i])
		}
	}

	for i, v := range values {
		if y.Value(i) != v {
			t.Errorf("Value(%d) = %d after a round trip, expected %d", i, y.Value(i), v)
		}
	}
}

func TestSerializationEmpty(t *testing.T) {
	y, err := FromBytes(bytes.NewReader(New(0).AsBytes()))
	if err != nil || y.Len() != 0 {
		t.Errorf("An empty index should round trip. Got %v, %v", y, err)
	}
}

func TestSerializationKnownPayload(t *testing.T) {
	// version 1, length 3, deltas +1 +1 +1
	encoded := "AAAAAQAAAAMCAgI="
	if got := base64.StdEncoding.EncodeToString(Build(1, 2, 3).AsBytes()); got != encoded {
		t.Errorf("Unexpected encoding. Got %s, expected %s", got, encoded)
	}
}

func TestBinaryMarshaler(t *testing.T) {
	x := Build(-5, 0, 5, 1<<40)
	data, err := x.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() failed: %s", err)
	}

	var y Index
	if err := y.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() failed: %s", err)
	}
	if y.RangeSum(0, 3) != x.RangeSum(0, 3) {
		t.Errorf("Expected RangeSum(0, 3) == %d. Got %d", x.RangeSum(0, 3), y.RangeSum(0, 3))
	}
}

func TestFromBytesErrors(t *testing.T) {
	good := Build(10, 20, 30).AsBytes()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad version", []byte{0, 0, 0, 9, 0, 0, 0, 0}},
		{"missing length", []byte{0, 0, 0, 1}},
		{"negative length", []byte{0, 0, 0, 1, 0xff, 0xff, 0xff, 0xff}},
		{"truncated values", good[:len(good)-1]},
		{"truncated varint", []byte{0, 0, 0, 1, 0, 0, 0, 1, 0x80}},
	}

	for _, tt := range tests {
		x, err := FromBytes(bytes.NewReader(tt.data))
		if err == nil || x != nil {
			t.Errorf("%s: FromBytes() should fail. Got %v, %v", tt.name, x, err)
		}
	}

	_, err := FromBytes(bytes.NewReader(good[:len(good)-1]))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("A truncated payload should wrap io.ErrUnexpectedEOF. Got %v", err)
	}
}
