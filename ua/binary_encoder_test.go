// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/awcullen/uaspace/ua"
	"github.com/google/uuid"
	"gotest.tools/assert"
)

func TestBoolean(t *testing.T) {
	cases := []struct {
		in    bool
		bytes []byte
	}{
		{
			true,
			[]byte{
				0x01,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteBoolean(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out bool
		if err := dec.ReadBoolean(&out); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, out, c.in)
	}
}

func TestInt32(t *testing.T) {
	cases := []struct {
		in    int32
		bytes []byte
	}{
		{
			1_000_000_000,
			[]byte{
				0x00, 0xCA, 0x9A, 0x3B,
			},
		},
		{
			-1,
			[]byte{
				0xFF, 0xFF, 0xFF, 0xFF,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteInt32(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out int32
		if err := dec.ReadInt32(&out); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, out, c.in)
	}
}

func TestFloat(t *testing.T) {
	cases := []struct {
		in    float32
		bytes []byte
	}{
		{
			-6.5,
			[]byte{
				0x00, 0x00, 0xD0, 0xC0,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteFloat(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out float32
		if err := dec.ReadFloat(&out); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, out, c.in)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		in    string
		bytes []byte
	}{
		{
			"水Boy",
			[]byte{
				0x06, 0x00, 0x00, 0x00,
				0xE6, 0xB0, 0xB4, 0x42, 0x6F, 0x79,
			},
		},
		{
			"",
			[]byte{
				0xFF, 0xFF, 0xFF, 0xFF,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteString(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out string
		if err := dec.ReadString(&out); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, out, c.in)
	}
}

func TestTime(t *testing.T) {
	cases := []struct {
		in    time.Time
		bytes []byte
	}{
		{
			time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC),
			[]byte{
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteDateTime(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out time.Time
		if err := dec.ReadDateTime(&out); err != nil {
			t.Fatal(err)
		}
		assert.Assert(t, out.Equal(c.in))
	}
}

func TestGUID(t *testing.T) {
	cases := []struct {
		in    uuid.UUID
		bytes []byte
	}{
		{
			uuid.MustParse("72962B91-FA75-4AE6-8D28-B404DC7DAF63"),
			[]byte{
				// data1 (inverse order)
				0x91, 0x2b, 0x96, 0x72,
				// data2 (inverse order)
				0x75, 0xfa,
				// data3 (inverse order)
				0xe6, 0x4a,
				// data4 (same order)
				0x8d, 0x28, 0xb4, 0x04, 0xdc, 0x7d, 0xaf, 0x63,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteGUID(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out uuid.UUID
		if err := dec.ReadGUID(&out); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, out, c.in)
	}
}

func TestNodeID(t *testing.T) {
	cases := []struct {
		in    ua.NodeID
		bytes []byte
	}{
		{
			ua.NewNodeIDNumeric(0, 255),
			[]byte{
				// mask
				0x00,
				// id
				0xff,
			},
		},
		{
			ua.NewNodeIDNumeric(2, 65535),
			[]byte{
				// mask
				0x01,
				// namespace
				0x02,
				// id
				0xff, 0xff,
			},
		},
		{
			ua.NewNodeIDNumeric(10, 4294967295),
			[]byte{
				// mask
				0x02,
				// namespace
				0x0a, 0x00,
				// id
				0xff, 0xff, 0xff, 0xff,
			},
		},
		{
			ua.NewNodeIDString(2, "bar"),
			[]byte{
				// mask
				0x03,
				// namespace
				0x02, 0x00,
				// value
				0x03, 0x00, 0x00, 0x00,
				0x62, 0x61, 0x72,
			},
		},
		{
			ua.NewNodeIDGUID(2, uuid.MustParse("AAAABBBB-CCDD-EEFF-0101-0123456789AB")),
			[]byte{
				// mask
				0x04,
				// namespace
				0x02, 0x00,
				// value
				0xbb, 0xbb, 0xaa, 0xaa, 0xdd, 0xcc, 0xff, 0xee,
				0x01, 0x01, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab,
			},
		},
		{
			ua.NewNodeIDOpaque(2, ua.ByteString([]byte{0x00, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70})),
			[]byte{
				// mask
				0x05,
				// namespace
				0x02, 0x00,
				// value
				0x08, 0x00, 0x00, 0x00,
				0x00, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteNodeID(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out ua.NodeID
		if err := dec.ReadNodeID(&out); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, out, c.in)
	}
}

func TestExpandedNodeID(t *testing.T) {
	cases := []struct {
		in    ua.ExpandedNodeID
		bytes []byte
	}{
		{
			ua.NewExpandedNodeID(ua.NewNodeIDNumeric(0, 85)),
			[]byte{
				0x00, 0x55,
			},
		},
		{
			ua.NewExpandedNodeIDWithURI(1, "urn:a", ua.NewNodeIDNumeric(0, 5)),
			[]byte{
				// mask with uri and server flags
				0xc0, 0x05,
				// uri
				0x05, 0x00, 0x00, 0x00, 0x75, 0x72, 0x6e, 0x3a, 0x61,
				// server index
				0x01, 0x00, 0x00, 0x00,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteExpandedNodeID(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out ua.ExpandedNodeID
		if err := dec.ReadExpandedNodeID(&out); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, out, c.in)
	}
}

func TestQualifiedName(t *testing.T) {
	cases := []struct {
		in    ua.QualifiedName
		bytes []byte
	}{
		{
			ua.QualifiedName{NamespaceIndex: 2, Name: "bar"},
			[]byte{
				0x02, 0x00,
				0x03, 0x00, 0x00, 0x00,
				0x62, 0x61, 0x72,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteQualifiedName(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out ua.QualifiedName
		if err := dec.ReadQualifiedName(&out); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, out, c.in)
	}
}

func TestLocalizedText(t *testing.T) {
	cases := []struct {
		in    ua.LocalizedText
		bytes []byte
	}{
		{
			ua.LocalizedText{},
			[]byte{0x00},
		},
		{
			ua.LocalizedText{Locale: "foo"},
			[]byte{
				0x01,
				0x03, 0x00, 0x00, 0x00, 0x66, 0x6f, 0x6f,
			},
		},
		{
			ua.LocalizedText{Text: "bar"},
			[]byte{
				0x02,
				0x03, 0x00, 0x00, 0x00, 0x62, 0x61, 0x72,
			},
		},
		{
			ua.LocalizedText{Text: "bar", Locale: "foo"},
			[]byte{
				0x03,
				0x03, 0x00, 0x00, 0x00, 0x66, 0x6f, 0x6f,
				// second String: "bar"
				0x03, 0x00, 0x00, 0x00, 0x62, 0x61, 0x72,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteLocalizedText(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out ua.LocalizedText
		if err := dec.ReadLocalizedText(&out); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, out, c.in)
	}
}

func TestVariant(t *testing.T) {
	cases := []struct {
		in    ua.Variant
		bytes []byte
	}{
		{
			ua.NilVariant,
			[]byte{0x00},
		},
		{
			ua.MustVariant(int64(-1000)),
			[]byte{
				0x08,
				0x18, 0xfc, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			},
		},
		{
			ua.MustVariant([]bool{true, false}),
			[]byte{
				// type with array flag
				0x81,
				// length
				0x02, 0x00, 0x00, 0x00,
				0x01, 0x00,
			},
		},
		{
			ua.MustVariant(ua.NewLocalizedText("bar", "")),
			[]byte{
				0x15,
				0x02,
				0x03, 0x00, 0x00, 0x00, 0x62, 0x61, 0x72,
			},
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := ua.NewBinaryEncoder(buf)
		if err := enc.WriteVariant(c.in); err != nil {
			t.Fatal(err)
		}
		assert.DeepEqual(t, buf.Bytes(), c.bytes)

		dec := ua.NewBinaryDecoder(buf)
		var out ua.Variant
		if err := dec.ReadVariant(&out); err != nil {
			t.Fatal(err)
		}
		assert.Assert(t, out.Equal(c.in), "got %s, want %s", out, c.in)
	}
}

func TestReadVariantTruncated(t *testing.T) {
	dec := ua.NewBinaryDecoder(bytes.NewReader([]byte{0x08, 0x18, 0xfc}))
	var out ua.Variant
	err := dec.ReadVariant(&out)
	assert.Equal(t, err, ua.BadDecodingError)
}

func TestDecoderLimit(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
	}{
		{"string", []byte{0xFF, 0xFF, 0xFF, 0x7F, 0x42, 0x6F, 0x79}},
		{"byte string", []byte{0x00, 0x00, 0x00, 0x10, 0x42}},
		{"variant array", []byte{0x86, 0xFF, 0xFF, 0xFF, 0x7F, 0x01, 0x00, 0x00, 0x00}},
		{"string array", []byte{0x8C, 0x05, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dec := ua.NewBinaryDecoderLimit(bytes.NewReader(c.in), int64(len(c.in)))
			var err error
			if c.in[0]&0x80 != 0 {
				var out ua.Variant
				err = dec.ReadVariant(&out)
			} else {
				var out string
				err = dec.ReadString(&out)
			}
			assert.Equal(t, err, ua.BadDecodingError)
		})
	}

	// lengths within the limit decode as usual
	buf := &bytes.Buffer{}
	enc := ua.NewBinaryEncoder(buf)
	assert.NilError(t, enc.WriteString("水Boy"))
	assert.NilError(t, enc.WriteVariant(ua.MustVariant([]int32{1, 2, 3})))
	dec := ua.NewBinaryDecoderLimit(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	var s string
	assert.NilError(t, dec.ReadString(&s))
	assert.Equal(t, s, "水Boy")
	var v ua.Variant
	assert.NilError(t, dec.ReadVariant(&v))
	assert.DeepEqual(t, v.Value(), []int32{1, 2, 3})

	// the limit is the end of the input
	dec = ua.NewBinaryDecoderLimit(bytes.NewReader(buf.Bytes()), 4)
	assert.Equal(t, dec.ReadString(&s), ua.BadDecodingError)
}
