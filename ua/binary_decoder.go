// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"encoding/binary"
	"io"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// BinaryDecoder decodes the UA binary protocol.
type BinaryDecoder struct {
	r  io.Reader
	lr *io.LimitedReader
	bs [8]byte
}

// NewBinaryDecoder returns a new decoder that reads from an io.Reader.
func NewBinaryDecoder(r io.Reader) *BinaryDecoder {
	return &BinaryDecoder{r: r}
}

// NewBinaryDecoderLimit returns a new decoder that reads at most n bytes from an io.Reader.
// A string or array length prefix larger than the bytes left is a decoding error, so nothing
// is allocated for it.
func NewBinaryDecoderLimit(r io.Reader, n int64) *BinaryDecoder {
	lr := &io.LimitedReader{R: r, N: n}
	return &BinaryDecoder{r: lr, lr: lr}
}

// fits reports whether n elements of at least one byte each can still be read.
func (dec *BinaryDecoder) fits(n int32) bool {
	return dec.lr == nil || int64(n) <= dec.lr.N
}

// ReadBoolean reads a bool.
func (dec *BinaryDecoder) ReadBoolean(value *bool) error {
	var b byte
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	*value = b != 0
	return nil
}

// ReadSByte reads a int8.
func (dec *BinaryDecoder) ReadSByte(value *int8) error {
	var b byte
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	*value = int8(b)
	return nil
}

// ReadByte reads a byte.
func (dec *BinaryDecoder) ReadByte(value *byte) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:1]); err != nil {
		return BadDecodingError
	}
	*value = dec.bs[0]
	return nil
}

// ReadInt16 reads a int16.
func (dec *BinaryDecoder) ReadInt16(value *int16) error {
	var v uint16
	if err := dec.ReadUInt16(&v); err != nil {
		return BadDecodingError
	}
	*value = int16(v)
	return nil
}

// ReadUInt16 reads a uint16.
func (dec *BinaryDecoder) ReadUInt16(value *uint16) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:2]); err != nil {
		return BadDecodingError
	}
	*value = binary.LittleEndian.Uint16(dec.bs[:2])
	return nil
}

// ReadInt32 reads a int32.
func (dec *BinaryDecoder) ReadInt32(value *int32) error {
	var v uint32
	if err := dec.ReadUInt32(&v); err != nil {
		return BadDecodingError
	}
	*value = int32(v)
	return nil
}

// ReadUInt32 reads a uint32.
func (dec *BinaryDecoder) ReadUInt32(value *uint32) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:4]); err != nil {
		return BadDecodingError
	}
	*value = binary.LittleEndian.Uint32(dec.bs[:4])
	return nil
}

// ReadInt64 reads a int64.
func (dec *BinaryDecoder) ReadInt64(value *int64) error {
	var v uint64
	if err := dec.ReadUInt64(&v); err != nil {
		return BadDecodingError
	}
	*value = int64(v)
	return nil
}

// ReadUInt64 reads a uint64.
func (dec *BinaryDecoder) ReadUInt64(value *uint64) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:8]); err != nil {
		return BadDecodingError
	}
	*value = binary.LittleEndian.Uint64(dec.bs[:8])
	return nil
}

// ReadFloat reads a float32.
func (dec *BinaryDecoder) ReadFloat(value *float32) error {
	var v uint32
	if err := dec.ReadUInt32(&v); err != nil {
		return BadDecodingError
	}
	*value = math.Float32frombits(v)
	return nil
}

// ReadDouble reads a float64.
func (dec *BinaryDecoder) ReadDouble(value *float64) error {
	var v uint64
	if err := dec.ReadUInt64(&v); err != nil {
		return BadDecodingError
	}
	*value = math.Float64frombits(v)
	return nil
}

// ReadString reads a string. Null reads as the empty string.
func (dec *BinaryDecoder) ReadString(value *string) error {
	var n int32
	if err := dec.ReadInt32(&n); err != nil {
		return BadDecodingError
	}
	if n <= 0 {
		*value = ""
		return nil
	}
	if !dec.fits(n) {
		return BadDecodingError
	}
	bs := make([]byte, n)
	if _, err := io.ReadFull(dec.r, bs); err != nil {
		return BadDecodingError
	}
	*value = string(bs)
	return nil
}

// ReadDateTime reads a time.Time.
func (dec *BinaryDecoder) ReadDateTime(value *time.Time) error {
	// ticks are 100 nanosecond intervals since January 1, 1601
	var ticks int64
	if err := dec.ReadInt64(&ticks); err != nil {
		return BadDecodingError
	}
	if ticks < 0 {
		ticks = 0
	}
	if ticks == 0x7FFFFFFFFFFFFFFF {
		ticks = 2650467743990000000
	}
	*value = time.Unix(ticks/10000000-11644473600, (ticks%10000000)*100).UTC()
	return nil
}

// ReadGUID reads a uuid.UUID.
func (dec *BinaryDecoder) ReadGUID(value *uuid.UUID) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:8]); err != nil {
		return BadDecodingError
	}
	v := uuid.UUID{}
	v[0] = dec.bs[3]
	v[1] = dec.bs[2]
	v[2] = dec.bs[1]
	v[3] = dec.bs[0]
	v[4] = dec.bs[5]
	v[5] = dec.bs[4]
	v[6] = dec.bs[7]
	v[7] = dec.bs[6]
	if _, err := io.ReadFull(dec.r, v[8:]); err != nil {
		return BadDecodingError
	}
	*value = v
	return nil
}

// ReadByteString reads a ByteString.
func (dec *BinaryDecoder) ReadByteString(value *ByteString) error {
	var s string
	if err := dec.ReadString(&s); err != nil {
		return BadDecodingError
	}
	*value = ByteString(s)
	return nil
}

// ReadXMLElement reads a XMLElement.
func (dec *BinaryDecoder) ReadXMLElement(value *XMLElement) error {
	var s string
	if err := dec.ReadString(&s); err != nil {
		return BadDecodingError
	}
	*value = XMLElement(s)
	return nil
}

// ReadNodeID reads a NodeID.
func (dec *BinaryDecoder) ReadNodeID(value *NodeID) error {
	var b byte
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	return dec.readNodeIDBody(b, value)
}

// readNodeIDBody reads the identifier that follows an encoding byte with the flag bits cleared.
func (dec *BinaryDecoder) readNodeIDBody(b byte, value *NodeID) error {
	switch b {
	case 0x00:
		var id byte
		if err := dec.ReadByte(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDNumeric(0, uint32(id))
		return nil

	case 0x01:
		var ns byte
		var id uint16
		if err := dec.ReadByte(&ns); err != nil {
			return BadDecodingError
		}
		if err := dec.ReadUInt16(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDNumeric(uint16(ns), uint32(id))
		return nil

	case 0x02:
		var ns uint16
		var id uint32
		if err := dec.ReadUInt16(&ns); err != nil {
			return BadDecodingError
		}
		if err := dec.ReadUInt32(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDNumeric(ns, id)
		return nil

	case 0x03:
		var ns uint16
		var id string
		if err := dec.ReadUInt16(&ns); err != nil {
			return BadDecodingError
		}
		if err := dec.ReadString(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDString(ns, id)
		return nil

	case 0x04:
		var ns uint16
		var id uuid.UUID
		if err := dec.ReadUInt16(&ns); err != nil {
			return BadDecodingError
		}
		if err := dec.ReadGUID(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDGUID(ns, id)
		return nil

	case 0x05:
		var ns uint16
		var id ByteString
		if err := dec.ReadUInt16(&ns); err != nil {
			return BadDecodingError
		}
		if err := dec.ReadByteString(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDOpaque(ns, id)
		return nil
	}
	return BadDecodingError
}

// ReadExpandedNodeID reads an ExpandedNodeID.
func (dec *BinaryDecoder) ReadExpandedNodeID(value *ExpandedNodeID) error {
	var b byte
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	var id NodeID
	if err := dec.readNodeIDBody(b&0x3F, &id); err != nil {
		return BadDecodingError
	}
	var nsu string
	if (b & 0x80) != 0 {
		if err := dec.ReadString(&nsu); err != nil {
			return BadDecodingError
		}
	}
	var svr uint32
	if (b & 0x40) != 0 {
		if err := dec.ReadUInt32(&svr); err != nil {
			return BadDecodingError
		}
	}
	*value = ExpandedNodeID{svr, nsu, id}
	return nil
}

// ReadStatusCode reads a StatusCode.
func (dec *BinaryDecoder) ReadStatusCode(value *StatusCode) error {
	var v uint32
	if err := dec.ReadUInt32(&v); err != nil {
		return BadDecodingError
	}
	*value = StatusCode(v)
	return nil
}

// ReadQualifiedName reads a QualifiedName.
func (dec *BinaryDecoder) ReadQualifiedName(value *QualifiedName) error {
	var ns uint16
	var name string
	if err := dec.ReadUInt16(&ns); err != nil {
		return BadDecodingError
	}
	if err := dec.ReadString(&name); err != nil {
		return BadDecodingError
	}
	*value = QualifiedName{ns, name}
	return nil
}

// ReadLocalizedText reads a LocalizedText.
func (dec *BinaryDecoder) ReadLocalizedText(value *LocalizedText) error {
	var b byte
	var text, locale string
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	if (b & 1) != 0 {
		if err := dec.ReadString(&locale); err != nil {
			return BadDecodingError
		}
	}
	if (b & 2) != 0 {
		if err := dec.ReadString(&text); err != nil {
			return BadDecodingError
		}
	}
	*value = LocalizedText{text, locale}
	return nil
}

// ReadVariant reads a Variant. Scalars and one-dimensional arrays are supported.
func (dec *BinaryDecoder) ReadVariant(value *Variant) error {
	var b byte
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	if b == 0 {
		*value = NilVariant
		return nil
	}
	if (b & 0x40) != 0 {
		// array dimensions
		return BadDecodingError
	}
	t := BuiltInTypeID(b & 0x3F)
	typ, ok := scalarTypes[t]
	if !ok {
		return BadDecodingError
	}
	if (b & 0x80) == 0 {
		v, err := dec.readScalar(t)
		if err != nil {
			return BadDecodingError
		}
		*value = Variant{v, t, ArrayTypeSingleValue}
		return nil
	}
	var n int32
	if err := dec.ReadInt32(&n); err != nil {
		return BadDecodingError
	}
	if n < 0 {
		n = 0
	}
	if !dec.fits(n) {
		return BadDecodingError
	}
	rv := reflect.MakeSlice(reflect.SliceOf(typ), int(n), int(n))
	for i := 0; i < int(n); i++ {
		v, err := dec.readScalar(t)
		if err != nil {
			return BadDecodingError
		}
		rv.Index(i).Set(reflect.ValueOf(v))
	}
	*value = Variant{rv.Interface(), t, ArrayTypeArray}
	return nil
}

var scalarTypes = map[BuiltInTypeID]reflect.Type{
	BuiltInTypeIDBoolean:        reflect.TypeOf(false),
	BuiltInTypeIDSByte:          reflect.TypeOf(int8(0)),
	BuiltInTypeIDByte:           reflect.TypeOf(uint8(0)),
	BuiltInTypeIDInt16:          reflect.TypeOf(int16(0)),
	BuiltInTypeIDUInt16:         reflect.TypeOf(uint16(0)),
	BuiltInTypeIDInt32:          reflect.TypeOf(int32(0)),
	BuiltInTypeIDUInt32:         reflect.TypeOf(uint32(0)),
	BuiltInTypeIDInt64:          reflect.TypeOf(int64(0)),
	BuiltInTypeIDUInt64:         reflect.TypeOf(uint64(0)),
	BuiltInTypeIDFloat:          reflect.TypeOf(float32(0)),
	BuiltInTypeIDDouble:         reflect.TypeOf(float64(0)),
	BuiltInTypeIDString:         reflect.TypeOf(""),
	BuiltInTypeIDDateTime:       reflect.TypeOf(time.Time{}),
	BuiltInTypeIDGUID:           reflect.TypeOf(uuid.UUID{}),
	BuiltInTypeIDByteString:     reflect.TypeOf(ByteString("")),
	BuiltInTypeIDXMLElement:     reflect.TypeOf(XMLElement("")),
	BuiltInTypeIDNodeID:         reflect.TypeOf(NodeID{}),
	BuiltInTypeIDExpandedNodeID: reflect.TypeOf(ExpandedNodeID{}),
	BuiltInTypeIDStatusCode:     reflect.TypeOf(StatusCode(0)),
	BuiltInTypeIDQualifiedName:  reflect.TypeOf(QualifiedName{}),
	BuiltInTypeIDLocalizedText:  reflect.TypeOf(LocalizedText{}),
}

func (dec *BinaryDecoder) readScalar(t BuiltInTypeID) (interface{}, error) {
	switch t {
	case BuiltInTypeIDBoolean:
		var v bool
		err := dec.ReadBoolean(&v)
		return v, err
	case BuiltInTypeIDSByte:
		var v int8
		err := dec.ReadSByte(&v)
		return v, err
	case BuiltInTypeIDByte:
		var v byte
		err := dec.ReadByte(&v)
		return v, err
	case BuiltInTypeIDInt16:
		var v int16
		err := dec.ReadInt16(&v)
		return v, err
	case BuiltInTypeIDUInt16:
		var v uint16
		err := dec.ReadUInt16(&v)
		return v, err
	case BuiltInTypeIDInt32:
		var v int32
		err := dec.ReadInt32(&v)
		return v, err
	case BuiltInTypeIDUInt32:
		var v uint32
		err := dec.ReadUInt32(&v)
		return v, err
	case BuiltInTypeIDInt64:
		var v int64
		err := dec.ReadInt64(&v)
		return v, err
	case BuiltInTypeIDUInt64:
		var v uint64
		err := dec.ReadUInt64(&v)
		return v, err
	case BuiltInTypeIDFloat:
		var v float32
		err := dec.ReadFloat(&v)
		return v, err
	case BuiltInTypeIDDouble:
		var v float64
		err := dec.ReadDouble(&v)
		return v, err
	case BuiltInTypeIDString:
		var v string
		err := dec.ReadString(&v)
		return v, err
	case BuiltInTypeIDDateTime:
		var v time.Time
		err := dec.ReadDateTime(&v)
		return v, err
	case BuiltInTypeIDGUID:
		var v uuid.UUID
		err := dec.ReadGUID(&v)
		return v, err
	case BuiltInTypeIDByteString:
		var v ByteString
		err := dec.ReadByteString(&v)
		return v, err
	case BuiltInTypeIDXMLElement:
		var v XMLElement
		err := dec.ReadXMLElement(&v)
		return v, err
	case BuiltInTypeIDNodeID:
		var v NodeID
		err := dec.ReadNodeID(&v)
		return v, err
	case BuiltInTypeIDExpandedNodeID:
		var v ExpandedNodeID
		err := dec.ReadExpandedNodeID(&v)
		return v, err
	case BuiltInTypeIDStatusCode:
		var v StatusCode
		err := dec.ReadStatusCode(&v)
		return v, err
	case BuiltInTypeIDQualifiedName:
		var v QualifiedName
		err := dec.ReadQualifiedName(&v)
		return v, err
	case BuiltInTypeIDLocalizedText:
		var v LocalizedText
		err := dec.ReadLocalizedText(&v)
		return v, err
	}
	return nil, BadDecodingError
}
