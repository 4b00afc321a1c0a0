// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"encoding/binary"
	"io"
	"math"
	"reflect"
	"time"

	uuid "github.com/google/uuid"
)

// BinaryEncoder encodes the UA Binary protocol.
type BinaryEncoder struct {
	w  io.Writer
	bs [8]byte
}

// NewBinaryEncoder returns a new encoder that writes to an io.Writer.
func NewBinaryEncoder(w io.Writer) *BinaryEncoder {
	return &BinaryEncoder{w: w}
}

// Encode encodes a built-in scalar using the UA Binary protocol.
func (enc *BinaryEncoder) Encode(value interface{}) error {
	switch val := value.(type) {
	case bool:
		return enc.WriteBoolean(val)
	case int8:
		return enc.WriteSByte(val)
	case uint8:
		return enc.WriteByte(val)
	case int16:
		return enc.WriteInt16(val)
	case uint16:
		return enc.WriteUInt16(val)
	case int32:
		return enc.WriteInt32(val)
	case uint32:
		return enc.WriteUInt32(val)
	case int64:
		return enc.WriteInt64(val)
	case uint64:
		return enc.WriteUInt64(val)
	case float32:
		return enc.WriteFloat(val)
	case float64:
		return enc.WriteDouble(val)
	case string:
		return enc.WriteString(val)
	case time.Time:
		return enc.WriteDateTime(val)
	case uuid.UUID:
		return enc.WriteGUID(val)
	case ByteString:
		return enc.WriteByteString(val)
	case XMLElement:
		return enc.WriteXMLElement(val)
	case NodeID:
		return enc.WriteNodeID(val)
	case ExpandedNodeID:
		return enc.WriteExpandedNodeID(val)
	case StatusCode:
		return enc.WriteStatusCode(val)
	case QualifiedName:
		return enc.WriteQualifiedName(val)
	case LocalizedText:
		return enc.WriteLocalizedText(val)
	case Variant:
		return enc.WriteVariant(val)
	}
	return BadEncodingError
}

// WriteBoolean writes a boolean.
func (enc *BinaryEncoder) WriteBoolean(value bool) error {
	if value {
		enc.bs[0] = 1
	} else {
		enc.bs[0] = 0
	}
	if _, err := enc.w.Write(enc.bs[:1]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteSByte writes a sbyte.
func (enc *BinaryEncoder) WriteSByte(value int8) error {
	return enc.WriteByte(byte(value))
}

// WriteByte writes a byte.
func (enc *BinaryEncoder) WriteByte(value byte) error {
	enc.bs[0] = value
	if _, err := enc.w.Write(enc.bs[:1]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteInt16 writes a int16.
func (enc *BinaryEncoder) WriteInt16(value int16) error {
	return enc.WriteUInt16(uint16(value))
}

// WriteUInt16 writes a uint16.
func (enc *BinaryEncoder) WriteUInt16(value uint16) error {
	binary.LittleEndian.PutUint16(enc.bs[:2], value)
	if _, err := enc.w.Write(enc.bs[:2]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteInt32 writes an int32.
func (enc *BinaryEncoder) WriteInt32(value int32) error {
	return enc.WriteUInt32(uint32(value))
}

// WriteUInt32 writes an uint32.
func (enc *BinaryEncoder) WriteUInt32(value uint32) error {
	binary.LittleEndian.PutUint32(enc.bs[:4], value)
	if _, err := enc.w.Write(enc.bs[:4]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteInt64 writes an int64.
func (enc *BinaryEncoder) WriteInt64(value int64) error {
	return enc.WriteUInt64(uint64(value))
}

// WriteUInt64 writes an uint64.
func (enc *BinaryEncoder) WriteUInt64(value uint64) error {
	binary.LittleEndian.PutUint64(enc.bs[:8], value)
	if _, err := enc.w.Write(enc.bs[:8]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteFloat writes a float.
func (enc *BinaryEncoder) WriteFloat(value float32) error {
	return enc.WriteUInt32(math.Float32bits(value))
}

// WriteDouble writes a double.
func (enc *BinaryEncoder) WriteDouble(value float64) error {
	return enc.WriteUInt64(math.Float64bits(value))
}

// WriteString writes a string. The empty string is written as null.
func (enc *BinaryEncoder) WriteString(value string) error {
	if len(value) == 0 {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	if _, err := io.WriteString(enc.w, value); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteDateTime writes a date/time.
func (enc *BinaryEncoder) WriteDateTime(value time.Time) error {
	// ticks are 100 nanosecond intervals since January 1, 1601
	ticks := (value.Unix()+11644473600)*10000000 + int64(value.Nanosecond())/100
	if ticks < 0 {
		ticks = 0
	}
	if ticks >= 2650467743990000000 {
		ticks = 0x7FFFFFFFFFFFFFFF
	}
	return enc.WriteInt64(ticks)
}

// WriteGUID writes a UUID
func (enc *BinaryEncoder) WriteGUID(value uuid.UUID) error {
	enc.bs[0] = value[3]
	enc.bs[1] = value[2]
	enc.bs[2] = value[1]
	enc.bs[3] = value[0]
	enc.bs[4] = value[5]
	enc.bs[5] = value[4]
	enc.bs[6] = value[7]
	enc.bs[7] = value[6]
	if _, err := enc.w.Write(enc.bs[:8]); err != nil {
		return BadEncodingError
	}
	if _, err := enc.w.Write(value[8:]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteByteString writes a ByteString
func (enc *BinaryEncoder) WriteByteString(value ByteString) error {
	return enc.WriteString(string(value))
}

// WriteXMLElement writes a XmlElement
func (enc *BinaryEncoder) WriteXMLElement(value XMLElement) error {
	return enc.WriteString(string(value))
}

// WriteNodeID writes a NodeID
func (enc *BinaryEncoder) WriteNodeID(value NodeID) error {
	return enc.writeNodeID(value, 0)
}

// writeNodeID writes the encoding byte, or'd with flags, followed by the identifier.
func (enc *BinaryEncoder) writeNodeID(value NodeID, flags byte) error {
	ns := value.namespaceIndex
	switch value.idType {
	case IDTypeNumeric:
		switch {
		case value.nid <= 255 && ns == 0:
			if err := enc.WriteByte(0x00 | flags); err != nil {
				return BadEncodingError
			}
			return enc.WriteByte(byte(value.nid))
		case value.nid <= 65535 && ns <= 255:
			if err := enc.WriteByte(0x01 | flags); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteByte(byte(ns)); err != nil {
				return BadEncodingError
			}
			return enc.WriteUInt16(uint16(value.nid))
		default:
			if err := enc.WriteByte(0x02 | flags); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteUInt16(ns); err != nil {
				return BadEncodingError
			}
			return enc.WriteUInt32(value.nid)
		}
	case IDTypeString:
		if err := enc.WriteByte(0x03 | flags); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(ns); err != nil {
			return BadEncodingError
		}
		return enc.WriteString(value.sid)
	case IDTypeGUID:
		if err := enc.WriteByte(0x04 | flags); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(ns); err != nil {
			return BadEncodingError
		}
		return enc.WriteGUID(value.gid)
	case IDTypeOpaque:
		if err := enc.WriteByte(0x05 | flags); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(ns); err != nil {
			return BadEncodingError
		}
		return enc.WriteByteString(value.bid)
	}
	return BadEncodingError
}

// WriteExpandedNodeID writes an ExpandedNodeID
func (enc *BinaryEncoder) WriteExpandedNodeID(value ExpandedNodeID) error {
	var b byte
	id := value.nodeID
	if len(value.namespaceURI) > 0 {
		b |= 0x80
		id.namespaceIndex = 0
	}
	if value.serverIndex > 0 {
		b |= 0x40
	}
	if err := enc.writeNodeID(id, b); err != nil {
		return BadEncodingError
	}
	if (b & 0x80) != 0 {
		if err := enc.WriteString(value.namespaceURI); err != nil {
			return BadEncodingError
		}
	}
	if (b & 0x40) != 0 {
		if err := enc.WriteUInt32(value.serverIndex); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteStatusCode writes a StatusCode
func (enc *BinaryEncoder) WriteStatusCode(value StatusCode) error {
	return enc.WriteUInt32(uint32(value))
}

// WriteQualifiedName writes a QualifiedName
func (enc *BinaryEncoder) WriteQualifiedName(value QualifiedName) error {
	if err := enc.WriteUInt16(value.NamespaceIndex); err != nil {
		return BadEncodingError
	}
	return enc.WriteString(value.Name)
}

// WriteLocalizedText writes a LocalizedText
func (enc *BinaryEncoder) WriteLocalizedText(value LocalizedText) error {
	var b byte
	if value.Locale != "" {
		b |= 1
	}
	if value.Text != "" {
		b |= 2
	}
	if err := enc.WriteByte(b); err != nil {
		return BadEncodingError
	}
	if (b & 1) != 0 {
		if err := enc.WriteString(value.Locale); err != nil {
			return BadEncodingError
		}
	}
	if (b & 2) != 0 {
		if err := enc.WriteString(value.Text); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteVariant writes a Variant. Scalars and one-dimensional arrays are supported.
func (enc *BinaryEncoder) WriteVariant(value Variant) error {
	if value.IsNil() {
		return enc.WriteByte(0)
	}
	b := byte(value.Type())
	switch value.ArrayType() {
	case ArrayTypeSingleValue:
		if err := enc.WriteByte(b); err != nil {
			return BadEncodingError
		}
		return enc.Encode(value.value)
	case ArrayTypeArray:
		if err := enc.WriteByte(b | 0x80); err != nil {
			return BadEncodingError
		}
		rv := reflect.ValueOf(value.value)
		if err := enc.WriteInt32(int32(rv.Len())); err != nil {
			return BadEncodingError
		}
		for i := 0; i < rv.Len(); i++ {
			if err := enc.Encode(rv.Index(i).Interface()); err != nil {
				return BadEncodingError
			}
		}
		return nil
	}
	return BadEncodingError
}
