// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	uuid "github.com/google/uuid"
)

var (
	validXML = regexp.MustCompile(`[^\x09\x0A\x0D\x20-\x{D7FF}\x{E000}-\x{FFFD}\x{10000}-\x{10FFFF}]+`)
)

// XMLElement is stored as string
type XMLElement string

// String returns element as a string.
func (e XMLElement) String() string {
	return validXML.ReplaceAllString(string(e), "")
}

// ByteString is stored as a string.
type ByteString string

// NilByteString is the nil value.
var NilByteString = ByteString("")

// String returns ByteString as a base64-encoded string.
func (b ByteString) String() string {
	return base64.StdEncoding.EncodeToString([]byte(b))
}

// BuiltInTypeID identifies the kind of value stored in a Variant.
type BuiltInTypeID byte

// BuiltInTypeIDs
const (
	BuiltInTypeIDNull BuiltInTypeID = iota
	BuiltInTypeIDBoolean
	BuiltInTypeIDSByte
	BuiltInTypeIDByte
	BuiltInTypeIDInt16
	BuiltInTypeIDUInt16
	BuiltInTypeIDInt32
	BuiltInTypeIDUInt32
	BuiltInTypeIDInt64
	BuiltInTypeIDUInt64
	BuiltInTypeIDFloat
	BuiltInTypeIDDouble
	BuiltInTypeIDString
	BuiltInTypeIDDateTime
	BuiltInTypeIDGUID
	BuiltInTypeIDByteString
	BuiltInTypeIDXMLElement
	BuiltInTypeIDNodeID
	BuiltInTypeIDExpandedNodeID
	BuiltInTypeIDStatusCode
	BuiltInTypeIDQualifiedName
	BuiltInTypeIDLocalizedText
	BuiltInTypeIDExtensionObject
	BuiltInTypeIDDataValue
	BuiltInTypeIDVariant
	BuiltInTypeIDDiagnosticInfo
)

var builtInTypeNames = [...]string{
	"Null",
	"Boolean",
	"SByte",
	"Byte",
	"Int16",
	"UInt16",
	"Int32",
	"UInt32",
	"Int64",
	"UInt64",
	"Float",
	"Double",
	"String",
	"DateTime",
	"Guid",
	"ByteString",
	"XmlElement",
	"NodeId",
	"ExpandedNodeId",
	"StatusCode",
	"QualifiedName",
	"LocalizedText",
	"ExtensionObject",
	"DataValue",
	"Variant",
	"DiagnosticInfo",
}

// String returns the OPC UA name of the type, e.g. "XmlElement".
func (t BuiltInTypeID) String() string {
	if int(t) < len(builtInTypeNames) {
		return builtInTypeNames[t]
	}
	return fmt.Sprintf("BuiltInTypeID(%d)", byte(t))
}

// ParseBuiltInTypeID returns the BuiltInTypeID with the given name. Matching ignores case.
func ParseBuiltInTypeID(s string) (BuiltInTypeID, error) {
	for i, name := range builtInTypeNames {
		if strings.EqualFold(name, s) {
			return BuiltInTypeID(i), nil
		}
	}
	return BuiltInTypeIDNull, fmt.Errorf("unknown built-in type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t BuiltInTypeID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *BuiltInTypeID) UnmarshalText(text []byte) error {
	v, err := ParseBuiltInTypeID(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ArrayType tells whether a Variant holds a single value, a one-dimensional array or a matrix.
type ArrayType byte

// ArrayTypes
const (
	ArrayTypeSingleValue ArrayType = iota
	ArrayTypeArray
	ArrayTypeMatrix
)

// String returns the name of the ArrayType.
func (a ArrayType) String() string {
	switch a {
	case ArrayTypeSingleValue:
		return "SingleValue"
	case ArrayTypeArray:
		return "Array"
	case ArrayTypeMatrix:
		return "Matrix"
	}
	return fmt.Sprintf("ArrayType(%d)", byte(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a ArrayType) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ArrayType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "singlevalue", "scalar", "":
		*a = ArrayTypeSingleValue
	case "array":
		*a = ArrayTypeArray
	case "matrix":
		*a = ArrayTypeMatrix
	default:
		return fmt.Errorf("unknown array type %q", string(text))
	}
	return nil
}

// Variant wraps a value.
type Variant struct {
	value     interface{}
	typeID    BuiltInTypeID
	arrayType ArrayType
}

// NilVariant is the nil value.
var NilVariant = Variant{}

// NewVariant returns a new Variant, inferring the built-in type from the Go type of value.
// Slices become one-dimensional arrays. Unsupported types return an error.
func NewVariant(value interface{}) (Variant, error) {
	if value == nil {
		return NilVariant, nil
	}
	switch value.(type) {
	case bool:
		return Variant{value, BuiltInTypeIDBoolean, ArrayTypeSingleValue}, nil
	case int8:
		return Variant{value, BuiltInTypeIDSByte, ArrayTypeSingleValue}, nil
	case uint8:
		return Variant{value, BuiltInTypeIDByte, ArrayTypeSingleValue}, nil
	case int16:
		return Variant{value, BuiltInTypeIDInt16, ArrayTypeSingleValue}, nil
	case uint16:
		return Variant{value, BuiltInTypeIDUInt16, ArrayTypeSingleValue}, nil
	case int32:
		return Variant{value, BuiltInTypeIDInt32, ArrayTypeSingleValue}, nil
	case uint32:
		return Variant{value, BuiltInTypeIDUInt32, ArrayTypeSingleValue}, nil
	case int64:
		return Variant{value, BuiltInTypeIDInt64, ArrayTypeSingleValue}, nil
	case uint64:
		return Variant{value, BuiltInTypeIDUInt64, ArrayTypeSingleValue}, nil
	case float32:
		return Variant{value, BuiltInTypeIDFloat, ArrayTypeSingleValue}, nil
	case float64:
		return Variant{value, BuiltInTypeIDDouble, ArrayTypeSingleValue}, nil
	case string:
		return Variant{value, BuiltInTypeIDString, ArrayTypeSingleValue}, nil
	case time.Time:
		return Variant{value, BuiltInTypeIDDateTime, ArrayTypeSingleValue}, nil
	case uuid.UUID:
		return Variant{value, BuiltInTypeIDGUID, ArrayTypeSingleValue}, nil
	case ByteString:
		return Variant{value, BuiltInTypeIDByteString, ArrayTypeSingleValue}, nil
	case XMLElement:
		return Variant{value, BuiltInTypeIDXMLElement, ArrayTypeSingleValue}, nil
	case NodeID:
		return Variant{value, BuiltInTypeIDNodeID, ArrayTypeSingleValue}, nil
	case ExpandedNodeID:
		return Variant{value, BuiltInTypeIDExpandedNodeID, ArrayTypeSingleValue}, nil
	case StatusCode:
		return Variant{value, BuiltInTypeIDStatusCode, ArrayTypeSingleValue}, nil
	case QualifiedName:
		return Variant{value, BuiltInTypeIDQualifiedName, ArrayTypeSingleValue}, nil
	case LocalizedText:
		return Variant{value, BuiltInTypeIDLocalizedText, ArrayTypeSingleValue}, nil
	case []bool:
		return Variant{value, BuiltInTypeIDBoolean, ArrayTypeArray}, nil
	case []int8:
		return Variant{value, BuiltInTypeIDSByte, ArrayTypeArray}, nil
	case []uint8:
		return Variant{value, BuiltInTypeIDByte, ArrayTypeArray}, nil
	case []int16:
		return Variant{value, BuiltInTypeIDInt16, ArrayTypeArray}, nil
	case []uint16:
		return Variant{value, BuiltInTypeIDUInt16, ArrayTypeArray}, nil
	case []int32:
		return Variant{value, BuiltInTypeIDInt32, ArrayTypeArray}, nil
	case []uint32:
		return Variant{value, BuiltInTypeIDUInt32, ArrayTypeArray}, nil
	case []int64:
		return Variant{value, BuiltInTypeIDInt64, ArrayTypeArray}, nil
	case []uint64:
		return Variant{value, BuiltInTypeIDUInt64, ArrayTypeArray}, nil
	case []float32:
		return Variant{value, BuiltInTypeIDFloat, ArrayTypeArray}, nil
	case []float64:
		return Variant{value, BuiltInTypeIDDouble, ArrayTypeArray}, nil
	case []string:
		return Variant{value, BuiltInTypeIDString, ArrayTypeArray}, nil
	case []time.Time:
		return Variant{value, BuiltInTypeIDDateTime, ArrayTypeArray}, nil
	case []uuid.UUID:
		return Variant{value, BuiltInTypeIDGUID, ArrayTypeArray}, nil
	case []ByteString:
		return Variant{value, BuiltInTypeIDByteString, ArrayTypeArray}, nil
	case []XMLElement:
		return Variant{value, BuiltInTypeIDXMLElement, ArrayTypeArray}, nil
	case []NodeID:
		return Variant{value, BuiltInTypeIDNodeID, ArrayTypeArray}, nil
	case []ExpandedNodeID:
		return Variant{value, BuiltInTypeIDExpandedNodeID, ArrayTypeArray}, nil
	case []StatusCode:
		return Variant{value, BuiltInTypeIDStatusCode, ArrayTypeArray}, nil
	case []QualifiedName:
		return Variant{value, BuiltInTypeIDQualifiedName, ArrayTypeArray}, nil
	case []LocalizedText:
		return Variant{value, BuiltInTypeIDLocalizedText, ArrayTypeArray}, nil
	}
	return NilVariant, fmt.Errorf("unsupported variant value of type %T", value)
}

// NewArrayVariant returns a one-dimensional array Variant of the given built-in type.
// Each element must hold the Go type of that built-in type.
func NewArrayVariant(t BuiltInTypeID, elems []interface{}) (Variant, error) {
	typ, ok := scalarTypes[t]
	if !ok {
		return NilVariant, fmt.Errorf("unsupported array element type %s", t)
	}
	rv := reflect.MakeSlice(reflect.SliceOf(typ), len(elems), len(elems))
	for i, e := range elems {
		ev := reflect.ValueOf(e)
		if !ev.IsValid() || ev.Type() != typ {
			return NilVariant, fmt.Errorf("array element %d is %T, not %s", i, e, t)
		}
		rv.Index(i).Set(ev)
	}
	return Variant{rv.Interface(), t, ArrayTypeArray}, nil
}

// MustVariant is like NewVariant but panics if the type is unsupported.
func MustVariant(value interface{}) Variant {
	v, err := NewVariant(value)
	if err != nil {
		panic(err)
	}
	return v
}

// Value returns the value.
func (v Variant) Value() interface{} {
	return v.value
}

// Type returns the BuiltInTypeID.
func (v Variant) Type() BuiltInTypeID {
	return v.typeID
}

// ArrayType returns whether the value is a scalar or an array.
func (v Variant) ArrayType() ArrayType {
	return v.arrayType
}

// Len returns the number of elements of an array, or 1 for a non-null scalar.
func (v Variant) Len() int {
	if v.IsNil() {
		return 0
	}
	if v.arrayType == ArrayTypeSingleValue {
		return 1
	}
	return reflect.ValueOf(v.value).Len()
}

// IsNil checks if Variant is nil
func (v Variant) IsNil() bool {
	return v.typeID == BuiltInTypeIDNull
}

// Equal checks if the values are equal
func (v Variant) Equal(b Variant) bool {
	return v.typeID == b.typeID && v.arrayType == b.arrayType && reflect.DeepEqual(v.value, b.value)
}

// Strings returns the canonical text form of each element; a scalar yields one element and null yields none.
func (v Variant) Strings() []string {
	if v.IsNil() {
		return nil
	}
	if v.arrayType == ArrayTypeSingleValue {
		return []string{FormatScalar(v.value)}
	}
	rv := reflect.ValueOf(v.value)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = FormatScalar(rv.Index(i).Interface())
	}
	return out
}

// String returns a string representation, e.g. "Int64:-1000" or "Boolean[2]:[true false]".
func (v Variant) String() string {
	if v.IsNil() {
		return "Null"
	}
	if v.arrayType == ArrayTypeSingleValue {
		return fmt.Sprintf("%s:%s", v.typeID, FormatScalar(v.value))
	}
	return fmt.Sprintf("%s[%d]:%v", v.typeID, v.Len(), v.Strings())
}

// FormatScalar returns the canonical text form of a single built-in value.
func FormatScalar(value interface{}) string {
	switch val := value.(type) {
	case bool:
		return strconv.FormatBool(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return val
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case uuid.UUID:
		return val.String()
	case ByteString:
		return val.String()
	case XMLElement:
		return string(val)
	case NodeID:
		return val.String()
	case ExpandedNodeID:
		return val.String()
	case StatusCode:
		return fmt.Sprintf("0x%08X", uint32(val))
	case QualifiedName:
		return val.String()
	case LocalizedText:
		return val.String()
	}
	return fmt.Sprintf("%v", value)
}

// ParseScalar converts the text form of a value into the Go type of the given built-in type.
// Numbers accept surrounding whitespace; ByteString is base64.
func ParseScalar(t BuiltInTypeID, s string) (interface{}, error) {
	trimmed := strings.TrimSpace(s)
	switch t {
	case BuiltInTypeIDBoolean:
		return strconv.ParseBool(trimmed)
	case BuiltInTypeIDSByte:
		v, err := strconv.ParseInt(trimmed, 10, 8)
		return int8(v), err
	case BuiltInTypeIDByte:
		v, err := strconv.ParseUint(trimmed, 10, 8)
		return uint8(v), err
	case BuiltInTypeIDInt16:
		v, err := strconv.ParseInt(trimmed, 10, 16)
		return int16(v), err
	case BuiltInTypeIDUInt16:
		v, err := strconv.ParseUint(trimmed, 10, 16)
		return uint16(v), err
	case BuiltInTypeIDInt32:
		v, err := strconv.ParseInt(trimmed, 10, 32)
		return int32(v), err
	case BuiltInTypeIDUInt32:
		v, err := strconv.ParseUint(trimmed, 10, 32)
		return uint32(v), err
	case BuiltInTypeIDInt64:
		return strconv.ParseInt(trimmed, 10, 64)
	case BuiltInTypeIDUInt64:
		return strconv.ParseUint(trimmed, 10, 64)
	case BuiltInTypeIDFloat:
		v, err := strconv.ParseFloat(trimmed, 32)
		return float32(v), err
	case BuiltInTypeIDDouble:
		return strconv.ParseFloat(trimmed, 64)
	case BuiltInTypeIDString:
		return s, nil
	case BuiltInTypeIDDateTime:
		return time.Parse(time.RFC3339Nano, trimmed)
	case BuiltInTypeIDGUID:
		return uuid.Parse(trimmed)
	case BuiltInTypeIDByteString:
		b, err := base64.StdEncoding.DecodeString(trimmed)
		return ByteString(b), err
	case BuiltInTypeIDXMLElement:
		return XMLElement(s), nil
	case BuiltInTypeIDNodeID:
		return ParseNodeIDStrict(trimmed)
	case BuiltInTypeIDExpandedNodeID:
		return ParseExpandedNodeID(trimmed), nil
	case BuiltInTypeIDStatusCode:
		v, err := strconv.ParseUint(trimmed, 0, 32)
		return StatusCode(v), err
	case BuiltInTypeIDQualifiedName:
		return ParseQualifiedName(trimmed), nil
	}
	return nil, fmt.Errorf("cannot parse a %s from text", t)
}
