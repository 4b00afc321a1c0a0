// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua_test

import (
	"testing"
	"time"

	"github.com/awcullen/uaspace/ua"
	"gotest.tools/assert"
)

func TestNewVariant(t *testing.T) {
	cases := []struct {
		in        interface{}
		typ       ua.BuiltInTypeID
		arrayType ua.ArrayType
		len       int
	}{
		{nil, ua.BuiltInTypeIDNull, ua.ArrayTypeSingleValue, 0},
		{int64(-1000), ua.BuiltInTypeIDInt64, ua.ArrayTypeSingleValue, 1},
		{uint32(1000), ua.BuiltInTypeIDUInt32, ua.ArrayTypeSingleValue, 1},
		{2.0, ua.BuiltInTypeIDDouble, ua.ArrayTypeSingleValue, 1},
		{"String:INGOPCS", ua.BuiltInTypeIDString, ua.ArrayTypeSingleValue, 1},
		{ua.ByteString("ByteString:INGOPCS"), ua.BuiltInTypeIDByteString, ua.ArrayTypeSingleValue, 1},
		{ua.XMLElement("<x/>"), ua.BuiltInTypeIDXMLElement, ua.ArrayTypeSingleValue, 1},
		{[]int32{1, 2, 3}, ua.BuiltInTypeIDInt32, ua.ArrayTypeArray, 3},
		{[]string{}, ua.BuiltInTypeIDString, ua.ArrayTypeArray, 0},
	}
	for _, c := range cases {
		v, err := ua.NewVariant(c.in)
		assert.NilError(t, err)
		assert.Equal(t, v.Type(), c.typ)
		assert.Equal(t, v.ArrayType(), c.arrayType)
		assert.Equal(t, v.Len(), c.len)
	}
}

func TestNewArrayVariant(t *testing.T) {
	v, err := ua.NewArrayVariant(ua.BuiltInTypeIDInt32, []interface{}{int32(1), int32(2)})
	assert.NilError(t, err)
	assert.Assert(t, v.Equal(ua.MustVariant([]int32{1, 2})))

	_, err = ua.NewArrayVariant(ua.BuiltInTypeIDInt32, []interface{}{int64(1)})
	assert.ErrorContains(t, err, "array element 0")
	_, err = ua.NewArrayVariant(ua.BuiltInTypeIDVariant, nil)
	assert.ErrorContains(t, err, "unsupported array element type")
}

func TestNewVariantUnsupported(t *testing.T) {
	_, err := ua.NewVariant(struct{}{})
	assert.ErrorContains(t, err, "unsupported")
}

func TestVariantEqual(t *testing.T) {
	assert.Assert(t, ua.MustVariant(int64(1)).Equal(ua.MustVariant(int64(1))))
	assert.Assert(t, !ua.MustVariant(int64(1)).Equal(ua.MustVariant(int32(1))))
	assert.Assert(t, ua.MustVariant([]float64{1, 2}).Equal(ua.MustVariant([]float64{1, 2})))
	assert.Assert(t, !ua.MustVariant([]float64{1, 2}).Equal(ua.MustVariant(float64(1))))
	assert.Assert(t, ua.NilVariant.Equal(ua.MustVariant(nil)))
}

func TestVariantStrings(t *testing.T) {
	assert.DeepEqual(t, ua.MustVariant(int64(-1000)).Strings(), []string{"-1000"})
	assert.DeepEqual(t, ua.MustVariant(float32(2.5)).Strings(), []string{"2.5"})
	assert.DeepEqual(t, ua.MustVariant([]bool{true, false}).Strings(), []string{"true", "false"})
	assert.Assert(t, ua.NilVariant.Strings() == nil)
	assert.Equal(t, ua.MustVariant(int64(-1000)).String(), "Int64:-1000")
	assert.Equal(t, ua.MustVariant(ua.ByteString("abcd")).String(), "ByteString:YWJjZA==")
	assert.Equal(t, ua.NilVariant.String(), "Null")
}

func TestParseScalar(t *testing.T) {
	cases := []struct {
		typ  ua.BuiltInTypeID
		in   string
		want interface{}
	}{
		{ua.BuiltInTypeIDBoolean, "true", true},
		{ua.BuiltInTypeIDSByte, "-8", int8(-8)},
		{ua.BuiltInTypeIDUInt16, " 65535 ", uint16(65535)},
		{ua.BuiltInTypeIDInt64, "-1000", int64(-1000)},
		{ua.BuiltInTypeIDFloat, "2.5", float32(2.5)},
		{ua.BuiltInTypeIDDouble, "2", float64(2)},
		{ua.BuiltInTypeIDString, " padded ", " padded "},
		{ua.BuiltInTypeIDDateTime, "2021-01-02T03:04:05Z", time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)},
		{ua.BuiltInTypeIDByteString, "YWJjZA==", ua.ByteString("abcd")},
		{ua.BuiltInTypeIDNodeID, "ns=1;i=5", ua.NewNodeIDNumeric(1, 5)},
		{ua.BuiltInTypeIDStatusCode, "0x80B10000", ua.BadDataUnavailable},
		{ua.BuiltInTypeIDQualifiedName, "1:Name", ua.NewQualifiedName(1, "Name")},
	}
	for _, c := range cases {
		got, err := ua.ParseScalar(c.typ, c.in)
		assert.NilError(t, err)
		if want, ok := c.want.(time.Time); ok {
			assert.Assert(t, got.(time.Time).Equal(want))
			continue
		}
		assert.Equal(t, got, c.want)
		assert.Equal(t, ua.FormatScalar(got), ua.FormatScalar(c.want))
	}
}

func TestParseScalarErrors(t *testing.T) {
	_, err := ua.ParseScalar(ua.BuiltInTypeIDByte, "256")
	assert.Assert(t, err != nil)
	_, err = ua.ParseScalar(ua.BuiltInTypeIDLocalizedText, "x")
	assert.ErrorContains(t, err, "cannot parse")
}

func TestParseBuiltInTypeID(t *testing.T) {
	id, err := ua.ParseBuiltInTypeID("xmlelement")
	assert.NilError(t, err)
	assert.Equal(t, id, ua.BuiltInTypeIDXMLElement)
	assert.Equal(t, ua.BuiltInTypeIDGUID.String(), "Guid")
	_, err = ua.ParseBuiltInTypeID("Int128")
	assert.ErrorContains(t, err, "unknown built-in type")
}

func TestStatusCode(t *testing.T) {
	assert.Assert(t, ua.Good.IsGood())
	assert.Assert(t, ua.BadDataUnavailable.IsBad())
	assert.Equal(t, ua.BadDataUnavailable.Error(), "BadDataUnavailable")
	assert.Equal(t, ua.StatusCode(0x40000000).Error(), "StatusCode(0x40000000)")
	assert.Assert(t, ua.StatusCode(0x40000000).IsUncertain())
}

func TestBuiltInTypeIDForDataType(t *testing.T) {
	id, ok := ua.BuiltInTypeIDForDataType(ua.DataTypeIDDouble)
	assert.Assert(t, ok)
	assert.Equal(t, id, ua.BuiltInTypeIDDouble)
	id, ok = ua.BuiltInTypeIDForDataType(ua.NewNodeIDNumeric(0, 290))
	assert.Assert(t, ok)
	assert.Equal(t, id, ua.BuiltInTypeIDDouble)
	_, ok = ua.BuiltInTypeIDForDataType(ua.NewNodeIDNumeric(1, 11))
	assert.Assert(t, !ok)
}
