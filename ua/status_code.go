// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import "fmt"

// StatusCode is the result of a service or operation.
type StatusCode uint32

// StatusCodes used by the address space and its codecs.
const (
	Good                      StatusCode = 0x00000000
	BadEncodingError          StatusCode = 0x80060000
	BadDecodingError          StatusCode = 0x80070000
	BadNodeIDInvalid          StatusCode = 0x80330000
	BadNodeIDUnknown          StatusCode = 0x80340000
	BadReferenceTypeIDInvalid StatusCode = 0x804C0000
	BadNodeIDExists           StatusCode = 0x805E0000
	BadDataUnavailable        StatusCode = 0x80B10000
)

var statusCodeNames = map[StatusCode]string{
	Good:                      "Good",
	BadEncodingError:          "BadEncodingError",
	BadDecodingError:          "BadDecodingError",
	BadNodeIDInvalid:          "BadNodeIdInvalid",
	BadNodeIDUnknown:          "BadNodeIdUnknown",
	BadReferenceTypeIDInvalid: "BadReferenceTypeIdInvalid",
	BadNodeIDExists:           "BadNodeIdExists",
	BadDataUnavailable:        "BadDataUnavailable",
}

// Error implements the error interface.
func (c StatusCode) Error() string {
	if name, ok := statusCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("StatusCode(0x%08X)", uint32(c))
}

// IsGood returns true if the StatusCode is good.
func (c StatusCode) IsGood() bool {
	return (uint32(c) & SeverityMask) == SeverityGood
}

// IsBad returns true if the StatusCode is bad.
func (c StatusCode) IsBad() bool {
	return (uint32(c) & SeverityMask) == SeverityBad
}

// IsUncertain returns true if the StatusCode is uncertain.
func (c StatusCode) IsUncertain() bool {
	return (uint32(c) & SeverityMask) == SeverityUncertain
}

// Severity bits of a StatusCode.
const (
	SeverityMask      uint32 = 0xC0000000
	SeverityGood      uint32 = 0x00000000
	SeverityUncertain uint32 = 0x40000000
	SeverityBad       uint32 = 0x80000000
)
