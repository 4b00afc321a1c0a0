// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import "fmt"

// NodeClass enumerates the classes of Node.
type NodeClass int32

// NodeClasses
const (
	NodeClassUnspecified   NodeClass = 0
	NodeClassObject        NodeClass = 1
	NodeClassVariable      NodeClass = 2
	NodeClassMethod        NodeClass = 4
	NodeClassObjectType    NodeClass = 8
	NodeClassVariableType  NodeClass = 16
	NodeClassReferenceType NodeClass = 32
	NodeClassDataType      NodeClass = 64
	NodeClassView          NodeClass = 128
)

// String returns the name of the NodeClass.
func (c NodeClass) String() string {
	switch c {
	case NodeClassUnspecified:
		return "Unspecified"
	case NodeClassObject:
		return "Object"
	case NodeClassVariable:
		return "Variable"
	case NodeClassMethod:
		return "Method"
	case NodeClassObjectType:
		return "ObjectType"
	case NodeClassVariableType:
		return "VariableType"
	case NodeClassReferenceType:
		return "ReferenceType"
	case NodeClassDataType:
		return "DataType"
	case NodeClassView:
		return "View"
	}
	return fmt.Sprintf("NodeClass(%d)", int32(c))
}

// HasValue returns true for the classes that carry a Value attribute.
func (c NodeClass) HasValue() bool {
	return c == NodeClassVariable || c == NodeClassVariableType
}
