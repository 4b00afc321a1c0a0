// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

// NodeIDs of the standard nodes referenced by address spaces built from nodesets.
var (
	ReferenceTypeIDReferences             = NewNodeIDNumeric(0, 31)
	ReferenceTypeIDNonHierarchical        = NewNodeIDNumeric(0, 32)
	ReferenceTypeIDHierarchicalReferences = NewNodeIDNumeric(0, 33)
	ReferenceTypeIDHasChild               = NewNodeIDNumeric(0, 34)
	ReferenceTypeIDOrganizes              = NewNodeIDNumeric(0, 35)
	ReferenceTypeIDHasEventSource         = NewNodeIDNumeric(0, 36)
	ReferenceTypeIDHasModellingRule       = NewNodeIDNumeric(0, 37)
	ReferenceTypeIDHasEncoding            = NewNodeIDNumeric(0, 38)
	ReferenceTypeIDHasDescription         = NewNodeIDNumeric(0, 39)
	ReferenceTypeIDHasTypeDefinition      = NewNodeIDNumeric(0, 40)
	ReferenceTypeIDGeneratesEvent         = NewNodeIDNumeric(0, 41)
	ReferenceTypeIDAggregates             = NewNodeIDNumeric(0, 44)
	ReferenceTypeIDHasSubtype             = NewNodeIDNumeric(0, 45)
	ReferenceTypeIDHasProperty            = NewNodeIDNumeric(0, 46)
	ReferenceTypeIDHasComponent           = NewNodeIDNumeric(0, 47)
	ReferenceTypeIDHasNotifier            = NewNodeIDNumeric(0, 48)
	ReferenceTypeIDHasOrderedComponent    = NewNodeIDNumeric(0, 49)

	DataTypeIDBoolean        = NewNodeIDNumeric(0, 1)
	DataTypeIDSByte          = NewNodeIDNumeric(0, 2)
	DataTypeIDByte           = NewNodeIDNumeric(0, 3)
	DataTypeIDInt16          = NewNodeIDNumeric(0, 4)
	DataTypeIDUInt16         = NewNodeIDNumeric(0, 5)
	DataTypeIDInt32          = NewNodeIDNumeric(0, 6)
	DataTypeIDUInt32         = NewNodeIDNumeric(0, 7)
	DataTypeIDInt64          = NewNodeIDNumeric(0, 8)
	DataTypeIDUInt64         = NewNodeIDNumeric(0, 9)
	DataTypeIDFloat          = NewNodeIDNumeric(0, 10)
	DataTypeIDDouble         = NewNodeIDNumeric(0, 11)
	DataTypeIDString         = NewNodeIDNumeric(0, 12)
	DataTypeIDDateTime       = NewNodeIDNumeric(0, 13)
	DataTypeIDGUID           = NewNodeIDNumeric(0, 14)
	DataTypeIDByteString     = NewNodeIDNumeric(0, 15)
	DataTypeIDXMLElement     = NewNodeIDNumeric(0, 16)
	DataTypeIDNodeID         = NewNodeIDNumeric(0, 17)
	DataTypeIDExpandedNodeID = NewNodeIDNumeric(0, 18)
	DataTypeIDStatusCode     = NewNodeIDNumeric(0, 19)
	DataTypeIDQualifiedName  = NewNodeIDNumeric(0, 20)
	DataTypeIDLocalizedText  = NewNodeIDNumeric(0, 21)
	DataTypeIDBaseDataType   = NewNodeIDNumeric(0, 24)

	ObjectTypeIDBaseObjectType         = NewNodeIDNumeric(0, 58)
	ObjectTypeIDFolderType             = NewNodeIDNumeric(0, 61)
	VariableTypeIDBaseVariableType     = NewNodeIDNumeric(0, 62)
	VariableTypeIDBaseDataVariableType = NewNodeIDNumeric(0, 63)
	VariableTypeIDPropertyType         = NewNodeIDNumeric(0, 68)

	ObjectIDRootFolder    = NewNodeIDNumeric(0, 84)
	ObjectIDObjectsFolder = NewNodeIDNumeric(0, 85)
	ObjectIDTypesFolder   = NewNodeIDNumeric(0, 86)
	ObjectIDViewsFolder   = NewNodeIDNumeric(0, 87)
	ObjectIDServer        = NewNodeIDNumeric(0, 2253)
)

// HierarchicalReferenceTypes are followed when walking the address space from a root.
var HierarchicalReferenceTypes = []NodeID{
	ReferenceTypeIDHierarchicalReferences,
	ReferenceTypeIDHasChild,
	ReferenceTypeIDOrganizes,
	ReferenceTypeIDHasEventSource,
	ReferenceTypeIDAggregates,
	ReferenceTypeIDHasSubtype,
	ReferenceTypeIDHasProperty,
	ReferenceTypeIDHasComponent,
	ReferenceTypeIDHasNotifier,
	ReferenceTypeIDHasOrderedComponent,
}

// WellKnownReferenceTypes lists the reference types of namespace 0 that need not be present as nodes.
var WellKnownReferenceTypes = append([]NodeID{
	ReferenceTypeIDReferences,
	ReferenceTypeIDNonHierarchical,
	ReferenceTypeIDHasModellingRule,
	ReferenceTypeIDHasEncoding,
	ReferenceTypeIDHasDescription,
	ReferenceTypeIDHasTypeDefinition,
	ReferenceTypeIDGeneratesEvent,
}, HierarchicalReferenceTypes...)

// BuiltInTypeIDForDataType returns the built-in type that stores values of the given
// namespace 0 DataType, and false for data types that are not built in.
func BuiltInTypeIDForDataType(dataType NodeID) (BuiltInTypeID, bool) {
	if dataType.NamespaceIndex() != 0 || dataType.IDType() != IDTypeNumeric {
		return BuiltInTypeIDNull, false
	}
	id := dataType.Identifier().(uint32)
	if id >= 1 && id <= 25 {
		return BuiltInTypeID(id), true
	}
	switch id {
	case 290: // Duration
		return BuiltInTypeIDDouble, true
	case 294: // UtcTime
		return BuiltInTypeIDDateTime, true
	case 295: // LocaleId
		return BuiltInTypeIDString, true
	}
	return BuiltInTypeIDNull, false
}
