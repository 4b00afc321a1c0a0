// Copyright 2021 Converter Systems LLC. All rights reserved.

// Package nodeset loads UANodeSet XML documents into a Description of the nodes
// of an address space, ready to be compiled by package addrspace.
package nodeset

import (
	"github.com/awcullen/uaspace/ua"
)

// NamespaceURI of the OPC UA namespace, always at index 0.
const NamespaceURI = "http://opcfoundation.org/UA/"

// Description is the list of nodes loaded from one or more nodesets, with the
// namespace table their indices refer to.
type Description struct {
	// NamespaceURIs is the namespace table. Index 0 is the OPC UA namespace.
	NamespaceURIs []string
	// Nodes in document order.
	Nodes []*Node
	// Warnings about values that could not be represented and were replaced by the null variant.
	Warnings []string
}

// NewDescription returns an empty Description with the OPC UA namespace.
func NewDescription() *Description {
	return &Description{NamespaceURIs: []string{NamespaceURI}}
}

// Node holds the attributes of one node of the address space.
type Node struct {
	NodeClass    ua.NodeClass
	NodeID       ua.NodeID
	BrowseName   ua.QualifiedName
	DisplayNames []ua.LocalizedText
	Descriptions []ua.LocalizedText
	References   []Reference

	// Variable and VariableType
	Value       ua.Variant
	DataType    ua.NodeID
	ValueRank   int32
	AccessLevel byte

	// Types
	IsAbstract  bool
	Symmetric   bool
	InverseName ua.LocalizedText

	EventNotifier   byte
	Executable      bool
	ContainsNoLoops bool
	ParentNodeID    ua.NodeID
}

// Reference is a reference from a node, as written in the nodeset.
type Reference struct {
	ReferenceTypeID ua.NodeID
	IsInverse       bool
	TargetID        ua.ExpandedNodeID
}

// NamespaceIndex returns the index of the uri in the namespace table, adding it if needed.
func (d *Description) NamespaceIndex(uri string) uint16 {
	for i, u := range d.NamespaceURIs {
		if u == uri {
			return uint16(i)
		}
	}
	d.NamespaceURIs = append(d.NamespaceURIs, uri)
	return uint16(len(d.NamespaceURIs) - 1)
}

// Find returns the node with the given id.
func (d *Description) Find(id ua.NodeID) (*Node, bool) {
	for _, n := range d.Nodes {
		if n.NodeID == id {
			return n, true
		}
	}
	return nil, false
}

// CountByClass returns the number of nodes of each class.
func (d *Description) CountByClass() map[ua.NodeClass]int {
	m := make(map[ua.NodeClass]int, 8)
	for _, n := range d.Nodes {
		m[n.NodeClass]++
	}
	return m
}
