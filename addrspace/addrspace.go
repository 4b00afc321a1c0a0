// Copyright 2021 Converter Systems LLC. All rights reserved.

// Package addrspace compiles a nodeset description into a static, read-only address space table.
//
// Nodes are addressed by a dense index pos in 1..N, sorted by node class. Variables and variable
// types own a slot in a separate value table 1..V. Display names, descriptions and references are
// held in flat tables, and every node owns a contiguous range [Begin, End] of each. Index 0 of every
// table is unused, so an empty range is encoded as End == Begin-1.
package addrspace

import (
	"github.com/awcullen/uaspace/nodeset"
	"github.com/awcullen/uaspace/ua"
	"github.com/rs/zerolog"
)

// Range is a 1-based, inclusive range of a flat table. An empty range has End == Begin-1.
type Range struct {
	Begin int
	End   int
}

// Len returns the number of entries in the range.
func (r Range) Len() int {
	return r.End - r.Begin + 1
}

// Reference is an entry of the reference table.
type Reference struct {
	Type      ua.NodeID
	Target    ua.ExpandedNodeID
	IsForward bool
}

type node struct {
	class        ua.NodeClass
	id           ua.NodeID
	browseName   ua.QualifiedName
	valueIndex   int
	references   Range
	displayNames Range
	descriptions Range
}

type value struct {
	variant     ua.Variant
	status      ua.StatusCode
	accessLevel byte
}

// AddressSpace is the compiled table. It is never mutated after Generate or ReadImage returns,
// so it may be read from many goroutines.
type AddressSpace struct {
	namespaceURIs []string
	nodes         []node
	values        []value
	references    []Reference
	displayNames  []ua.LocalizedText
	descriptions  []ua.LocalizedText
	index         map[ua.NodeID]int
	counts        map[ua.NodeClass]int
}

// newAddressSpace returns an empty table with the unused entry 0 of each flat table in place.
func newAddressSpace(namespaceURIs []string, capacity int) *AddressSpace {
	return &AddressSpace{
		namespaceURIs: namespaceURIs,
		nodes:         make([]node, 1, capacity+1),
		values:        []value{{variant: ua.NilVariant, status: ua.BadDataUnavailable}},
		references:    make([]Reference, 1),
		displayNames:  make([]ua.LocalizedText, 1),
		descriptions:  make([]ua.LocalizedText, 1),
		index:         make(map[ua.NodeID]int, capacity),
		counts:        make(map[ua.NodeClass]int),
	}
}

type options struct {
	strict bool
	logger zerolog.Logger
}

// Option configures Generate.
type Option func(*options)

// WithStrictReferences makes Generate fail on a reference with an unknown type or an unknown target.
// Targets in namespace 0 are assumed to be provided by the standard nodeset.
func WithStrictReferences() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NamespaceURIs returns the namespace table. Index 0 is the OPC UA namespace.
func (as *AddressSpace) NamespaceURIs() []string {
	return as.namespaceURIs
}

// Len returns the number of nodes, N.
func (as *AddressSpace) Len() int {
	return len(as.nodes) - 1
}

// Lookup returns the pos of the node with the given NodeId.
func (as *AddressSpace) Lookup(id ua.NodeID) (int, bool) {
	pos, ok := as.index[id]
	return pos, ok
}

// NbNodesTotal returns the number of nodes.
func (as *AddressSpace) NbNodesTotal() int { return as.Len() }

// NbVariables returns the number of variable nodes.
func (as *AddressSpace) NbVariables() int { return as.counts[ua.NodeClassVariable] }

// NbVariableTypes returns the number of variable type nodes.
func (as *AddressSpace) NbVariableTypes() int { return as.counts[ua.NodeClassVariableType] }

// NbObjects returns the number of object nodes.
func (as *AddressSpace) NbObjects() int { return as.counts[ua.NodeClassObject] }

// NbObjectTypes returns the number of object type nodes.
func (as *AddressSpace) NbObjectTypes() int { return as.counts[ua.NodeClassObjectType] }

// NbReferenceTypes returns the number of reference type nodes.
func (as *AddressSpace) NbReferenceTypes() int { return as.counts[ua.NodeClassReferenceType] }

// NbDataTypes returns the number of data type nodes.
func (as *AddressSpace) NbDataTypes() int { return as.counts[ua.NodeClassDataType] }

// NbMethods returns the number of method nodes.
func (as *AddressSpace) NbMethods() int { return as.counts[ua.NodeClassMethod] }

// NbViews returns the number of view nodes.
func (as *AddressSpace) NbViews() int { return as.counts[ua.NodeClassView] }

// NbValues returns the size of the value table, V.
func (as *AddressSpace) NbValues() int { return len(as.values) - 1 }

// NbReferencesTotal returns the size of the reference table.
func (as *AddressSpace) NbReferencesTotal() int { return len(as.references) - 1 }

// NbDisplayNamesTotal returns the size of the display name table.
func (as *AddressSpace) NbDisplayNamesTotal() int { return len(as.displayNames) - 1 }

// NbDescriptionsTotal returns the size of the description table.
func (as *AddressSpace) NbDescriptionsTotal() int { return len(as.descriptions) - 1 }

func (as *AddressSpace) node(pos int) (*node, bool) {
	if pos < 1 || pos >= len(as.nodes) {
		return nil, false
	}
	return &as.nodes[pos], true
}

// NodeID returns the NodeId of the node at pos.
func (as *AddressSpace) NodeID(pos int) (ua.NodeID, bool) {
	if n, ok := as.node(pos); ok {
		return n.id, true
	}
	return ua.NilNodeID, false
}

// NodeClass returns the node class of the node at pos.
func (as *AddressSpace) NodeClass(pos int) (ua.NodeClass, bool) {
	if n, ok := as.node(pos); ok {
		return n.class, true
	}
	return ua.NodeClassUnspecified, false
}

// BrowseName returns the browse name of the node at pos.
func (as *AddressSpace) BrowseName(pos int) (ua.QualifiedName, bool) {
	if n, ok := as.node(pos); ok {
		return n.browseName, true
	}
	return ua.NilQualifiedName, false
}

// ValueIndex returns the value index of the node at pos. Only variables and variable types have one.
func (as *AddressSpace) ValueIndex(pos int) (int, bool) {
	if n, ok := as.node(pos); ok && n.valueIndex > 0 {
		return n.valueIndex, true
	}
	return 0, false
}

// ReferenceRange returns the range of the reference table owned by the node at pos.
func (as *AddressSpace) ReferenceRange(pos int) (Range, bool) {
	if n, ok := as.node(pos); ok {
		return n.references, true
	}
	return Range{}, false
}

// DisplayNameRange returns the range of the display name table owned by the node at pos.
func (as *AddressSpace) DisplayNameRange(pos int) (Range, bool) {
	if n, ok := as.node(pos); ok {
		return n.displayNames, true
	}
	return Range{}, false
}

// DescriptionRange returns the range of the description table owned by the node at pos.
func (as *AddressSpace) DescriptionRange(pos int) (Range, bool) {
	if n, ok := as.node(pos); ok {
		return n.descriptions, true
	}
	return Range{}, false
}

// References returns a copy of the references of the node at pos, in nodeset order.
func (as *AddressSpace) References(pos int) ([]Reference, bool) {
	n, ok := as.node(pos)
	if !ok {
		return nil, false
	}
	return append([]Reference{}, as.references[n.references.Begin:n.references.End+1]...), true
}

// DisplayNames returns a copy of the display names of the node at pos.
func (as *AddressSpace) DisplayNames(pos int) ([]ua.LocalizedText, bool) {
	n, ok := as.node(pos)
	if !ok {
		return nil, false
	}
	return append([]ua.LocalizedText{}, as.displayNames[n.displayNames.Begin:n.displayNames.End+1]...), true
}

// Descriptions returns a copy of the descriptions of the node at pos.
func (as *AddressSpace) Descriptions(pos int) ([]ua.LocalizedText, bool) {
	n, ok := as.node(pos)
	if !ok {
		return nil, false
	}
	return append([]ua.LocalizedText{}, as.descriptions[n.descriptions.Begin:n.descriptions.End+1]...), true
}

// ReferenceAt returns entry i of the reference table.
func (as *AddressSpace) ReferenceAt(i int) (Reference, bool) {
	if i < 1 || i >= len(as.references) {
		return Reference{}, false
	}
	return as.references[i], true
}

// DisplayNameAt returns entry i of the display name table.
func (as *AddressSpace) DisplayNameAt(i int) (ua.LocalizedText, bool) {
	if i < 1 || i >= len(as.displayNames) {
		return ua.LocalizedText{}, false
	}
	return as.displayNames[i], true
}

// DescriptionAt returns entry i of the description table.
func (as *AddressSpace) DescriptionAt(i int) (ua.LocalizedText, bool) {
	if i < 1 || i >= len(as.descriptions) {
		return ua.LocalizedText{}, false
	}
	return as.descriptions[i], true
}

func (as *AddressSpace) value(vi int) (*value, bool) {
	if vi < 1 || vi >= len(as.values) {
		return nil, false
	}
	return &as.values[vi], true
}

// Value returns the value at value index vi.
func (as *AddressSpace) Value(vi int) (ua.Variant, bool) {
	if v, ok := as.value(vi); ok {
		return v.variant, true
	}
	return ua.NilVariant, false
}

// ValueStatus returns the status of the value at value index vi.
func (as *AddressSpace) ValueStatus(vi int) (ua.StatusCode, bool) {
	if v, ok := as.value(vi); ok {
		return v.status, true
	}
	return ua.BadDataUnavailable, false
}

// AccessLevel returns the access level of the value at value index vi.
func (as *AddressSpace) AccessLevel(vi int) (byte, bool) {
	if v, ok := as.value(vi); ok {
		return v.accessLevel, true
	}
	return 0, false
}

// Browse returns the references of the node at pos in the given direction, optionally restricted
// to one reference type. A nil refType matches every type.
func (as *AddressSpace) Browse(pos int, forward bool, refType ua.NodeID) []Reference {
	refs := []Reference{}
	n, ok := as.node(pos)
	if !ok {
		return refs
	}
	for _, r := range as.references[n.references.Begin : n.references.End+1] {
		if r.IsForward != forward {
			continue
		}
		if !refType.IsNil() && r.Type != refType {
			continue
		}
		refs = append(refs, r)
	}
	return refs
}

// classOrdinal is the order of the node classes in the table.
func classOrdinal(c ua.NodeClass) int {
	switch c {
	case ua.NodeClassView:
		return 0
	case ua.NodeClassObject:
		return 1
	case ua.NodeClassVariable:
		return 2
	case ua.NodeClassVariableType:
		return 3
	case ua.NodeClassObjectType:
		return 4
	case ua.NodeClassReferenceType:
		return 5
	case ua.NodeClassDataType:
		return 6
	case ua.NodeClassMethod:
		return 7
	}
	return 8
}

// Generate compiles the description. The description is not modified.
func Generate(desc *nodeset.Description, opts ...Option) (*AddressSpace, error) {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	g := &generator{options: o, desc: desc}
	return g.generate()
}
