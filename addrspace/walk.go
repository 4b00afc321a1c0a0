// Copyright 2021 Converter Systems LLC. All rights reserved.

package addrspace

import (
	"github.com/awcullen/uaspace/ua"
	"github.com/gammazero/deque"
	"github.com/pkg/errors"
)

// maxTypeDepth bounds the walk up a type hierarchy.
const maxTypeDepth = 100

// standardSuperTypes holds the HasSubtype hierarchy of the reference types of namespace 0.
var standardSuperTypes = map[ua.NodeID]ua.NodeID{
	ua.ReferenceTypeIDNonHierarchical:        ua.ReferenceTypeIDReferences,
	ua.ReferenceTypeIDHierarchicalReferences: ua.ReferenceTypeIDReferences,
	ua.ReferenceTypeIDHasChild:               ua.ReferenceTypeIDHierarchicalReferences,
	ua.ReferenceTypeIDOrganizes:              ua.ReferenceTypeIDHierarchicalReferences,
	ua.ReferenceTypeIDHasEventSource:         ua.ReferenceTypeIDHierarchicalReferences,
	ua.ReferenceTypeIDHasModellingRule:       ua.ReferenceTypeIDNonHierarchical,
	ua.ReferenceTypeIDHasEncoding:            ua.ReferenceTypeIDNonHierarchical,
	ua.ReferenceTypeIDHasDescription:         ua.ReferenceTypeIDNonHierarchical,
	ua.ReferenceTypeIDHasTypeDefinition:      ua.ReferenceTypeIDNonHierarchical,
	ua.ReferenceTypeIDGeneratesEvent:         ua.ReferenceTypeIDNonHierarchical,
	ua.ReferenceTypeIDAggregates:             ua.ReferenceTypeIDHasChild,
	ua.ReferenceTypeIDHasSubtype:             ua.ReferenceTypeIDHasChild,
	ua.ReferenceTypeIDHasProperty:            ua.ReferenceTypeIDAggregates,
	ua.ReferenceTypeIDHasComponent:           ua.ReferenceTypeIDAggregates,
	ua.ReferenceTypeIDHasNotifier:            ua.ReferenceTypeIDHasEventSource,
	ua.ReferenceTypeIDHasOrderedComponent:    ua.ReferenceTypeIDHasComponent,
}

// SuperType returns the immediate supertype of the type, found by an inverse HasSubtype
// reference in the table, or in the standard reference type hierarchy.
func (as *AddressSpace) SuperType(typeID ua.NodeID) (ua.NodeID, bool) {
	if pos, ok := as.index[typeID]; ok {
		for _, r := range as.Browse(pos, false, ua.ReferenceTypeIDHasSubtype) {
			if id := r.Target.ToNodeID(as.namespaceURIs); !id.IsNil() {
				return id, true
			}
		}
	}
	id, ok := standardSuperTypes[typeID]
	return id, ok
}

// IsSubtype returns whether the subtype is derived from the given supertype.
// A type is not a subtype of itself.
func (as *AddressSpace) IsSubtype(subtype, supertype ua.NodeID) bool {
	id := subtype
	for i := 0; i < maxTypeDepth; i++ {
		super, ok := as.SuperType(id)
		if !ok {
			return false
		}
		if super == supertype {
			return true
		}
		id = super
	}
	return false
}

// IsHierarchical returns true for HierarchicalReferences and its subtypes.
func (as *AddressSpace) IsHierarchical(refType ua.NodeID) bool {
	return refType == ua.ReferenceTypeIDHierarchicalReferences || as.IsSubtype(refType, ua.ReferenceTypeIDHierarchicalReferences)
}

// Walk traverses the table breadth-first from the root, following forward hierarchical references
// to targets in the table. Each node is visited once. fn, if not nil, is called with the pos of every
// visited node; an error from fn stops the walk. Walk returns the visit order.
func (as *AddressSpace) Walk(root ua.NodeID, fn func(pos int) error) ([]int, error) {
	start, ok := as.index[root]
	if !ok {
		return nil, errors.Wrapf(ua.BadNodeIDUnknown, "root %s", root)
	}
	order := []int{}
	visited := map[int]bool{start: true}
	queue := deque.Deque[int]{}
	queue.PushBack(start)
	for queue.Len() > 0 {
		pos := queue.PopFront()
		order = append(order, pos)
		if fn != nil {
			if err := fn(pos); err != nil {
				return order, err
			}
		}
		n := &as.nodes[pos]
		for _, r := range as.references[n.references.Begin : n.references.End+1] {
			if !r.IsForward || !as.IsHierarchical(r.Type) {
				continue
			}
			target, ok := as.index[r.Target.ToNodeID(as.namespaceURIs)]
			if !ok || visited[target] {
				continue
			}
			visited[target] = true
			queue.PushBack(target)
		}
	}
	return order, nil
}
