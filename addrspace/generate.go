// Copyright 2021 Converter Systems LLC. All rights reserved.

package addrspace

import (
	"sort"

	"github.com/awcullen/uaspace/nodeset"
	"github.com/awcullen/uaspace/ua"
	"github.com/pkg/errors"
)

type generator struct {
	*options
	desc *nodeset.Description
}

func (g *generator) generate() (*AddressSpace, error) {
	nodes := make([]*nodeset.Node, len(g.desc.Nodes))
	copy(nodes, g.desc.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool {
		return classOrdinal(nodes[i].NodeClass) < classOrdinal(nodes[j].NodeClass)
	})

	as := newAddressSpace(append([]string{}, g.desc.NamespaceURIs...), len(nodes))
	for _, n := range nodes {
		if _, exists := as.index[n.NodeID]; exists {
			return nil, errors.Wrapf(ua.BadNodeIDExists, "node %s", n.NodeID)
		}
		pos := len(as.nodes)
		as.index[n.NodeID] = pos
		as.counts[n.NodeClass]++

		entry := node{class: n.NodeClass, id: n.NodeID, browseName: n.BrowseName}
		if n.NodeClass.HasValue() {
			entry.valueIndex = len(as.values)
			status := ua.Good
			if n.Value.IsNil() {
				status = ua.BadDataUnavailable
			}
			as.values = append(as.values, value{variant: n.Value, status: status, accessLevel: n.AccessLevel})
		}

		entry.displayNames.Begin = len(as.displayNames)
		as.displayNames = append(as.displayNames, n.DisplayNames...)
		entry.displayNames.End = len(as.displayNames) - 1

		entry.descriptions.Begin = len(as.descriptions)
		as.descriptions = append(as.descriptions, n.Descriptions...)
		entry.descriptions.End = len(as.descriptions) - 1

		entry.references.Begin = len(as.references)
		for _, r := range n.References {
			as.references = append(as.references, Reference{
				Type:      r.ReferenceTypeID,
				Target:    r.TargetID,
				IsForward: !r.IsInverse,
			})
		}
		entry.references.End = len(as.references) - 1

		as.nodes = append(as.nodes, entry)
	}

	if err := g.checkReferences(as); err != nil {
		return nil, err
	}

	g.logger.Debug().
		Int("nodes", as.Len()).
		Int("values", as.NbValues()).
		Int("references", as.NbReferencesTotal()).
		Msg("address space generated")
	return as, nil
}

// checkReferences reports references with an unknown type or target. In strict mode the first one is an error.
func (g *generator) checkReferences(as *AddressSpace) error {
	for pos := 1; pos < len(as.nodes); pos++ {
		n := &as.nodes[pos]
		for i := n.references.Begin; i <= n.references.End; i++ {
			r := as.references[i]
			if !as.isReferenceType(r.Type) {
				if g.strict {
					return errors.Wrapf(ua.BadReferenceTypeIDInvalid, "node %s reference %d type %s", n.id, i-n.references.Begin, r.Type)
				}
				g.logger.Warn().Str("node", n.id.String()).Str("type", r.Type.String()).Msg("unknown reference type")
			}
			if !as.isKnownTarget(r.Target) {
				if g.strict {
					return errors.Wrapf(ua.BadNodeIDUnknown, "node %s reference %d target %s", n.id, i-n.references.Begin, r.Target)
				}
				g.logger.Warn().Str("node", n.id.String()).Str("target", r.Target.String()).Msg("unknown reference target")
			}
		}
	}
	return nil
}

// isReferenceType returns true if the id is a well known reference type or a reference type of the table.
func (as *AddressSpace) isReferenceType(id ua.NodeID) bool {
	for _, t := range ua.WellKnownReferenceTypes {
		if t == id {
			return true
		}
	}
	if pos, ok := as.index[id]; ok {
		return as.nodes[pos].class == ua.NodeClassReferenceType
	}
	return false
}

// isKnownTarget returns true for targets in the table, in namespace 0, or on another server.
func (as *AddressSpace) isKnownTarget(target ua.ExpandedNodeID) bool {
	if target.ServerIndex() != 0 {
		return true
	}
	id := target.ToNodeID(as.namespaceURIs)
	if id.IsNil() {
		return false
	}
	if id.NamespaceIndex() == 0 {
		return true
	}
	_, ok := as.index[id]
	return ok
}
