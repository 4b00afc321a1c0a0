// Copyright 2021 Converter Systems LLC. All rights reserved.

package addrspace

import (
	"github.com/awcullen/uaspace/ua"
	"github.com/pkg/errors"
)

// Verify checks the consistency of the table: the ranges of consecutive nodes are contiguous and
// cover each flat table exactly, the value indices of variables and variable types run 1..V, the
// index matches the nodes, and every reference type is a well known type or a reference type of the table.
func (as *AddressSpace) Verify() error {
	if len(as.nodes) == 0 || len(as.values) == 0 || len(as.references) == 0 ||
		len(as.displayNames) == 0 || len(as.descriptions) == 0 {
		return errors.New("missing entry 0")
	}
	refs, names, descs, vi := 1, 1, 1, 1
	for pos := 1; pos < len(as.nodes); pos++ {
		n := &as.nodes[pos]
		if err := checkRange(n.references, refs, len(as.references)); err != nil {
			return errors.Wrapf(err, "node %d %s references", pos, n.id)
		}
		refs = n.references.End + 1
		if err := checkRange(n.displayNames, names, len(as.displayNames)); err != nil {
			return errors.Wrapf(err, "node %d %s display names", pos, n.id)
		}
		names = n.displayNames.End + 1
		if err := checkRange(n.descriptions, descs, len(as.descriptions)); err != nil {
			return errors.Wrapf(err, "node %d %s descriptions", pos, n.id)
		}
		descs = n.descriptions.End + 1

		if n.class.HasValue() {
			if n.valueIndex != vi {
				return errors.Errorf("node %d %s has value index %d, expected %d", pos, n.id, n.valueIndex, vi)
			}
			vi++
		} else if n.valueIndex != 0 {
			return errors.Errorf("node %d %s of class %s has value index %d", pos, n.id, n.class, n.valueIndex)
		}

		if i, ok := as.index[n.id]; !ok || i != pos {
			return errors.Errorf("node %d %s is not indexed", pos, n.id)
		}
		for i := n.references.Begin; i <= n.references.End; i++ {
			if t := as.references[i].Type; !as.isReferenceType(t) {
				return errors.Wrapf(ua.BadReferenceTypeIDInvalid, "node %d %s reference %d type %s", pos, n.id, i, t)
			}
		}
	}
	switch {
	case refs != len(as.references):
		return errors.Errorf("references %d..%d are not owned by a node", refs, len(as.references)-1)
	case names != len(as.displayNames):
		return errors.Errorf("display names %d..%d are not owned by a node", names, len(as.displayNames)-1)
	case descs != len(as.descriptions):
		return errors.Errorf("descriptions %d..%d are not owned by a node", descs, len(as.descriptions)-1)
	case vi != len(as.values):
		return errors.Errorf("values %d..%d are not owned by a node", vi, len(as.values)-1)
	case len(as.index) != len(as.nodes)-1:
		return errors.Errorf("index holds %d nodes, table holds %d", len(as.index), len(as.nodes)-1)
	}
	return nil
}

// checkRange checks that r starts at begin and fits a table of the given size.
func checkRange(r Range, begin, size int) error {
	if r.Begin != begin {
		return errors.Errorf("range [%d,%d] does not start at %d", r.Begin, r.End, begin)
	}
	if r.End < r.Begin-1 || r.End >= size {
		return errors.Errorf("range [%d,%d] is out of bounds", r.Begin, r.End)
	}
	return nil
}
