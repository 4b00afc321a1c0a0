// Copyright 2021 Converter Systems LLC. All rights reserved.

package nodeset

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/awcullen/uaspace/ua"
	"github.com/pkg/errors"
)

var nodeClasses = map[string]ua.NodeClass{
	"UAObject":        ua.NodeClassObject,
	"UAVariable":      ua.NodeClassVariable,
	"UAMethod":        ua.NodeClassMethod,
	"UAView":          ua.NodeClassView,
	"UAObjectType":    ua.NodeClassObjectType,
	"UAVariableType":  ua.NodeClassVariableType,
	"UAReferenceType": ua.NodeClassReferenceType,
	"UADataType":      ua.NodeClassDataType,
}

// Load reads a UANodeSet XML document into a new Description.
func Load(r io.Reader) (*Description, error) {
	d := NewDescription()
	if err := d.Add(r); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadBuffer reads a UANodeSet XML document from a buffer into a new Description.
func LoadBuffer(buf []byte) (*Description, error) {
	return Load(bytes.NewReader(buf))
}

// LoadFile reads the UANodeSet XML documents with the given paths into a new Description.
// Later files may refer to the namespaces and nodes of earlier ones.
func LoadFile(paths ...string) (*Description, error) {
	d := NewDescription()
	for _, path := range paths {
		if err := d.AddFile(path); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// AddFile reads the UANodeSet XML from a file with the given path into the Description.
func (d *Description) AddFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "error opening nodeset")
	}
	defer f.Close()
	return errors.Wrapf(d.Add(f), "nodeset %s", path)
}

// Add reads a UANodeSet XML document into the Description. The namespace indices of
// the document are remapped onto the namespace table of the Description.
func (d *Description) Add(r io.Reader) error {
	set := &uaNodeSet{}
	if err := xml.NewDecoder(r).Decode(set); err != nil {
		return errors.Wrap(err, "error decoding nodeset")
	}

	nsMap := make(map[uint16]uint16, len(set.NamespaceUris))
	for i, nsu := range set.NamespaceUris {
		nsMap[uint16(i+1)] = d.NamespaceIndex(nsu)
	}

	aliases := make(map[string]string, len(set.Aliases))
	for _, a := range set.Aliases {
		aliases[a.Alias] = strings.TrimSpace(a.NodeID)
	}

	c := &converter{aliases: aliases, nsMap: nsMap}
	for i := range set.Nodes {
		n := &set.Nodes[i]
		class, ok := nodeClasses[n.XMLName.Local]
		if !ok {
			// Models, Extensions and other elements that are not nodes.
			continue
		}
		node, err := c.toNode(class, n)
		if err != nil {
			return errors.Wrapf(err, "%s %q", n.XMLName.Local, n.NodeID)
		}
		d.Nodes = append(d.Nodes, node)
	}
	d.Warnings = append(d.Warnings, c.warnings...)
	return nil
}

type converter struct {
	aliases  map[string]string
	nsMap    map[uint16]uint16
	warnings []string
}

func (c *converter) toNode(class ua.NodeClass, n *uaNode) (*Node, error) {
	id, err := c.toNodeID(n.NodeID)
	if err != nil {
		return nil, err
	}
	refs, err := c.toRefs(n.References)
	if err != nil {
		return nil, err
	}
	node := &Node{
		NodeClass:       class,
		NodeID:          id,
		BrowseName:      c.toBrowseName(n.BrowseName),
		DisplayNames:    toLocalizedTexts(n.DisplayNames),
		Descriptions:    toLocalizedTexts(n.Descriptions),
		References:      refs,
		Value:           ua.NilVariant,
		ValueRank:       toInt32(n.ValueRank, -1),
		AccessLevel:     toUint8(n.AccessLevel, 1),
		IsAbstract:      n.IsAbstract,
		Symmetric:       n.Symmetric,
		EventNotifier:   n.EventNotifier,
		Executable:      toBool(n.Executable, true),
		ContainsNoLoops: n.ContainsNoLoops,
	}
	if n.InverseName != nil {
		node.InverseName = toLocalizedText(*n.InverseName)
	}
	if n.ParentNodeID != "" {
		if node.ParentNodeID, err = c.toNodeID(n.ParentNodeID); err != nil {
			return nil, errors.Wrap(err, "ParentNodeId")
		}
	}
	if class.HasValue() {
		node.DataType = ua.DataTypeIDBaseDataType
		if n.DataType != "" {
			if node.DataType, err = c.toNodeID(n.DataType); err != nil {
				return nil, errors.Wrap(err, "DataType")
			}
		}
		if n.Value != nil && len(n.Value.Elements) > 0 {
			v, err := c.toVariant(&n.Value.Elements[0])
			if err != nil {
				if errors.Cause(err) != errUnsupportedValue {
					return nil, errors.Wrap(err, "Value")
				}
				c.warnings = append(c.warnings, n.NodeID+": "+err.Error())
				v = ua.NilVariant
			}
			node.Value = v
		}
	}
	return node, nil
}

// toNodeID resolves aliases and remaps the namespace index of a NodeId string.
func (c *converter) toNodeID(s string) (ua.NodeID, error) {
	s = strings.TrimSpace(s)
	if alias, exists := c.aliases[s]; exists {
		s = alias
	}
	id, err := ua.ParseNodeIDStrict(s)
	if err != nil {
		return ua.NilNodeID, errors.Wrap(ua.BadNodeIDInvalid, err.Error())
	}
	return id.WithNamespaceIndex(c.remap(id.NamespaceIndex())), nil
}

func (c *converter) remap(ns uint16) uint16 {
	if ns2, exists := c.nsMap[ns]; exists {
		return ns2
	}
	return ns
}

func (c *converter) toRefs(refs []uaReference) ([]Reference, error) {
	if len(refs) == 0 {
		return []Reference{}, nil
	}
	ra := make([]Reference, len(refs))
	for i, r := range refs {
		typ, err := c.toNodeID(r.ReferenceType)
		if err != nil {
			return nil, errors.Wrapf(err, "reference %d type", i)
		}
		target, err := c.toNodeID(r.TargetNodeID)
		if err != nil {
			return nil, errors.Wrapf(err, "reference %d target", i)
		}
		ra[i] = Reference{
			ReferenceTypeID: typ,
			IsInverse:       strings.EqualFold(strings.TrimSpace(r.IsForward), "false"),
			TargetID:        ua.NewExpandedNodeID(target),
		}
	}
	return ra, nil
}

func (c *converter) toBrowseName(s string) ua.QualifiedName {
	var pos = strings.Index(s, ":")
	if pos == -1 {
		return ua.NewQualifiedName(0, s)
	}
	ns, err := strconv.ParseUint(s[:pos], 10, 16)
	if err != nil {
		return ua.NewQualifiedName(0, s)
	}
	return ua.NewQualifiedName(c.remap(uint16(ns)), s[pos+1:])
}

func toLocalizedText(s uaLocalizedText) ua.LocalizedText {
	return ua.NewLocalizedText(s.Text, s.Locale)
}

func toLocalizedTexts(s []uaLocalizedText) []ua.LocalizedText {
	if len(s) == 0 {
		return []ua.LocalizedText{}
	}
	a := make([]ua.LocalizedText, len(s))
	for i, t := range s {
		a[i] = toLocalizedText(t)
	}
	return a
}

func toInt32(s string, def int32) int32 {
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int32(v)
	}
	return def
}

func toUint8(s string, def uint8) uint8 {
	if v, err := strconv.ParseUint(s, 10, 8); err == nil {
		return uint8(v)
	}
	return def
}

func toBool(s string, def bool) bool {
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	return def
}
