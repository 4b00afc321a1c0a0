// Copyright 2021 Converter Systems LLC. All rights reserved.

package nodeset

import (
	"strconv"
	"strings"

	"github.com/awcullen/uaspace/ua"
	"github.com/pkg/errors"
)

// errUnsupportedValue marks values the address space cannot hold, e.g. ExtensionObjects.
// The loader replaces them by the null variant and records a warning.
var errUnsupportedValue = errors.New("unsupported value type")

// toVariant converts the child of a Value element, e.g. <Int64>-1000</Int64> or
// <ListOfBoolean><Boolean>true</Boolean></ListOfBoolean>.
func (c *converter) toVariant(e *uaElement) (ua.Variant, error) {
	name := e.XMLName.Local
	if strings.HasPrefix(name, "ListOf") {
		t, err := c.builtInType(name[len("ListOf"):])
		if err != nil {
			return ua.NilVariant, err
		}
		elems := make([]interface{}, 0, len(e.Children))
		for i := range e.Children {
			v, err := c.toScalar(t, &e.Children[i])
			if err != nil {
				return ua.NilVariant, errors.Wrapf(err, "%s[%d]", name, i)
			}
			elems = append(elems, v)
		}
		return ua.NewArrayVariant(t, elems)
	}
	t, err := c.builtInType(name)
	if err != nil {
		return ua.NilVariant, err
	}
	v, err := c.toScalar(t, e)
	if err != nil {
		return ua.NilVariant, err
	}
	return ua.NewVariant(v)
}

func (c *converter) builtInType(name string) (ua.BuiltInTypeID, error) {
	t, err := ua.ParseBuiltInTypeID(name)
	if err != nil {
		return ua.BuiltInTypeIDNull, errors.Wrap(errUnsupportedValue, name)
	}
	switch t {
	case ua.BuiltInTypeIDNull, ua.BuiltInTypeIDExtensionObject, ua.BuiltInTypeIDDataValue,
		ua.BuiltInTypeIDVariant, ua.BuiltInTypeIDDiagnosticInfo:
		return ua.BuiltInTypeIDNull, errors.Wrap(errUnsupportedValue, name)
	}
	return t, nil
}

func (c *converter) toScalar(t ua.BuiltInTypeID, e *uaElement) (interface{}, error) {
	switch t {
	case ua.BuiltInTypeIDString:
		return e.Content, nil

	case ua.BuiltInTypeIDXMLElement:
		return ua.XMLElement(strings.TrimSpace(e.InnerXML)), nil

	case ua.BuiltInTypeIDByteString:
		// base64 may be wrapped over several lines
		return ua.ParseScalar(t, strings.Join(strings.Fields(e.Content), ""))

	case ua.BuiltInTypeIDGUID:
		if s, ok := e.child("String"); ok {
			return ua.ParseScalar(t, s.Content)
		}
		return ua.ParseScalar(t, e.Content)

	case ua.BuiltInTypeIDStatusCode:
		if s, ok := e.child("Code"); ok {
			return ua.ParseScalar(t, s.Content)
		}
		return ua.ParseScalar(t, e.Content)

	case ua.BuiltInTypeIDLocalizedText:
		var lt ua.LocalizedText
		if s, ok := e.child("Locale"); ok {
			lt.Locale = strings.TrimSpace(s.Content)
		}
		if s, ok := e.child("Text"); ok {
			lt.Text = strings.TrimSpace(s.Content)
		}
		return lt, nil

	case ua.BuiltInTypeIDQualifiedName:
		var qn ua.QualifiedName
		if s, ok := e.child("NamespaceIndex"); ok {
			ns, err := strconv.ParseUint(strings.TrimSpace(s.Content), 10, 16)
			if err != nil {
				return nil, errors.Wrap(err, "QualifiedName NamespaceIndex")
			}
			qn.NamespaceIndex = c.remap(uint16(ns))
		}
		if s, ok := e.child("Name"); ok {
			qn.Name = strings.TrimSpace(s.Content)
		}
		return qn, nil

	case ua.BuiltInTypeIDNodeID:
		s, ok := e.child("Identifier")
		if !ok {
			return ua.NilNodeID, nil
		}
		return c.toNodeID(s.Content)

	case ua.BuiltInTypeIDExpandedNodeID:
		s, ok := e.child("Identifier")
		if !ok {
			return ua.NilExpandedNodeID, nil
		}
		x := ua.ParseExpandedNodeID(strings.TrimSpace(s.Content))
		if x.NamespaceURI() != "" {
			return x, nil
		}
		id := x.NodeID()
		return ua.NewExpandedNodeIDWithURI(x.ServerIndex(), "", id.WithNamespaceIndex(c.remap(id.NamespaceIndex()))), nil
	}
	return ua.ParseScalar(t, e.Content)
}
