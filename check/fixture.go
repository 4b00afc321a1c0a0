// Copyright 2021 Converter Systems LLC. All rights reserved.

package check

import (
	"os"

	"github.com/awcullen/uaspace/addrspace"
	"github.com/awcullen/uaspace/ua"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Fixture lists the expected attributes of the nodes of an address space, in the order they are checked.
type Fixture struct {
	NamespaceURIs []string `yaml:"namespaceUris,omitempty"`
	Nodes         []Node   `yaml:"nodes"`
}

// Node holds the expected attributes of the node at Pos. A nil list is not checked,
// an empty list expects the node to have none.
type Node struct {
	NodeID       ua.NodeID      `yaml:"nodeId"`
	Pos          int            `yaml:"pos"`
	BrowseName   *QualifiedName `yaml:"browseName,omitempty"`
	Value        *Value         `yaml:"value,omitempty"`
	References   References     `yaml:"references,omitempty"`
	Descriptions LocalizedTexts `yaml:"descriptions,omitempty"`
	DisplayNames LocalizedTexts `yaml:"displayNames,omitempty"`
}

// QualifiedName is an expected browse name.
type QualifiedName struct {
	NamespaceIndex uint16 `yaml:"ns"`
	Name           string `yaml:"name"`
}

// Value is an expected entry of the value table. The payload is given in the text form of
// ua.FormatScalar, one string per element; a nil payload is not checked.
type Value struct {
	ValueIndex int              `yaml:"valueIndex"`
	Type       ua.BuiltInTypeID `yaml:"type"`
	ArrayType  ua.ArrayType     `yaml:"arrayType"`
	Value      Payload          `yaml:"value,omitempty"`
}

// Payload is the text form of the elements of a value.
type Payload []string

// IsZero keeps empty payloads when encoding.
func (p Payload) IsZero() bool { return p == nil }

// Reference is an expected (type, target) pair.
type Reference struct {
	Type   ua.NodeID         `yaml:"type"`
	Target ua.ExpandedNodeID `yaml:"target"`
}

// References are expected in nodeset order.
type References []Reference

// IsZero keeps empty lists when encoding.
func (r References) IsZero() bool { return r == nil }

// LocalizedText is an expected (text, locale) pair.
type LocalizedText struct {
	Text   string `yaml:"text"`
	Locale string `yaml:"locale,omitempty"`
}

// LocalizedTexts are expected in nodeset order.
type LocalizedTexts []LocalizedText

// IsZero keeps empty lists when encoding.
func (l LocalizedTexts) IsZero() bool { return l == nil }

// LoadFixture reads a YAML fixture from a file.
func LoadFixture(path string) (*Fixture, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading fixture")
	}
	f, err := ParseFixture(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %s", path)
	}
	return f, nil
}

// ParseFixture decodes a YAML fixture.
func ParseFixture(buf []byte) (*Fixture, error) {
	f := &Fixture{}
	if err := yaml.Unmarshal(buf, f); err != nil {
		return nil, errors.Wrap(err, "error decoding fixture")
	}
	for i, n := range f.Nodes {
		if n.Pos < 1 {
			return nil, errors.Errorf("node %d %s: pos must be positive", i, n.NodeID)
		}
		if n.Value != nil && n.Value.ValueIndex < 1 {
			return nil, errors.Errorf("node %d %s: valueIndex must be positive", i, n.NodeID)
		}
	}
	return f, nil
}

// Marshal encodes the fixture as YAML.
func (f *Fixture) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding fixture")
	}
	return buf, nil
}

// Save writes the fixture as YAML to a file.
func (f *Fixture) Save(path string) error {
	buf, err := f.Marshal()
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, buf, 0644), "error writing fixture")
}

// FromAddressSpace returns a fixture expecting every attribute of every node of the address space,
// in pos order.
func FromAddressSpace(as *addrspace.AddressSpace) *Fixture {
	f := &Fixture{
		NamespaceURIs: append([]string{}, as.NamespaceURIs()...),
		Nodes:         make([]Node, 0, as.Len()),
	}
	for pos := 1; pos <= as.Len(); pos++ {
		id, _ := as.NodeID(pos)
		bn, _ := as.BrowseName(pos)
		n := Node{
			NodeID:     id,
			Pos:        pos,
			BrowseName: &QualifiedName{NamespaceIndex: bn.NamespaceIndex, Name: bn.Name},
		}
		if vi, ok := as.ValueIndex(pos); ok {
			v, _ := as.Value(vi)
			n.Value = &Value{
				ValueIndex: vi,
				Type:       v.Type(),
				ArrayType:  v.ArrayType(),
				Value:      Payload(v.Strings()),
			}
			if n.Value.Value == nil {
				n.Value.Value = Payload{}
			}
		}
		refs, _ := as.References(pos)
		n.References = make(References, len(refs))
		for i, r := range refs {
			n.References[i] = Reference{Type: r.Type, Target: r.Target}
		}
		descs, _ := as.Descriptions(pos)
		n.Descriptions = toLocalizedTexts(descs)
		names, _ := as.DisplayNames(pos)
		n.DisplayNames = toLocalizedTexts(names)
		f.Nodes = append(f.Nodes, n)
	}
	return f
}

func toLocalizedTexts(a []ua.LocalizedText) LocalizedTexts {
	l := make(LocalizedTexts, len(a))
	for i, lt := range a {
		l[i] = LocalizedText{Text: lt.Text, Locale: lt.Locale}
	}
	return l
}
