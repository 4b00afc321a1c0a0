// Copyright 2021 Converter Systems LLC. All rights reserved.

package nodeset

import "encoding/xml"

// uaNodeSet is the document element of the UANodeSet schema.
type uaNodeSet struct {
	XMLName       xml.Name  `xml:"UANodeSet"`
	NamespaceUris []string  `xml:"NamespaceUris>Uri"`
	Aliases       []uaAlias `xml:"Aliases>Alias"`
	Nodes         []uaNode  `xml:",any"`
}

type uaAlias struct {
	Alias  string `xml:"Alias,attr"`
	NodeID string `xml:",chardata"`
}

// uaNode is any of the UAObject, UAVariable, ... elements. XMLName tells which.
type uaNode struct {
	XMLName                 xml.Name
	NodeID                  string            `xml:"NodeId,attr"`
	BrowseName              string            `xml:"BrowseName,attr"`
	ParentNodeID            string            `xml:"ParentNodeId,attr"`
	DataType                string            `xml:"DataType,attr"`
	ValueRank               string            `xml:"ValueRank,attr"`
	ArrayDimensions         string            `xml:"ArrayDimensions,attr"`
	AccessLevel             string            `xml:"AccessLevel,attr"`
	MinimumSamplingInterval float64           `xml:"MinimumSamplingInterval,attr"`
	Historizing             bool              `xml:"Historizing,attr"`
	IsAbstract              bool              `xml:"IsAbstract,attr"`
	Symmetric               bool              `xml:"Symmetric,attr"`
	EventNotifier           uint8             `xml:"EventNotifier,attr"`
	Executable              string            `xml:"Executable,attr"`
	ContainsNoLoops         bool              `xml:"ContainsNoLoops,attr"`
	DisplayNames            []uaLocalizedText `xml:"DisplayName"`
	Descriptions            []uaLocalizedText `xml:"Description"`
	InverseName             *uaLocalizedText  `xml:"InverseName"`
	References              []uaReference     `xml:"References>Reference"`
	Value                   *uaValue          `xml:"Value"`
}

type uaLocalizedText struct {
	Locale string `xml:"Locale,attr"`
	Text   string `xml:",chardata"`
}

type uaReference struct {
	ReferenceType string `xml:"ReferenceType,attr"`
	IsForward     string `xml:"IsForward,attr"`
	TargetNodeID  string `xml:",chardata"`
}

// uaValue holds the single child of a Value element, e.g. <Int64> or <ListOfString>.
type uaValue struct {
	Elements []uaElement `xml:",any"`
}

// uaElement is a generic element tree used for values.
type uaElement struct {
	XMLName  xml.Name
	Content  string      `xml:",chardata"`
	InnerXML string      `xml:",innerxml"`
	Children []uaElement `xml:",any"`
}

// child returns the first child with the given local name.
func (e *uaElement) child(name string) (*uaElement, bool) {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i], true
		}
	}
	return nil, false
}
