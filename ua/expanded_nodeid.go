// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"fmt"
	"strconv"
	"strings"
)

// ExpandedNodeID identifies a remote Node.
type ExpandedNodeID struct {
	serverIndex  uint32
	namespaceURI string
	nodeID       NodeID
}

// NewExpandedNodeID casts an ExpandedNodeID from a NodeID.
func NewExpandedNodeID(nodeID NodeID) ExpandedNodeID {
	return ExpandedNodeID{0, "", nodeID}
}

// NewExpandedNodeIDWithURI constructs an ExpandedNodeID that carries a namespace uri and server index.
func NewExpandedNodeIDWithURI(serverIndex uint32, namespaceURI string, nodeID NodeID) ExpandedNodeID {
	return ExpandedNodeID{serverIndex, namespaceURI, nodeID}
}

// ServerIndex returns the index in the servers table.
func (n ExpandedNodeID) ServerIndex() uint32 {
	return n.serverIndex
}

// NamespaceURI returns the namespace uri.
func (n ExpandedNodeID) NamespaceURI() string {
	return n.namespaceURI
}

// NodeID returns the inner NodeID.
func (n ExpandedNodeID) NodeID() NodeID {
	return n.nodeID
}

// NilExpandedNodeID is the nil value.
var NilExpandedNodeID = ExpandedNodeID{0, "", NilNodeID}

// IsNil returns true if the nodeId is nil
func (n ExpandedNodeID) IsNil() bool {
	if n.namespaceURI != "" {
		return false
	}
	return n.nodeID.IsNil()
}

// IsLocal returns true if the node lives in this server's address space
// and is identified by namespace index.
func (n ExpandedNodeID) IsLocal() bool {
	return n.serverIndex == 0 && n.namespaceURI == ""
}

// ParseExpandedNodeID returns an ExpandedNodeID from a string representation.
//   - ParseExpandedNodeID("i=85") // integer, assumes nsu=http://opcfoundation.org/UA/
//   - ParseExpandedNodeID("nsu=http://www.unifiedautomation.com/DemoServer/;s=Demo.Static.Scalar.Float") // string
//   - ParseExpandedNodeID("svr=1;nsu=urn:example;i=5") // remote server
func ParseExpandedNodeID(s string) ExpandedNodeID {
	var svr uint64
	var err error
	if strings.HasPrefix(s, "svr=") {
		var pos = strings.Index(s, ";")
		if pos == -1 {
			return NilExpandedNodeID
		}
		svr, err = strconv.ParseUint(s[4:pos], 10, 32)
		if err != nil {
			return NilExpandedNodeID
		}
		s = s[pos+1:]
	}
	var nsu string
	if strings.HasPrefix(s, "nsu=") {
		var pos = strings.Index(s, ";")
		if pos == -1 {
			return NilExpandedNodeID
		}
		nsu = s[4:pos]
		s = s[pos+1:]
	}
	return ExpandedNodeID{uint32(svr), nsu, ParseNodeID(s)}
}

// String returns a string representation of the ExpandedNodeID, e.g. "nsu=http://www.unifiedautomation.com/DemoServer/;s=Demo"
func (n ExpandedNodeID) String() string {
	b := new(strings.Builder)
	if n.serverIndex > 0 {
		fmt.Fprintf(b, "svr=%d;", n.serverIndex)
	}
	if len(n.namespaceURI) > 0 {
		fmt.Fprintf(b, "nsu=%s;", n.namespaceURI)
	}
	b.WriteString(n.nodeID.String())
	return b.String()
}

// ToNodeID converts ExpandedNodeID to NodeID by looking up the NamespaceURI and replacing it with the index.
func (n ExpandedNodeID) ToNodeID(namespaceURIs []string) NodeID {
	if n.namespaceURI == "" {
		return n.nodeID
	}
	for i, uri := range namespaceURIs {
		if uri == n.namespaceURI {
			return n.nodeID.WithNamespaceIndex(uint16(i))
		}
	}
	return NilNodeID
}

// MarshalText implements encoding.TextMarshaler.
func (n ExpandedNodeID) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *ExpandedNodeID) UnmarshalText(text []byte) error {
	id := ParseExpandedNodeID(string(text))
	if id.IsNil() && len(text) > 0 {
		return fmt.Errorf("invalid expanded node id %q", string(text))
	}
	*n = id
	return nil
}
