// Copyright 2021 Converter Systems LLC. All rights reserved.

package addrspace_test

import (
	"testing"

	"github.com/awcullen/uaspace/ua"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func TestWalk(t *testing.T) {
	as := generate(t)
	cases := []struct {
		name string
		root ua.NodeID
		want []int
	}{
		{"folder", ua.NewNodeIDNumeric(0, 1000), []int{2, 8, 10, 11, 12, 13, 14}},
		{"object", ua.NewNodeIDNumeric(1, 15361), []int{3, 4, 7, 5, 6, 23, 9}},
		{"view", ua.NewNodeIDNumeric(1, 6001), []int{1, 4, 5, 6, 23, 9}},
		{"leaf", ua.NewNodeIDNumeric(0, 1007), []int{16}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			visited := []int{}
			order, err := as.Walk(c.root, func(pos int) error {
				visited = append(visited, pos)
				return nil
			})
			assert.NilError(t, err)
			assert.DeepEqual(t, order, c.want)
			assert.DeepEqual(t, visited, c.want)
		})
	}
}

func TestWalkErrors(t *testing.T) {
	as := generate(t)
	_, err := as.Walk(ua.ObjectIDObjectsFolder, nil)
	assert.Equal(t, errors.Cause(err), ua.BadNodeIDUnknown)

	stop := errors.New("stop")
	order, err := as.Walk(ua.NewNodeIDNumeric(1, 15361), func(pos int) error {
		if pos == 7 {
			return stop
		}
		return nil
	})
	assert.Equal(t, err, stop)
	assert.DeepEqual(t, order, []int{3, 4, 7})
}

func TestWalkSubtypes(t *testing.T) {
	as, err := generateBuffer(t, `<UANodeSet>
  <NamespaceUris><Uri>urn:x</Uri></NamespaceUris>
  <UAObject NodeId="ns=1;i=1" BrowseName="1:A">
    <References>
      <Reference ReferenceType="ns=1;i=100">ns=1;i=2</Reference>
      <Reference ReferenceType="i=40">ns=1;i=3</Reference>
    </References>
  </UAObject>
  <UAObject NodeId="ns=1;i=2" BrowseName="1:B">
    <References>
      <Reference ReferenceType="i=35">ns=1;i=1</Reference>
    </References>
  </UAObject>
  <UAObjectType NodeId="ns=1;i=3" BrowseName="1:T"/>
  <UAReferenceType NodeId="ns=1;i=100" BrowseName="1:HasSignal">
    <References>
      <Reference ReferenceType="i=45" IsForward="false">i=47</Reference>
    </References>
  </UAReferenceType>
</UANodeSet>`)
	assert.NilError(t, err)

	hasSignal := ua.NewNodeIDNumeric(1, 100)
	assert.Assert(t, as.IsSubtype(hasSignal, ua.ReferenceTypeIDHasComponent))
	assert.Assert(t, as.IsSubtype(hasSignal, ua.ReferenceTypeIDHierarchicalReferences))
	assert.Assert(t, as.IsHierarchical(hasSignal))
	assert.Assert(t, !as.IsSubtype(hasSignal, hasSignal))
	assert.Assert(t, !as.IsHierarchical(ua.ReferenceTypeIDHasTypeDefinition))
	assert.Assert(t, as.IsSubtype(ua.ReferenceTypeIDHasOrderedComponent, ua.ReferenceTypeIDHasChild))

	super, ok := as.SuperType(hasSignal)
	assert.Assert(t, ok)
	assert.Equal(t, super, ua.ReferenceTypeIDHasComponent)
	_, ok = as.SuperType(ua.ReferenceTypeIDReferences)
	assert.Assert(t, !ok)

	// the cycle back to A and the type definition are not followed
	order, err := as.Walk(ua.NewNodeIDNumeric(1, 1), nil)
	assert.NilError(t, err)
	assert.DeepEqual(t, order, []int{1, 2})
}
