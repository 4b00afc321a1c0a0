// Copyright 2021 Converter Systems LLC. All rights reserved.

package check_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awcullen/uaspace/addrspace"
	"github.com/awcullen/uaspace/check"
	"github.com/awcullen/uaspace/nodeset"
	"github.com/awcullen/uaspace/ua"
	"gotest.tools/assert"
)

func generate(t *testing.T) *addrspace.AddressSpace {
	t.Helper()
	d, err := nodeset.LoadFile("../nodeset/testdata/ingopcs.xml")
	assert.NilError(t, err)
	as, err := addrspace.Generate(d)
	assert.NilError(t, err)
	return as
}

func loadFixture(t *testing.T) *check.Fixture {
	t.Helper()
	f, err := check.LoadFixture("testdata/ingopcs.yaml")
	assert.NilError(t, err)
	return f
}

func find(f *check.Fixture, pos int) *check.Node {
	for i := range f.Nodes {
		if f.Nodes[i].Pos == pos {
			return &f.Nodes[i]
		}
	}
	return nil
}

func TestLoadFixture(t *testing.T) {
	f := loadFixture(t)
	assert.DeepEqual(t, f.NamespaceURIs, []string{nodeset.NamespaceURI, "urn:INGOPCS:demo"})
	assert.Equal(t, len(f.Nodes), 10)

	n := find(f, 3)
	assert.Equal(t, n.NodeID, ua.NewNodeIDNumeric(1, 15361))
	assert.DeepEqual(t, *n.BrowseName, check.QualifiedName{NamespaceIndex: 1, Name: "15361"})
	assert.Equal(t, len(n.References), 4)
	assert.Equal(t, n.References[2], check.Reference{
		Type:   ua.ReferenceTypeIDOrganizes,
		Target: ua.NewExpandedNodeID(ua.NewNodeIDString(1, "Objects.15361.SIGNALs")),
	})
	assert.DeepEqual(t, n.Descriptions, check.LocalizedTexts{{Text: "NoName"}, {Text: "NoName", Locale: "en"}})
	assert.Assert(t, n.Value == nil)

	// an empty list is checked, a missing one is not
	n = find(f, 7)
	assert.Assert(t, n.Descriptions != nil)
	assert.Equal(t, len(n.Descriptions), 0)
	assert.Assert(t, n.DisplayNames == nil)

	n = find(f, 9)
	assert.Equal(t, n.Value.Type, ua.BuiltInTypeIDBoolean)
	assert.Assert(t, n.Value.Value == nil)

	n = find(f, 15)
	assert.Equal(t, n.Value.Type, ua.BuiltInTypeIDNull)
	assert.Equal(t, n.Value.ArrayType, ua.ArrayTypeSingleValue)
	assert.Assert(t, n.Value.Value != nil)

	n = find(f, 16)
	assert.Equal(t, n.Value.ArrayType, ua.ArrayTypeArray)
	assert.DeepEqual(t, n.Value.Value, check.Payload{"1", "2", "3"})
}

func TestParseFixtureErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		msg  string
	}{
		{"yaml", "nodes: [", "error decoding fixture"},
		{"node id", "nodes:\n  - {nodeId: x=1, pos: 1}\n", "error decoding fixture"},
		{"type", "nodes:\n  - {nodeId: i=1, pos: 1, value: {valueIndex: 1, type: Foo}}\n", "unknown built-in type"},
		{"pos", "nodes:\n  - {nodeId: i=1}\n", "pos must be positive"},
		{"value index", "nodes:\n  - {nodeId: i=1, pos: 1, value: {type: Int32}}\n", "valueIndex must be positive"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := check.ParseFixture([]byte(c.in))
			assert.ErrorContains(t, err, c.msg)
		})
	}

	_, err := check.LoadFixture("testdata/missing.yaml")
	assert.ErrorContains(t, err, "error reading fixture")
}

func TestRunPass(t *testing.T) {
	as := generate(t)
	report := check.NewChecker().Run(context.Background(), as, loadFixture(t))
	assert.Assert(t, report.OK())
	assert.Equal(t, len(report.Failures()), 0)

	want := []struct {
		suite   check.Suite
		checked int
	}{
		{check.SuiteBrowseName, 7},
		{check.SuiteValue, 7},
		{check.SuiteReference, 3},
		{check.SuiteDescription, 4},
		{check.SuiteDisplayName, 3},
	}
	assert.Equal(t, len(report.Suites), len(want))
	for i, w := range want {
		assert.Equal(t, report.Suites[i].Suite, w.suite)
		assert.Equal(t, report.Suites[i].Checked, w.checked, "suite %s", w.suite)
		assert.Equal(t, report.Suites[i].Lines[0], "test "+w.suite.String())
	}

	buf := &bytes.Buffer{}
	_, err := report.WriteTo(buf)
	assert.NilError(t, err)
	out := buf.String()
	assert.Assert(t, strings.Contains(out, "test Value for nodeid i=1001\n"), out)
	assert.Assert(t, strings.Contains(out, "test reference 3 node 3 nodeid ns=1;i=15361\n"), out)
	assert.Assert(t, strings.Contains(out, "test Description 2 node 3 nodeid ns=1;i=15361 : locale ok, text ok\n"), out)
	assert.Assert(t, strings.HasSuffix(out, "PASS\n"), out)
}

func TestRunMismatch(t *testing.T) {
	as := generate(t)
	f := loadFixture(t)
	find(f, 2).BrowseName.Name = "Variables"
	find(f, 2).References = find(f, 2).References[:3]
	find(f, 3).Descriptions[1].Locale = "fr"
	find(f, 3).References[3].Target = ua.NewExpandedNodeID(ua.NewNodeIDString(1, "Objects.15361.TRACKs"))
	find(f, 8).Value.Value = check.Payload{"-1001"}
	find(f, 16).Value.ArrayType = ua.ArrayTypeSingleValue
	find(f, 17).DisplayNames = find(f, 17).DisplayNames[:1]

	report := check.NewChecker().Run(context.Background(), as, f)
	assert.Assert(t, !report.OK())

	failures := report.Failures()
	assert.Equal(t, len(failures), 7)
	assert.Equal(t, failures[0], check.Mismatch{
		Suite:    check.SuiteBrowseName,
		Pos:      2,
		NodeID:   ua.NewNodeIDNumeric(0, 1000),
		Field:    "BrowseName",
		Expected: `"Variables"`,
		Actual:   `"VariablesFolderBn"`,
	})
	for _, s := range report.Suites {
		assert.Assert(t, !s.OK(), "suite %s", s.Suite)
	}

	// a mismatch does not stop the suite
	assert.Equal(t, report.Suites[0].Checked, 7)
	assert.Equal(t, report.Suites[2].Checked, 3)

	buf := &bytes.Buffer{}
	_, err := report.WriteTo(buf)
	assert.NilError(t, err)
	out := buf.String()
	for _, line := range []string{
		`invalid BrowseName expected "Variables" result "VariablesFolderBn" : pos 2 nodeid i=1000`,
		`invalid Value[0] expected "-1001" result "-1000" : pos 8 nodeid i=1001`,
		`invalid Arraytype expected SingleValue result Array : pos 16 nodeid i=1007`,
		`Invalid number of reference expected 3 result 8 : nodeid i=1000`,
		`invalid reference 4 target expected ns=1;s=Objects.15361.TRACKs result ns=1;s=Objects.15361.SWITCHs : pos 3 nodeid ns=1;i=15361`,
		`test Description 2 node 3 nodeid ns=1;i=15361 : locale KO, text ok`,
		`Invalid number of DisplayName expected 1 result 2 : pos 17 nodeid i=1008`,
	} {
		assert.Assert(t, strings.Contains(out, line+"\n"), "missing %q in\n%s", line, out)
	}
	assert.Assert(t, strings.HasSuffix(out, "FAIL\n"), out)
}

func TestRunOutOfRange(t *testing.T) {
	as := generate(t)
	f, err := check.ParseFixture([]byte(`nodes:
  - nodeId: i=1
    pos: 99
    browseName: {ns: 0, name: X}
    value: {valueIndex: 42, type: Int32, arrayType: SingleValue}
    references: []
    descriptions: []
    displayNames: []
`))
	assert.NilError(t, err)
	report := check.NewChecker().Run(context.Background(), as, f)
	assert.Assert(t, !report.OK())
	failures := report.Failures()
	assert.Equal(t, len(failures), 5)
	assert.Equal(t, failures[0].Field, "pos")
	assert.Equal(t, failures[1].Field, "valueIndex")
	// a missing node never matches, not even an empty list
	assert.Equal(t, failures[2].Field, "number of reference")
	for _, m := range failures[3:] {
		assert.Equal(t, m.Field, "pos")
		assert.Equal(t, m.Expected, "1..23")
		assert.Equal(t, m.Actual, "99")
	}
	assert.Equal(t, failures[3].Suite, check.SuiteDescription)
	assert.Equal(t, failures[4].Suite, check.SuiteDisplayName)
	for _, s := range report.Suites {
		assert.Assert(t, !s.OK(), "suite %s", s.Suite)
	}
}

func TestWithSuites(t *testing.T) {
	as := generate(t)
	f := loadFixture(t)
	find(f, 2).BrowseName.Name = "Variables"

	report := check.NewChecker(check.WithSuites(check.SuiteDisplayName, check.SuiteReference), check.WithWorkers(1)).Run(context.Background(), as, f)
	assert.Assert(t, report.OK())
	assert.Equal(t, len(report.Suites), 2)
	assert.Equal(t, report.Suites[0].Suite, check.SuiteDisplayName)
	assert.Equal(t, report.Suites[1].Suite, check.SuiteReference)

	suites, err := check.ParseSuites([]string{"browsename", " Value"})
	assert.NilError(t, err)
	assert.DeepEqual(t, suites, []check.Suite{check.SuiteBrowseName, check.SuiteValue})
	_, err = check.ParseSuites([]string{"Values"})
	assert.ErrorContains(t, err, `unknown suite "Values"`)
}

func TestRunCancelled(t *testing.T) {
	as := generate(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report := check.NewChecker().Run(ctx, as, loadFixture(t))
	assert.Assert(t, !report.OK())
	assert.Equal(t, len(report.Failures()), 0)
	for _, s := range report.Suites {
		assert.Equal(t, s.Err, context.Canceled)
		assert.Equal(t, s.Checked, 0)
	}
}

func TestFromAddressSpace(t *testing.T) {
	as := generate(t)
	f := check.FromAddressSpace(as)
	assert.Equal(t, len(f.Nodes), as.Len())
	assert.DeepEqual(t, f.NamespaceURIs, as.NamespaceURIs())

	n := f.Nodes[7]
	assert.Equal(t, n.Pos, 8)
	assert.DeepEqual(t, *n.Value, check.Value{ValueIndex: 1, Type: ua.BuiltInTypeIDInt64, Value: check.Payload{"-1000"}})
	assert.Assert(t, f.Nodes[6].Descriptions != nil)

	report := check.NewChecker().Run(context.Background(), as, f)
	assert.Assert(t, report.OK())
	assert.Equal(t, report.Suites[0].Checked, 23)
	assert.Equal(t, report.Suites[1].Checked, 12)
	assert.Equal(t, report.Suites[2].Checked, 23)

	// empty lists survive the trip through YAML
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	assert.NilError(t, f.Save(path))
	f2, err := check.LoadFixture(path)
	assert.NilError(t, err)
	assert.Assert(t, f2.Nodes[6].Descriptions != nil)
	assert.Equal(t, len(f2.Nodes[6].Descriptions), 0)
	assert.Assert(t, f2.Nodes[14].Value.Value != nil)

	report = check.NewChecker().Run(context.Background(), as, f2)
	assert.Assert(t, report.OK(), "%v", report.Failures())
	assert.Equal(t, report.Suites[3].Checked, 23)
}
