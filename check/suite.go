// Copyright 2021 Converter Systems LLC. All rights reserved.

package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/awcullen/uaspace/addrspace"
	"github.com/awcullen/uaspace/ua"
)

// Suite is one of the check suites.
type Suite int

// Suites, in the order they are reported.
const (
	SuiteBrowseName Suite = iota
	SuiteValue
	SuiteReference
	SuiteDescription
	SuiteDisplayName
)

// AllSuites lists every suite in report order.
var AllSuites = []Suite{SuiteBrowseName, SuiteValue, SuiteReference, SuiteDescription, SuiteDisplayName}

var suiteNames = [...]string{"BrowseName", "Value", "Reference", "Description", "DisplayName"}

func (s Suite) String() string {
	if s >= 0 && int(s) < len(suiteNames) {
		return suiteNames[s]
	}
	return fmt.Sprintf("Suite(%d)", int(s))
}

// ParseSuite returns the suite with the given name. Matching ignores case.
func ParseSuite(name string) (Suite, error) {
	for i, n := range suiteNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Suite(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suite %q", name)
}

// ParseSuites parses a list of suite names.
func ParseSuites(names []string) ([]Suite, error) {
	suites := make([]Suite, 0, len(names))
	for _, name := range names {
		s, err := ParseSuite(name)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// Mismatch is a failed assertion.
type Mismatch struct {
	Suite    Suite
	Pos      int
	NodeID   ua.NodeID
	Field    string
	Expected string
	Actual   string
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("%s: invalid %s expected %s result %s : pos %d nodeid %s", m.Suite, m.Field, m.Expected, m.Actual, m.Pos, m.NodeID)
}

// SuiteResult is the outcome of one suite. Lines hold the diagnostics in the order they were produced.
type SuiteResult struct {
	Suite      Suite
	Checked    int
	Mismatches []Mismatch
	Lines      []string
	Err        error
}

// OK returns true if the suite ran to completion without mismatches.
func (r *SuiteResult) OK() bool {
	return r.Err == nil && len(r.Mismatches) == 0
}

// run reads the address space only.
type run struct {
	as     *addrspace.AddressSpace
	result *SuiteResult
}

func (r *run) printf(format string, args ...interface{}) {
	r.result.Lines = append(r.result.Lines, fmt.Sprintf(format, args...))
}

// fail records a mismatch and its diagnostic line.
func (r *run) fail(n *Node, field, expected, actual string) {
	m := Mismatch{
		Suite:    r.result.Suite,
		Pos:      n.Pos,
		NodeID:   n.NodeID,
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}
	r.result.Mismatches = append(r.result.Mismatches, m)
	r.printf("invalid %s expected %s result %s : pos %d nodeid %s", field, expected, actual, n.Pos, n.NodeID)
}

func runSuite(ctx context.Context, s Suite, as *addrspace.AddressSpace, f *Fixture) *SuiteResult {
	r := &run{as: as, result: &SuiteResult{Suite: s, Mismatches: []Mismatch{}}}
	r.printf("test %s", s)
	for i := range f.Nodes {
		if err := ctx.Err(); err != nil {
			r.result.Err = err
			r.printf("interrupted: %s", err)
			break
		}
		n := &f.Nodes[i]
		switch s {
		case SuiteBrowseName:
			r.browseName(n)
		case SuiteValue:
			r.value(n)
		case SuiteReference:
			r.references(n)
		case SuiteDescription:
			r.localizedTexts(n, "Description", n.Descriptions, r.as.Descriptions)
		case SuiteDisplayName:
			r.localizedTexts(n, "DisplayName", n.DisplayNames, r.as.DisplayNames)
		}
	}
	return r.result
}

func (r *run) browseName(n *Node) {
	if n.BrowseName == nil {
		return
	}
	r.result.Checked++
	id, ok := r.as.NodeID(n.Pos)
	if !ok {
		r.fail(n, "pos", fmt.Sprintf("1..%d", r.as.Len()), fmt.Sprint(n.Pos))
		return
	}
	if id != n.NodeID {
		r.fail(n, "NodeId", n.NodeID.String(), id.String())
	}
	bn, _ := r.as.BrowseName(n.Pos)
	if bn.NamespaceIndex != n.BrowseName.NamespaceIndex {
		r.fail(n, "BrowseName NamespaceIndex", fmt.Sprint(n.BrowseName.NamespaceIndex), fmt.Sprint(bn.NamespaceIndex))
	}
	if bn.Name != n.BrowseName.Name {
		r.fail(n, "BrowseName", fmt.Sprintf("%q", n.BrowseName.Name), fmt.Sprintf("%q", bn.Name))
	}
}

func (r *run) value(n *Node) {
	exp := n.Value
	if exp == nil {
		return
	}
	r.result.Checked++
	r.printf("test Value for nodeid %s", n.NodeID)
	v, ok := r.as.Value(exp.ValueIndex)
	if !ok {
		r.fail(n, "valueIndex", fmt.Sprintf("1..%d", r.as.NbValues()), fmt.Sprint(exp.ValueIndex))
		return
	}
	if v.Type() != exp.Type {
		r.fail(n, "BuiltInTypeId", exp.Type.String(), v.Type().String())
	}
	if v.ArrayType() != exp.ArrayType {
		r.fail(n, "Arraytype", exp.ArrayType.String(), v.ArrayType().String())
	}
	if exp.Value == nil {
		return
	}
	actual := v.Strings()
	if len(actual) != len(exp.Value) {
		r.fail(n, "Value", fmt.Sprintf("%d elements", len(exp.Value)), fmt.Sprintf("%d elements", len(actual)))
		return
	}
	for i := range actual {
		if actual[i] != exp.Value[i] {
			r.fail(n, fmt.Sprintf("Value[%d]", i), fmt.Sprintf("%q", exp.Value[i]), fmt.Sprintf("%q", actual[i]))
		}
	}
}

func (r *run) references(n *Node) {
	if n.References == nil {
		return
	}
	r.result.Checked++
	refs, ok := r.as.References(n.Pos)
	if !ok || len(refs) != len(n.References) {
		r.result.Mismatches = append(r.result.Mismatches, Mismatch{
			Suite:    r.result.Suite,
			Pos:      n.Pos,
			NodeID:   n.NodeID,
			Field:    "number of reference",
			Expected: fmt.Sprint(len(n.References)),
			Actual:   fmt.Sprint(len(refs)),
		})
		r.printf("Invalid number of reference expected %d result %d : nodeid %s", len(n.References), len(refs), n.NodeID)
		return
	}
	for i, exp := range n.References {
		r.printf("test reference %d node %d nodeid %s", i+1, n.Pos, n.NodeID)
		if refs[i].Type != exp.Type {
			r.fail(n, fmt.Sprintf("reference %d type", i+1), exp.Type.String(), refs[i].Type.String())
		}
		if refs[i].Target != exp.Target {
			r.fail(n, fmt.Sprintf("reference %d target", i+1), exp.Target.String(), refs[i].Target.String())
		}
	}
}

func (r *run) localizedTexts(n *Node, field string, exp LocalizedTexts, get func(int) ([]ua.LocalizedText, bool)) {
	if exp == nil {
		return
	}
	r.result.Checked++
	actual, ok := get(n.Pos)
	if !ok {
		r.fail(n, "pos", fmt.Sprintf("1..%d", r.as.Len()), fmt.Sprint(n.Pos))
		return
	}
	if len(actual) != len(exp) {
		r.result.Mismatches = append(r.result.Mismatches, Mismatch{
			Suite:    r.result.Suite,
			Pos:      n.Pos,
			NodeID:   n.NodeID,
			Field:    "number of " + field,
			Expected: fmt.Sprint(len(exp)),
			Actual:   fmt.Sprint(len(actual)),
		})
		r.printf("Invalid number of %s expected %d result %d : pos %d nodeid %s", field, len(exp), len(actual), n.Pos, n.NodeID)
		return
	}
	for i, e := range exp {
		localeOK := actual[i].Locale == e.Locale
		textOK := actual[i].Text == e.Text
		r.printf("test %s %d node %d nodeid %s : locale %s, text %s", field, i+1, n.Pos, n.NodeID, okKO(localeOK), okKO(textOK))
		if !localeOK {
			r.result.Mismatches = append(r.result.Mismatches, Mismatch{r.result.Suite, n.Pos, n.NodeID, fmt.Sprintf("%s %d locale", field, i+1), e.Locale, actual[i].Locale})
		}
		if !textOK {
			r.result.Mismatches = append(r.result.Mismatches, Mismatch{r.result.Suite, n.Pos, n.NodeID, fmt.Sprintf("%s %d text", field, i+1), e.Text, actual[i].Text})
		}
	}
}

func okKO(ok bool) string {
	if ok {
		return "ok"
	}
	return "KO"
}
