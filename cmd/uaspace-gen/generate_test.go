// Copyright 2021 Converter Systems LLC. All rights reserved.

package main

import (
	"context"
	"go/parser"
	"go/token"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/awcullen/uaspace/addrspace"
	"github.com/awcullen/uaspace/check"
	"github.com/awcullen/uaspace/cmd/uaspace-gen/internal/ingopcs"
	"github.com/awcullen/uaspace/internal/config"
	"github.com/awcullen/uaspace/nodeset"
	"github.com/awcullen/uaspace/ua"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gotest.tools/assert"
)

const testNodeSet = "../../nodeset/testdata/ingopcs.xml"

func TestGenerateGo(t *testing.T) {
	d, err := nodeset.LoadFile(testNodeSet)
	assert.NilError(t, err)
	code, err := generateGo(d, "nodes", testNodeSet)
	assert.NilError(t, err)

	path := filepath.Join(t.TempDir(), "ingopcs.go")
	assert.NilError(t, writeFormatted(path, code))
	buf, err := os.ReadFile(path)
	assert.NilError(t, err)
	out := string(buf)

	f, err := parser.ParseFile(token.NewFileSet(), path, buf, parser.ImportsOnly)
	assert.NilError(t, err)
	assert.Equal(t, f.Name.Name, "nodes")
	paths := []string{}
	for _, imp := range f.Imports {
		paths = append(paths, imp.Path.Value)
	}
	// unused imports are dropped
	assert.DeepEqual(t, paths, []string{`"github.com/awcullen/uaspace/nodeset"`, `"github.com/awcullen/uaspace/ua"`})

	for _, s := range []string{
		"// Code generated by uaspace-gen from ingopcs.xml. DO NOT EDIT.",
		"func Description() *nodeset.Description {",
		`ua.NewQualifiedName(1, "15361")`,
		`{ReferenceTypeID: ua.ParseNodeID("i=35"), IsInverse: true, TargetID: ua.ParseExpandedNodeID("i=85")}`,
		`ua.MustVariant(int64(-1000))`,
		`ua.MustVariant(float64(2))`,
		`ua.MustVariant(ua.ByteString("ByteString:INGOPCS"))`,
		`ua.MustVariant([]int32{int32(1), int32(2), int32(3)})`,
		`ua.MustVariant(ua.NewLocalizedText("Hello", "en"))`,
		`ContainsNoLoops: true,`,
	} {
		assert.Assert(t, strings.Contains(out, s), "missing %s in\n%s", s, out)
	}
	_, err = os.Stat(path + ".broken")
	assert.Assert(t, os.IsNotExist(err))
}

// TestGeneratedDescription compiles the generator output through the ingopcs package and
// compares it with the nodeset it was generated from.
func TestGeneratedDescription(t *testing.T) {
	want, err := nodeset.LoadFile(testNodeSet)
	assert.NilError(t, err)
	got := ingopcs.Description()
	assert.DeepEqual(t, got.NamespaceURIs, want.NamespaceURIs)
	assert.Equal(t, len(got.Nodes), len(want.Nodes))

	for i, w := range want.Nodes {
		g := got.Nodes[i]
		assert.Equal(t, g.NodeClass, w.NodeClass, "node %d", i)
		assert.Equal(t, g.NodeID, w.NodeID, "node %d", i)
		assert.Equal(t, g.BrowseName, w.BrowseName, "node %s", w.NodeID)
		assert.DeepEqual(t, nonNil(g.DisplayNames), w.DisplayNames)
		assert.DeepEqual(t, nonNil(g.Descriptions), w.Descriptions)
		assert.Equal(t, len(g.References), len(w.References), "node %s", w.NodeID)
		for j, r := range w.References {
			assert.Equal(t, g.References[j], r, "node %s reference %d", w.NodeID, j)
		}
		assert.Assert(t, g.Value.Equal(w.Value), "node %s value %v, want %v", w.NodeID, g.Value, w.Value)
		assert.Equal(t, g.Value.Type(), w.Value.Type(), "node %s", w.NodeID)
		assert.Equal(t, g.DataType, w.DataType, "node %s", w.NodeID)
		assert.Equal(t, g.ValueRank, w.ValueRank, "node %s", w.NodeID)
		assert.Equal(t, g.AccessLevel, w.AccessLevel, "node %s", w.NodeID)
		assert.Equal(t, g.IsAbstract, w.IsAbstract, "node %s", w.NodeID)
		assert.Equal(t, g.Symmetric, w.Symmetric, "node %s", w.NodeID)
		assert.Equal(t, g.InverseName, w.InverseName, "node %s", w.NodeID)
		assert.Equal(t, g.EventNotifier, w.EventNotifier, "node %s", w.NodeID)
		assert.Equal(t, g.Executable, w.Executable, "node %s", w.NodeID)
		assert.Equal(t, g.ContainsNoLoops, w.ContainsNoLoops, "node %s", w.NodeID)
		assert.Equal(t, g.ParentNodeID, w.ParentNodeID, "node %s", w.NodeID)
	}

	as, err := addrspace.Generate(got)
	assert.NilError(t, err)
	assert.Equal(t, as.Len(), 23)
	f, err := check.LoadFixture("../../check/testdata/ingopcs.yaml")
	assert.NilError(t, err)
	report := check.NewChecker().Run(context.Background(), as, f)
	assert.Assert(t, report.OK(), "%v", report.Failures())

	// the committed source is the current output of the generator
	code, err := generateGo(want, "ingopcs", testNodeSet)
	assert.NilError(t, err)
	path := filepath.Join(t.TempDir(), "ingopcs.go")
	assert.NilError(t, writeFormatted(path, code))
	fresh, err := os.ReadFile(path)
	assert.NilError(t, err)
	committed, err := os.ReadFile("internal/ingopcs/ingopcs.go")
	assert.NilError(t, err)
	assert.Equal(t, strings.Join(strings.Fields(string(committed)), " "), strings.Join(strings.Fields(string(fresh)), " "),
		"internal/ingopcs is stale, run go generate ./cmd/uaspace-gen/...")
}

// nonNil maps the omitted lists of the generated source to the empty lists of the loader.
func nonNil(a []ua.LocalizedText) []ua.LocalizedText {
	if a == nil {
		return []ua.LocalizedText{}
	}
	return a
}

func TestWriteFormattedBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.go")
	err := writeFormatted(path, "package nodes\n\nfunc {")
	assert.ErrorContains(t, err, "goimports broken.go")
	buf, err := os.ReadFile(path + ".broken")
	assert.NilError(t, err)
	assert.Equal(t, string(buf), "package nodes\n\nfunc {")
}

func TestScalarExpr(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{true, "true"},
		{int8(-3), "int8(-3)"},
		{uint16(7), "uint16(7)"},
		{float32(1.5), "float32(1.5)"},
		{math.Inf(-1), "float64(math.Inf(-1))"},
		{"a\"b", `"a\"b"`},
		{time.Unix(0, 1500).UTC(), "time.Unix(0, 1500).UTC()"},
		{uuid.MustParse("72962b91-fa75-4ae6-8d28-b404dc7daf63"), `uuid.MustParse("72962b91-fa75-4ae6-8d28-b404dc7daf63")`},
		{ua.XMLElement("<a/>"), `ua.XMLElement("<a/>")`},
		{ua.NewNodeIDString(2, "x"), `ua.ParseNodeID("ns=2;s=x")`},
		{ua.BadNodeIDUnknown, "ua.StatusCode(0x80340000)"},
		{ua.NewQualifiedName(2, "Demo"), `ua.NewQualifiedName(2, "Demo")`},
	}
	for _, c := range cases {
		got, err := scalarExpr(c.in)
		assert.NilError(t, err)
		assert.Equal(t, got, c.want)
	}
	_, err := scalarExpr(struct{}{})
	assert.ErrorContains(t, err, "unsupported value")
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Nodeset: testNodeSet,
		Fixture: filepath.Join(dir, "ingopcs.yaml"),
		Image:   filepath.Join(dir, "ingopcs.img"),
		GoFile:  filepath.Join(dir, "ingopcs.go"),
		Package: "nodes",
	}
	assert.NilError(t, cfg.ValidateGen())
	assert.NilError(t, generate(cfg, zerolog.Nop()))

	file, err := os.Open(cfg.Image)
	assert.NilError(t, err)
	defer file.Close()
	as, err := addrspace.ReadImage(file)
	assert.NilError(t, err)
	assert.Equal(t, as.Len(), 23)

	f, err := check.LoadFixture(cfg.Fixture)
	assert.NilError(t, err)
	report := check.NewChecker().Run(context.Background(), as, f)
	assert.Assert(t, report.OK())

	_, err = os.Stat(cfg.GoFile)
	assert.NilError(t, err)
}

func TestRunErrors(t *testing.T) {
	t.Setenv("LOG_LEVEL", "disabled")
	assert.ErrorContains(t, run(nil), "a nodeset is required")
	assert.ErrorContains(t, run([]string{"--nodeset", testNodeSet}), "nothing to generate")
	assert.ErrorContains(t, run([]string{"--nodeset", "testdata/missing.xml", "--image", filepath.Join(t.TempDir(), "x.img")}), "missing.xml")
}
